package repository

import (
	"context"
	"fmt"
	"go-rewards/modules/transaction/internal/model"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/storage/sqldb/transactor"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	FindByCustomerAndDateRange(ctx context.Context, customerID int64, from, to time.Time) ([]model.Transaction, error)
}

type transactionRepository struct {
	dbCtx transactor.DBTXContext
}

func NewTransactionRepository(dbCtx transactor.DBTXContext) TransactionRepository {
	return &transactionRepository{dbCtx: dbCtx}
}

func (r *transactionRepository) Create(ctx context.Context, m *model.Transaction) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:TransactionRepository:Create")
	defer span.End()

	query := `
	INSERT INTO public.transactions (id, customer_id, amount, transaction_date)
	VALUES ($1, $2, $3, $4)
	RETURNING id, customer_id, amount, transaction_date, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query, m.ID, m.CustomerID, m.Amount, m.TransactionDate.Format(time.DateOnly)).
		StructScan(m)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting a transaction: %w", err))
	}
	return nil
}

// FindByCustomerAndDateRange คืนรายการที่ transaction_date อยู่ระหว่าง from ถึง to (รวมทั้งสองวัน)
func (r *transactionRepository) FindByCustomerAndDateRange(ctx context.Context, customerID int64, from, to time.Time) ([]model.Transaction, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:TransactionRepository:FindByCustomerAndDateRange")
	defer span.End()

	query := `
	SELECT id, customer_id, amount, transaction_date, created_at
	FROM public.transactions
	WHERE customer_id = $1
	AND transaction_date BETWEEN $2::date AND $3::date
	ORDER BY transaction_date, id
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	txs := []model.Transaction{}
	err := r.dbCtx(ctx).SelectContext(ctx, &txs, query, customerID, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding transactions by customer: %w", err))
	}
	return txs, nil
}
