package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-rewards/modules/customer/domainerrors"
	"go-rewards/modules/customer/internal/model"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/storage/sqldb/transactor"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
}

type customerRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCustomerRepository(dbCtx transactor.DBTXContext) CustomerRepository {
	return &customerRepository{
		dbCtx: dbCtx,
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:Create")
	defer span.End()

	query := `
	INSERT INTO public.customers (id, customer_name, customer_email, customer_contact_number)
	VALUES ($1, $2, $3, $4)
	RETURNING id, customer_name, customer_email, customer_contact_number, created_at
	`

	// กำหนด timeout ของ query
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx). // <-- จะเป็น *sqlx.DB หรือ *sqlx.Tx ก็ได้
				QueryRowxContext(ctx, query, customer.ID, customer.Name, customer.Email, customer.ContactNumber).
				StructScan(customer) // นำค่า created_at ใส่ใน struct customer
	if err != nil {
		appErr := errs.HandleDBError(fmt.Errorf("an error occurred while inserting customer: %w", err))
		// email ชนกันตอน insert พร้อมกัน ให้ข้อความเดียวกับตอนเช็คก่อน insert
		if errs.GetErrorType(appErr) == errs.ErrTypeConflict {
			return domainerrors.ErrEmailExists
		}
		return appErr
	}
	return nil
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:ExistsByEmail")
	defer span.End()

	query := `SELECT 1 FROM public.customers WHERE customer_email = $1 LIMIT 1`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists int
	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query, email).
		Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) { // หาไม่เจอแสดงว่ายังไม่มี email ในระบบ
			return false, nil
		}
		return false, errs.HandleDBError(fmt.Errorf("an error occurred while checking email: %w", err))
	}
	return true, nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindByID")
	defer span.End()

	query := `
	SELECT id, customer_name, customer_email, customer_contact_number, created_at
	FROM public.customers
	WHERE id = $1
`
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer model.Customer
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&customer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a customer by id: %w", err))
	}

	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindByEmail")
	defer span.End()

	query := `
	SELECT id, customer_name, customer_email, customer_contact_number, created_at
	FROM public.customers
	WHERE customer_email = $1
`
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer model.Customer
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, email).StructScan(&customer)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a customer by email: %w", err))
	}

	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:CustomerRepository:FindAll")
	defer span.End()

	query := `
	SELECT id, customer_name, customer_email, customer_contact_number, created_at
	FROM public.customers
	ORDER BY id
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	customers := []model.Customer{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &customers, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing customers: %w", err))
	}

	return customers, nil
}
