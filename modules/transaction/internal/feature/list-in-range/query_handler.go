package listinrange

import (
	"context"
	"go-rewards/modules/transaction/internal/repository"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/contract/transactioncontract"

	"go.opentelemetry.io/otel/trace"
)

type listTransactionsInRangeQueryHandler struct {
	txRepo repository.TransactionRepository
}

func NewListTransactionsInRangeQueryHandler(txRepo repository.TransactionRepository) *listTransactionsInRangeQueryHandler {
	return &listTransactionsInRangeQueryHandler{txRepo: txRepo}
}

func (h *listTransactionsInRangeQueryHandler) Handle(ctx context.Context, q *transactioncontract.ListTransactionsInRangeQuery) (*transactioncontract.ListTransactionsInRangeQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:ListTransactionsInRangeQuery")
	defer span.End()

	txs, err := h.txRepo.FindByCustomerAndDateRange(ctx, q.CustomerID, q.From, q.To)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	result := &transactioncontract.ListTransactionsInRangeQueryResult{
		Transactions: make([]transactioncontract.TransactionInfo, 0, len(txs)),
	}
	for i := range txs {
		result.Transactions = append(result.Transactions, txs[i].ToInfo())
	}
	return result, nil
}
