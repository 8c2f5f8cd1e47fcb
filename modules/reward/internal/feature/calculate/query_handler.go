package calculate

import (
	"context"
	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/contract/customercontract"
	"go-rewards/shared/contract/transactioncontract"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type calculateRewardsQueryHandler struct {
	thresholds rewards.Thresholds
	now        func() time.Time
}

func NewCalculateRewardsQueryHandler(thresholds rewards.Thresholds) *calculateRewardsQueryHandler {
	return &calculateRewardsQueryHandler{
		thresholds: thresholds,
		now:        time.Now,
	}
}

func (h *calculateRewardsQueryHandler) Handle(ctx context.Context, q *CalculateRewardsQuery) (*CalculateRewardsQueryResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("query_handler")
	ctx, span := tracer.Start(ctx, "Handle:CalculateRewardsQuery")
	defer span.End()

	window, hasWindow := rewards.ResolveRange(h.now(), q.Months, q.From, q.To)

	// ลูกค้าไม่มีอยู่จริงจะได้ NotFound จากโมดูล customer
	cust, err := mediator.Send[*customercontract.GetCustomerByIDQuery, *customercontract.GetCustomerByIDQueryResult](
		ctx,
		&customercontract.GetCustomerByIDQuery{ID: q.CustomerID},
	)
	if err != nil {
		return nil, err
	}

	// ไม่ได้ระบุช่วงเวลา ไม่มีรายการให้คิดแต้ม
	if !hasWindow {
		logger.FromContext(ctx).Info("Calculated rewards",
			zap.Int64("customer_id", q.CustomerID),
			zap.Int("total_points", 0))
		return &CalculateRewardsQueryResult{
			CustomerID:     cust.ID,
			CustomerName:   cust.Name,
			CustomerEmail:  cust.Email,
			Transactions:   []TransactionPoints{},
			MonthlyRewards: rewards.NewMonthlyRewards(),
		}, nil
	}

	txs, err := mediator.Send[*transactioncontract.ListTransactionsInRangeQuery, *transactioncontract.ListTransactionsInRangeQueryResult](
		ctx,
		&transactioncontract.ListTransactionsInRangeQuery{
			CustomerID: q.CustomerID,
			From:       window.From,
			To:         window.To,
		},
	)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	details := make([]TransactionPoints, 0, len(txs.Transactions))
	dated := make([]rewards.DatedPoints, 0, len(txs.Transactions))
	for _, tx := range txs.Transactions {
		points := rewards.Points(&tx.Amount, h.thresholds)
		details = append(details, TransactionPoints{
			TransactionID:     tx.ID,
			TransactionDate:   tx.TransactionDate.Format(time.DateOnly),
			TransactionAmount: tx.Amount,
			Points:            points,
		})
		dated = append(dated, rewards.DatedPoints{Date: tx.TransactionDate, Points: points})
	}

	monthly, total := rewards.Aggregate(dated)

	logger.FromContext(ctx).Info("Calculated rewards",
		zap.Int64("customer_id", q.CustomerID),
		zap.String("from", window.From.Format(time.DateOnly)),
		zap.String("to", window.To.Format(time.DateOnly)),
		zap.Int("total_points", total))

	return &CalculateRewardsQueryResult{
		CustomerID:     cust.ID,
		CustomerName:   cust.Name,
		CustomerEmail:  cust.Email,
		From:           window.From.Format(time.DateOnly),
		To:             window.To.Format(time.DateOnly),
		Transactions:   details,
		MonthlyRewards: monthly,
		TotalRewards:   total,
	}, nil
}
