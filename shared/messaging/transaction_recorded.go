package messaging

import (
	"time"

	"go-rewards/shared/common/eventbus"

	"github.com/shopspring/decimal"
)

const (
	TransactionRecordedIntegrationEventName eventbus.EventName = "TransactionRecorded"
)

type TransactionRecordedIntegrationEvent struct {
	eventbus.BaseEvent
	TransactionID   int64
	CustomerID      int64
	CustomerEmail   string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

func NewTransactionRecordedIntegrationEvent(txID, customerID int64, customerEmail string, amount decimal.Decimal, txDate time.Time) *TransactionRecordedIntegrationEvent {
	return &TransactionRecordedIntegrationEvent{
		BaseEvent:       eventbus.NewBaseEvent(TransactionRecordedIntegrationEventName),
		TransactionID:   txID,
		CustomerID:      customerID,
		CustomerEmail:   customerEmail,
		Amount:          amount,
		TransactionDate: txDate,
	}
}
