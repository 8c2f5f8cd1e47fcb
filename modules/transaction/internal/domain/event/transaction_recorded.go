package event

import (
	"go-rewards/shared/common/domain"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionRecordedDomainEventType domain.EventName = "TransactionRecorded"
)

type TransactionRecordedDomainEvent struct {
	domain.BaseDomainEvent
	TransactionID   int64
	CustomerID      int64
	CustomerEmail   string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

func NewTransactionRecordedDomainEvent(txID, customerID int64, customerEmail string, amount decimal.Decimal, txDate time.Time) *TransactionRecordedDomainEvent {
	return &TransactionRecordedDomainEvent{
		BaseDomainEvent: domain.BaseDomainEvent{
			Name: TransactionRecordedDomainEventType,
			At:   time.Now(),
		},
		TransactionID:   txID,
		CustomerID:      customerID,
		CustomerEmail:   customerEmail,
		Amount:          amount,
		TransactionDate: txDate,
	}
}
