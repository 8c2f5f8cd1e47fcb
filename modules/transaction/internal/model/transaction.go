package model

import (
	"go-rewards/modules/transaction/internal/domain/event"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/idgen"
	"go-rewards/shared/contract/transactioncontract"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction อ้างถึงลูกค้าด้วย CustomerID เท่านั้น ไม่เก็บ list ย้อนกลับไว้ที่ Customer
type Transaction struct {
	ID              int64           `db:"id"`
	CustomerID      int64           `db:"customer_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"` // วันที่อย่างเดียว ไม่มีเวลา
	CreatedAt       time.Time       `db:"created_at"`
	domain.Aggregate
}

func NewTransaction(customerID int64, customerEmail string, amount decimal.Decimal, txDate time.Time) *Transaction {
	tx := &Transaction{
		ID:              idgen.GenerateID(),
		CustomerID:      customerID,
		Amount:          amount,
		TransactionDate: txDate,
	}

	tx.AddDomainEvent(event.NewTransactionRecordedDomainEvent(tx.ID, customerID, customerEmail, amount, txDate))

	return tx
}

func (t *Transaction) ToInfo() transactioncontract.TransactionInfo {
	return transactioncontract.TransactionInfo{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
	}
}
