package create

import (
	"go-rewards/shared/contract/transactioncontract"
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransactionCommand struct {
	CustomerID      *int64
	CustomerEmail   string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

type CreateTransactionCommandResult struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"number"`
	TransactionDate string          `json:"transactionDate" example:"2025-08-15"`
}

func NewCreateTransactionCommandResult(info transactioncontract.TransactionInfo) *CreateTransactionCommandResult {
	return &CreateTransactionCommandResult{
		ID:              info.ID,
		CustomerID:      info.CustomerID,
		Amount:          info.Amount,
		TransactionDate: info.TransactionDate.Format(time.DateOnly),
	}
}
