package transactioncontract

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionInfo struct {
	ID              int64
	CustomerID      int64
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// ListTransactionsInRangeQuery ค้นหารายการของลูกค้าที่ TransactionDate อยู่ในช่วง [From, To] (รวมทั้งสองฝั่ง)
// ผลลัพธ์เรียงตามวันที่แล้วตาม id
type ListTransactionsInRangeQuery struct {
	CustomerID int64
	From       time.Time
	To         time.Time
}

type ListTransactionsInRangeQueryResult struct {
	Transactions []TransactionInfo
}
