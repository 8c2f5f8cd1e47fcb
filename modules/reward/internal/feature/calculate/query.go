package calculate

import (
	"go-rewards/modules/reward/rewards"
	"time"

	"github.com/shopspring/decimal"
)

// CalculateRewardsQuery ระบุช่วงเวลาด้วย Months หรือ From/To อย่างใดอย่างหนึ่ง
type CalculateRewardsQuery struct {
	CustomerID int64
	Months     *int
	From       *time.Time
	To         *time.Time
}

type TransactionPoints struct {
	TransactionID     int64           `json:"transactionId"`
	TransactionDate   string          `json:"transactionDate" example:"2025-08-15"`
	TransactionAmount decimal.Decimal `json:"transactionAmount" swaggertype:"number"`
	Points            int             `json:"points"`
}

type CalculateRewardsQueryResult struct {
	CustomerID     int64                   `json:"customerId"`
	CustomerName   string                  `json:"customerName"`
	CustomerEmail  string                  `json:"customerEmail"`
	From           string                  `json:"from" example:"2025-06-30"`
	To             string                  `json:"to" example:"2025-09-30"`
	Transactions   []TransactionPoints     `json:"transactions"`
	MonthlyRewards *rewards.MonthlyRewards `json:"monthlyRewards" swaggertype:"object,integer"`
	TotalRewards   int                     `json:"totalRewards"`
}

// IsEmpty คือไม่มีรายการในช่วงและแต้มรวมเป็น 0
func (r *CalculateRewardsQueryResult) IsEmpty() bool {
	return r.TotalRewards == 0 && len(r.Transactions) == 0
}
