package create

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var minAmount = decimal.NewFromInt(1)

// CreateTransactionRequest ระบุลูกค้าด้วย customerId หรือ customerEmail อย่างใดอย่างหนึ่ง
// customerName รับไว้เฉยๆ ไม่ได้ใช้หาลูกค้า
type CreateTransactionRequest struct {
	CustomerID      *int64           `json:"customerId"`
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"number"`
	TransactionDate string           `json:"transactionDate" example:"2025-08-15"`
}

func (r *CreateTransactionRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.TransactionDate = strings.TrimSpace(r.TransactionDate)
}

func (r *CreateTransactionRequest) Validate() error {
	var errs error
	if r.CustomerEmail != "" {
		if addr, err := mail.ParseAddress(r.CustomerEmail); err != nil || addr.Address != r.CustomerEmail {
			errs = errors.Join(errs, errors.New("customerEmail: must be a well-formed email address"))
		}
	}
	if r.Amount == nil {
		errs = errors.Join(errs, errors.New("amount: must not be null"))
	} else if r.Amount.LessThan(minAmount) {
		errs = errors.Join(errs, errors.New("amount: must be greater than or equal to 1"))
	}
	if r.TransactionDate == "" {
		errs = errors.Join(errs, errors.New("transactionDate: must not be null"))
	}
	return errs
}

// ParseTransactionDate รับเฉพาะรูปแบบ YYYY-MM-DD
func (r *CreateTransactionRequest) ParseTransactionDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.TransactionDate)
}
