package calculate

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/contract/customercontract"
	"go-rewards/shared/contract/transactioncontract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fakeStore จำลองโมดูล customer และ transaction ที่ตอบผ่าน mediator
type fakeStore struct {
	customers map[int64]customercontract.CustomerInfo
	txs       []transactioncontract.TransactionInfo
	lastQuery *transactioncontract.ListTransactionsInRangeQuery
}

func (s *fakeStore) register() {
	mediator.Register(mediator.HandlerFunc[*customercontract.GetCustomerByIDQuery, *customercontract.GetCustomerByIDQueryResult](
		func(ctx context.Context, q *customercontract.GetCustomerByIDQuery) (*customercontract.GetCustomerByIDQueryResult, error) {
			c, ok := s.customers[q.ID]
			if !ok {
				return nil, errs.ResourceNotFoundError("Customer not found")
			}
			return &customercontract.GetCustomerByIDQueryResult{CustomerInfo: c}, nil
		}))
	mediator.Register(mediator.HandlerFunc[*transactioncontract.ListTransactionsInRangeQuery, *transactioncontract.ListTransactionsInRangeQueryResult](
		func(ctx context.Context, q *transactioncontract.ListTransactionsInRangeQuery) (*transactioncontract.ListTransactionsInRangeQueryResult, error) {
			s.lastQuery = q
			res := &transactioncontract.ListTransactionsInRangeQueryResult{Transactions: []transactioncontract.TransactionInfo{}}
			for _, tx := range s.txs {
				if tx.CustomerID == q.CustomerID && !tx.TransactionDate.Before(q.From) && !tx.TransactionDate.After(q.To) {
					res.Transactions = append(res.Transactions, tx)
				}
			}
			return res, nil
		}))
}

func newStore() *fakeStore {
	return &fakeStore{
		customers: map[int64]customercontract.CustomerInfo{
			1: *customercontract.NewCustomerInfo(1, "Alice", "alice@example.com", "0812345678"),
			2: *customercontract.NewCustomerInfo(2, "Bob", "bob@example.com", "0899999999"),
		},
		txs: []transactioncontract.TransactionInfo{
			{ID: 10, CustomerID: 1, Amount: decimal.NewFromInt(120), TransactionDate: day(2025, 8, 15)},
			{ID: 11, CustomerID: 1, Amount: decimal.NewFromInt(70), TransactionDate: day(2025, 9, 5)},
			{ID: 12, CustomerID: 1, Amount: decimal.RequireFromString("40.50"), TransactionDate: day(2025, 9, 20)},
		},
	}
}

func newHandler(now time.Time) *calculateRewardsQueryHandler {
	h := NewCalculateRewardsQueryHandler(rewards.DefaultThresholds)
	h.now = func() time.Time { return now }
	return h
}

func TestCalculateRewardsWithRange(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 10, 1))

	from, to := day(2025, 8, 1), day(2025, 9, 10)
	res, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 1, From: &from, To: &to})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.CustomerID)
	assert.Equal(t, "Alice", res.CustomerName)
	assert.Equal(t, "alice@example.com", res.CustomerEmail)
	assert.Equal(t, "2025-08-01", res.From)
	assert.Equal(t, "2025-09-10", res.To)
	assert.Equal(t, 110, res.TotalRewards)
	assert.False(t, res.IsEmpty())

	require.Len(t, res.Transactions, 2)
	assert.Equal(t, TransactionPoints{TransactionID: 10, TransactionDate: "2025-08-15", TransactionAmount: decimal.NewFromInt(120), Points: 90}, res.Transactions[0])
	assert.Equal(t, 20, res.Transactions[1].Points)

	b, err := json.Marshal(res.MonthlyRewards)
	require.NoError(t, err)
	assert.Equal(t, `{"2025-08":90,"2025-09":20}`, string(b))
}

func TestCalculateRewardsWithMonths(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 9, 30))

	months := 1
	res, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 1, Months: &months})
	require.NoError(t, err)

	assert.Equal(t, day(2025, 8, 30), store.lastQuery.From)
	assert.Equal(t, day(2025, 9, 30), store.lastQuery.To)
	assert.Equal(t, "2025-08-30", res.From)
	require.Len(t, res.Transactions, 2)
	// 70 -> 20 แต้ม, 40.50 -> 0 แต้ม
	assert.Equal(t, 20, res.TotalRewards)
	assert.Equal(t, 0, res.Transactions[1].Points)
}

func TestCalculateRewardsEmpty(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 10, 1))

	months := 6
	res, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 2, Months: &months})
	require.NoError(t, err)

	require.NotNil(t, store.lastQuery)
	assert.True(t, res.IsEmpty())
	assert.Equal(t, 0, res.MonthlyRewards.Len())
	assert.Equal(t, "Bob", res.CustomerName)
}

func TestCalculateRewardsWithoutWindow(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 9, 30))

	res, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 1})
	require.NoError(t, err)

	assert.Nil(t, store.lastQuery)
	assert.True(t, res.IsEmpty())
	assert.Equal(t, 0, res.TotalRewards)
	assert.Equal(t, "Alice", res.CustomerName)
	assert.Empty(t, res.From)
	assert.Empty(t, res.To)
}

func TestCalculateRewardsWithoutWindowUnknownCustomer(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 9, 30))

	_, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 999})

	assert.Equal(t, errs.ErrTypeResourceNotFound, errs.GetErrorType(err))
}

func TestCalculateRewardsCustomerNotFound(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 10, 1))

	_, err := h.Handle(context.Background(), &CalculateRewardsQuery{CustomerID: 999})

	assert.Equal(t, errs.ErrTypeResourceNotFound, errs.GetErrorType(err))
	assert.Nil(t, store.lastQuery)
}

func TestCalculateRewardsIsRepeatable(t *testing.T) {
	store := newStore()
	store.register()
	h := newHandler(day(2025, 10, 1))

	from, to := day(2025, 1, 1), day(2025, 12, 31)
	q := &CalculateRewardsQuery{CustomerID: 1, From: &from, To: &to}

	first, err := h.Handle(context.Background(), q)
	require.NoError(t, err)
	second, err := h.Handle(context.Background(), q)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.JSONEq(t, string(a), string(b))
}
