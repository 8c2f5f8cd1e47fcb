package calculate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-rewards/application/middleware"
	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRewardsEndpoint(t *testing.T) {
	var received *CalculateRewardsQuery
	mediator.Register(mediator.HandlerFunc[*CalculateRewardsQuery, *CalculateRewardsQueryResult](
		func(ctx context.Context, q *CalculateRewardsQuery) (*CalculateRewardsQueryResult, error) {
			received = q
			switch q.CustomerID {
			case 404:
				return nil, errs.ResourceNotFoundError("Customer not found with id 404")
			case 2:
				monthly, _ := rewards.Aggregate(nil)
				return &CalculateRewardsQueryResult{CustomerID: 2, MonthlyRewards: monthly, Transactions: []TransactionPoints{}}, nil
			}
			monthly := rewards.NewMonthlyRewards()
			monthly.Add("2025-08", 90)
			monthly.Add("2025-09", 20)
			return &CalculateRewardsQueryResult{
				CustomerID:     q.CustomerID,
				CustomerName:   "Alice",
				From:           "2025-08-01",
				To:             "2025-09-30",
				Transactions:   []TransactionPoints{{TransactionID: 10, Points: 90}, {TransactionID: 11, Points: 20}},
				MonthlyRewards: monthly,
				TotalRewards:   110,
			}, nil
		}))

	app := fiber.New()
	app.Use(middleware.ResponseError())
	NewEndpoint(app.Group("/api/rewards"), "/customer/:id")

	t.Run("ok", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/rewards/customer/1?from=2025-08-01&to=2025-09-30", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			CustomerID     int64          `json:"customerId"`
			MonthlyRewards map[string]int `json:"monthlyRewards"`
			TotalRewards   int            `json:"totalRewards"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(1), body.CustomerID)
		assert.Equal(t, map[string]int{"2025-08": 90, "2025-09": 20}, body.MonthlyRewards)
		assert.Equal(t, 110, body.TotalRewards)

		require.NotNil(t, received.From)
		assert.Equal(t, "2025-08-01", received.From.Format("2006-01-02"))
		assert.Nil(t, received.Months)
	})

	t.Run("months passed through", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/rewards/customer/1?months=3", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, received.Months)
		assert.Equal(t, 3, *received.Months)
	})

	errorCases := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"no rewards", "/api/rewards/customer/2?months=1", http.StatusNotFound, "No rewards found"},
		{"customer not found", "/api/rewards/customer/404?months=1", http.StatusNotFound, "Customer not found with id 404"},
		{"both modes", "/api/rewards/customer/1?months=3&from=2025-01-01&to=2025-02-01", http.StatusUnprocessableEntity, "Provide either 'months' OR ('from' and 'to'), not both."},
		{"zero months", "/api/rewards/customer/1?months=0", http.StatusUnprocessableEntity, "'months' must be greater than 0"},
		{"inverted range", "/api/rewards/customer/1?from=2025-03-01&to=2025-01-01", http.StatusUnprocessableEntity, "'from' date cannot be after 'to' date"},
		{"from only", "/api/rewards/customer/1?from=2025-03-01", http.StatusUnprocessableEntity, "Provide both 'from' and 'to'"},
		{"bad date", "/api/rewards/customer/1?from=invalid-date&to=2025-01-01", http.StatusBadRequest, ""},
		{"bad months", "/api/rewards/customer/1?months=abc", http.StatusBadRequest, ""},
		{"bad id", "/api/rewards/customer/abc?months=1", http.StatusBadRequest, "invalid customer id"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}
