package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-rewards/shared/common/errs"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseError(t *testing.T) {
	app := fiber.New()
	app.Use(ResponseError())
	app.Get("/ok", func(c fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/not-found", func(c fiber.Ctx) error { return errs.ResourceNotFoundError("Customer not found with id 1") })
	app.Get("/state", func(c fiber.Ctx) error { return errs.StateConflictError("illegal state") })
	app.Get("/plain", func(c fiber.Ctx) error { return errors.New("boom") })
	app.Get("/fiber", func(c fiber.Ctx) error { return fiber.NewError(http.StatusMethodNotAllowed, "nope") })

	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
	}{
		{"/not-found", http.StatusNotFound, "Customer not found with id 1"},
		{"/state", http.StatusConflict, "illegal state"},
		{"/plain", http.StatusInternalServerError, "boom"},
		{"/fiber", http.StatusMethodNotAllowed, "nope"},
		{"/no-such-route", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, http.StatusText(tt.wantStatus), body.Error)
			assert.NotEmpty(t, body.Timestamp)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
