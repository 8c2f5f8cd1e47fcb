package create

import (
	"fmt"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, createTransactionHTTPHandler)
}

// CreateTransaction godoc
// @Summary		Record Transaction
// @Description	Record a purchase for a registered customer, looked up by id then by email
// @Tags			Transaction
// @Accept			json
// @Produce		json
// @Param			transaction	body	CreateTransactionRequest	true	"Transaction Data"
// @Failure		400
// @Failure		404
// @Failure		422
// @Failure		500
// @Success		201	{object}	CreateTransactionCommandResult
// @Router			/transactions [post]
func createTransactionHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CreateTransaction")
	defer span.End()

	var req CreateTransactionRequest
	if err := c.Bind().Body(&req); err != nil {
		return errs.BadRequestError(err.Error())
	}
	req.Normalize()

	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	txDate, err := req.ParseTransactionDate()
	if err != nil {
		return errs.BadRequestError(fmt.Sprintf("transactionDate: cannot parse %q, expected YYYY-MM-DD", req.TransactionDate))
	}

	logger.FromContext(ctx).Info("Received transaction",
		zap.Any("customer_id", req.CustomerID),
		zap.String("customer_email", req.CustomerEmail),
		zap.String("transaction_date", req.TransactionDate))

	resp, err := mediator.Send[*CreateTransactionCommand, *CreateTransactionCommandResult](
		ctx,
		&CreateTransactionCommand{
			CustomerID:      req.CustomerID,
			CustomerEmail:   req.CustomerEmail,
			Amount:          *req.Amount,
			TransactionDate: txDate,
		},
	)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%d", c.Path(), resp.ID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}
