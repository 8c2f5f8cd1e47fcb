package create

import (
	"fmt"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/mediator"
	"path"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Post(path, createCustomerHTTPHandler)
}

// CreateCustomer godoc
// @Summary		Register Customer
// @Description	Register a new customer, email must be unique
// @Tags			Customer
// @Accept			json
// @Produce		json
// @Param			customer	body	CreateCustomerRequest	true	"Customer Data"
// @Failure		400
// @Failure		422
// @Failure		500
// @Success		201	{object}	customercontract.CustomerInfo
// @Router			/customers/add [post]
func createCustomerHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CreateCustomer")
	defer span.End()

	// แปลง request body -> dto
	var req CreateCustomerRequest
	if err := c.Bind().Body(&req); err != nil {
		return errs.BadRequestError(err.Error())
	}
	req.Normalize()

	logger.FromContext(ctx).Info("Received customer", zap.String("email", req.Email))

	// ตรวจสอบ input fields (e.g., value, format, etc.)
	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	resp, err := mediator.Send[*CreateCustomerCommand, *CreateCustomerCommandResult](
		ctx,
		&CreateCustomerCommand{CreateCustomerRequest: req},
	)
	if err != nil {
		// จัดการ error response ที่ middleware
		return err
	}

	// /api/customers/add -> /api/customers/{id}
	c.Set(fiber.HeaderLocation, fmt.Sprintf("%s/%d", path.Dir(c.Path()), resp.ID))
	return c.Status(fiber.StatusCreated).JSON(resp.CustomerInfo)
}
