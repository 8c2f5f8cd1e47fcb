package getbyemail

import (
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/contract/customercontract"
	"strings"

	"github.com/gofiber/fiber/v3"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getCustomerByEmailHTTPHandler)
}

// GetCustomerByEmail godoc
// @Summary		Get Customer By Email
// @Description	Get Customer By Email
// @Tags			Customer
// @Produce		json
// @Param			email	query	string	true	"customer email"
// @Failure		404
// @Failure		422
// @Failure		500
// @Success		200	{object}	customercontract.CustomerInfo
// @Router			/customers/by-email [get]
func getCustomerByEmailHTTPHandler(c fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return errs.InputValidationError("email: must not be blank")
	}

	resp, err := mediator.Send[*customercontract.GetCustomerByEmailQuery, *customercontract.GetCustomerByEmailQueryResult](
		c.Context(),
		&customercontract.GetCustomerByEmailQuery{Email: email},
	)
	if err != nil {
		return err
	}

	return c.JSON(resp.CustomerInfo)
}
