package getbyid

import (
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/contract/customercontract"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, getCustomerByIDHTTPHandler)
}

// GetCustomerByID godoc
// @Summary		Get Customer
// @Description	Get Customer By ID
// @Tags			Customer
// @Produce		json
// @Param			id	path	int	true	"customer id"
// @Failure		400
// @Failure		404
// @Failure		500
// @Success		200	{object}	customercontract.CustomerInfo
// @Router			/customers/{id} [get]
func getCustomerByIDHTTPHandler(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errs.BadRequestError("invalid customer id")
	}

	resp, err := mediator.Send[*customercontract.GetCustomerByIDQuery, *customercontract.GetCustomerByIDQueryResult](
		c.Context(),
		&customercontract.GetCustomerByIDQuery{ID: id},
	)
	if err != nil {
		return err
	}

	return c.JSON(resp.CustomerInfo)
}
