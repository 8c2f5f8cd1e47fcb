package list

import (
	"go-rewards/shared/common/mediator"

	"github.com/gofiber/fiber/v3"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, listCustomersHTTPHandler)
}

// ListCustomers godoc
// @Summary		List Customers
// @Description	List all registered customers
// @Tags			Customer
// @Produce		json
// @Failure		500
// @Success		200	{array}	customercontract.CustomerInfo
// @Router			/customers/get [get]
func listCustomersHTTPHandler(c fiber.Ctx) error {
	resp, err := mediator.Send[*ListCustomersQuery, *ListCustomersQueryResult](c.Context(), &ListCustomersQuery{})
	if err != nil {
		return err
	}

	return c.JSON(resp.Customers)
}
