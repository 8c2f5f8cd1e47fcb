package getbyid

import (
	"context"
	"go-rewards/modules/customer/domainerrors"
	"go-rewards/modules/customer/internal/repository"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/contract/customercontract"
)

type getCustomerByIDQueryHandler struct {
	custRepo repository.CustomerRepository
}

func NewGetCustomerByIDQueryHandler(custRepo repository.CustomerRepository) *getCustomerByIDQueryHandler {
	return &getCustomerByIDQueryHandler{custRepo: custRepo}
}

func (h *getCustomerByIDQueryHandler) Handle(ctx context.Context, query *customercontract.GetCustomerByIDQuery) (*customercontract.GetCustomerByIDQueryResult, error) {
	customer, err := h.custRepo.FindByID(ctx, query.ID)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	if customer == nil {
		return nil, domainerrors.CustomerNotFoundWithID(query.ID)
	}

	return &customercontract.GetCustomerByIDQueryResult{CustomerInfo: *customer.ToInfo()}, nil
}
