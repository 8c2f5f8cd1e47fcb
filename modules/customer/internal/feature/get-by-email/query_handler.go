package getbyemail

import (
	"context"
	"go-rewards/modules/customer/domainerrors"
	"go-rewards/modules/customer/internal/repository"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/contract/customercontract"
)

type getCustomerByEmailQueryHandler struct {
	custRepo repository.CustomerRepository
}

func NewGetCustomerByEmailQueryHandler(custRepo repository.CustomerRepository) *getCustomerByEmailQueryHandler {
	return &getCustomerByEmailQueryHandler{custRepo: custRepo}
}

func (h *getCustomerByEmailQueryHandler) Handle(ctx context.Context, query *customercontract.GetCustomerByEmailQuery) (*customercontract.GetCustomerByEmailQueryResult, error) {
	customer, err := h.custRepo.FindByEmail(ctx, query.Email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	if customer == nil {
		return nil, domainerrors.CustomerNotFoundWithEmail(query.Email)
	}

	return &customercontract.GetCustomerByEmailQueryResult{CustomerInfo: *customer.ToInfo()}, nil
}
