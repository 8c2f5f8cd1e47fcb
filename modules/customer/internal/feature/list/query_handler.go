package list

import (
	"context"
	"go-rewards/modules/customer/internal/repository"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/contract/customercontract"
)

type listCustomersQueryHandler struct {
	custRepo repository.CustomerRepository
}

func NewListCustomersQueryHandler(custRepo repository.CustomerRepository) *listCustomersQueryHandler {
	return &listCustomersQueryHandler{custRepo: custRepo}
}

func (h *listCustomersQueryHandler) Handle(ctx context.Context, _ *ListCustomersQuery) (*ListCustomersQueryResult, error) {
	customers, err := h.custRepo.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return nil, err
	}

	result := &ListCustomersQueryResult{Customers: make([]customercontract.CustomerInfo, 0, len(customers))}
	for _, c := range customers {
		result.Customers = append(result.Customers, *c.ToInfo())
	}
	return result, nil
}
