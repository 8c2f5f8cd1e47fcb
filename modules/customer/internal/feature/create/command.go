package create

import "go-rewards/shared/contract/customercontract"

type CreateCustomerCommand struct {
	CreateCustomerRequest
}

type CreateCustomerCommandResult struct {
	customercontract.CustomerInfo
}

func NewCreateCustomerCommandResult(info *customercontract.CustomerInfo) *CreateCustomerCommandResult {
	return &CreateCustomerCommandResult{CustomerInfo: *info}
}
