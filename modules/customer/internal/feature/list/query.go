package list

import "go-rewards/shared/contract/customercontract"

type ListCustomersQuery struct{}

type ListCustomersQueryResult struct {
	Customers []customercontract.CustomerInfo
}
