package domainerrors

import "go-rewards/shared/common/errs"

var (
	ErrCustomerNotRegistered = errs.ResourceNotFoundError("Customer not found. Please register first.")
	ErrAmountRequired        = errs.InputValidationError("amount: must not be null")
	ErrAmountTooSmall        = errs.InputValidationError("amount: must be greater than or equal to 1")
	ErrDateRequired          = errs.InputValidationError("transactionDate: must not be null")
)
