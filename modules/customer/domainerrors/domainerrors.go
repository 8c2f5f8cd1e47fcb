package domainerrors

import (
	"fmt"
	"go-rewards/shared/common/errs"
)

var (
	ErrEmailExists = errs.ConflictError("Customer with email already exists")
)

func CustomerNotFoundWithID(id int64) *errs.AppError {
	return errs.ResourceNotFoundError(fmt.Sprintf("Customer not found with id %d", id))
}

func CustomerNotFoundWithEmail(email string) *errs.AppError {
	return errs.ResourceNotFoundError(fmt.Sprintf("Customer not found with email %s", email))
}
