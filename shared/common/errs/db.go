package errs

import (
	"errors"

	"github.com/lib/pq"
)

// postgres error codes ที่ต้องแยกชนิด
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     pq.ErrorCode = "23505"
	pgForeignKeyViolation pq.ErrorCode = "23503"
	pgCheckViolation      pq.ErrorCode = "23514"
)

// HandleDBError แปลง error จากฐานข้อมูลให้เป็น AppError
func HandleDBError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ConflictError(pqErr.Message)
		case pgForeignKeyViolation:
			return ResourceNotFoundError(pqErr.Message)
		case pgCheckViolation:
			return InputValidationError(pqErr.Message)
		}
	}

	return OperationFailedError(err.Error())
}
