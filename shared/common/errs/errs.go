package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType คือชนิดของ error ที่ใช้แปลงเป็น HTTP status
type ErrorType string

const (
	ErrTypeBadRequest       ErrorType = "BAD_REQUEST"        // รูปแบบ input ผิด เช่น parse JSON หรือวันที่ไม่ได้
	ErrTypeInputValidation  ErrorType = "INPUT_VALIDATION"   // ค่าใน input ไม่ผ่านเงื่อนไข
	ErrTypeBusinessRule     ErrorType = "BUSINESS_RULE"      // ผิด business rule
	ErrTypeConflict         ErrorType = "CONFLICT"           // ข้อมูลซ้ำ เช่น email
	ErrTypeStateConflict    ErrorType = "STATE_CONFLICT"     // สถานะไม่ถูกต้อง
	ErrTypeResourceNotFound ErrorType = "RESOURCE_NOT_FOUND" // หาข้อมูลไม่เจอ
	ErrTypeOperationFailed  ErrorType = "OPERATION_FAILED"   // error อื่นๆ ที่ไม่ได้จัดกลุ่มไว้
)

// ตารางแปลงชนิด error -> HTTP status (คงที่ ไม่เปลี่ยนตอน runtime)
var statusByType = map[ErrorType]int{
	ErrTypeBadRequest:       http.StatusBadRequest,
	ErrTypeInputValidation:  http.StatusUnprocessableEntity,
	ErrTypeBusinessRule:     http.StatusUnprocessableEntity,
	ErrTypeConflict:         http.StatusUnprocessableEntity,
	ErrTypeStateConflict:    http.StatusConflict,
	ErrTypeResourceNotFound: http.StatusNotFound,
	ErrTypeOperationFailed:  http.StatusInternalServerError,
}

type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// HTTPStatus คืนค่า status code ตามชนิดของ error
func (e *AppError) HTTPStatus() int {
	if status, ok := statusByType[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(errType ErrorType, message string) *AppError {
	return &AppError{Type: errType, Message: message}
}

func BadRequestError(message string) *AppError {
	return New(ErrTypeBadRequest, message)
}

func InputValidationError(message string) *AppError {
	return New(ErrTypeInputValidation, message)
}

func BusinessRuleError(message string) *AppError {
	return New(ErrTypeBusinessRule, message)
}

func ConflictError(message string) *AppError {
	return New(ErrTypeConflict, message)
}

func StateConflictError(message string) *AppError {
	return New(ErrTypeStateConflict, message)
}

func ResourceNotFoundError(message string) *AppError {
	return New(ErrTypeResourceNotFound, message)
}

func OperationFailedError(message string) *AppError {
	return New(ErrTypeOperationFailed, message)
}

// GetErrorType ดึงชนิดของ error ออกมา ถ้าไม่ใช่ AppError จะถือเป็น OPERATION_FAILED
func GetErrorType(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeOperationFailed
}

// HTTPStatus คืน status code ของ error ใดๆ
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message คืนข้อความของ error โดยไม่มี prefix ของชนิด
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
