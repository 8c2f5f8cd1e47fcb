package middleware

import (
	"errors"
	"net/http"
	"time"

	"go-rewards/shared/common/errs"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse คือรูปแบบ body เมื่อเกิด error ทุกกรณี
type ErrorResponse struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// ResponseError แปลง error ที่ handler คืนมาเป็น JSON response ตามชนิดของ error
func ResponseError() fiber.Handler {
	return func(c fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		return writeError(c, err)
	}
}

// ErrorHandler ใช้เป็น fiber.Config.ErrorHandler สำหรับ error ที่หลุดมาถึงชั้นนอกสุด เช่น panic ที่ recover ได้
func ErrorHandler(c fiber.Ctx, err error) error {
	return writeError(c, err)
}

func writeError(c fiber.Ctx, err error) error {
	status := errs.HTTPStatus(err)
	message := errs.Message(err)

	// error ของ fiber เอง เช่น route ไม่พบ (404) หรือ method ไม่รองรับ (405)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(status).JSON(NewErrorResponse(status, message))
}
