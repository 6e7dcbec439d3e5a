package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyberbuddy/backend/pkg/chat"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// ChatResponse is the 200 body for success and warning outcomes.
type ChatResponse struct {
	Response  string `json:"response"`
	Status    string `json:"status"`
	ErrorType string `json:"error_type,omitempty"`
}

// ChatErrorResponse is the 4xx/5xx body for error outcomes.
type ChatErrorResponse struct {
	Detail      string `json:"detail"`
	Status      string `json:"status"`
	ErrorType   string `json:"error_type"`
	DebugDetail string `json:"debug_detail,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Chat writes an outcome. Success and warning are 200; invalid input is 400;
// every other error kind is 500 with the user-facing message as detail.
func Chat(c *fiber.Ctx, o chat.Outcome) error {
	if o.Status != chat.StatusError {
		return JSON(c, fiber.StatusOK, ChatResponse{
			Response:  o.Response,
			Status:    string(o.Status),
			ErrorType: string(o.ErrorKind),
		})
	}
	code := fiber.StatusInternalServerError
	if o.ErrorKind == chat.KindInvalidInput {
		code = fiber.StatusBadRequest
	}
	return JSON(c, code, ChatErrorResponse{
		Detail:      o.Response,
		Status:      string(o.Status),
		ErrorType:   string(o.ErrorKind),
		DebugDetail: o.DebugDetail,
	})
}
