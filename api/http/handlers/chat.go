package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyberbuddy/backend/api/http/presenter"
	"github.com/cyberbuddy/backend/pkg/chat"
)

type ChatHandler struct {
	uc chat.UseCase
}

func NewChatHandler(uc chat.UseCase) *ChatHandler { return &ChatHandler{uc: uc} }

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// Chat forwards a prompt to the language model and returns its answer.
// @Summary     Ask the cybersecurity assistant
// @Description Success and warning (empty model output) return 200. Invalid input returns 400, all other failures 500, both with a user-facing detail.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       input body chatRequest true "Prompt"
// @Success     200 {object} presenter.ChatResponse
// @Failure     400 {object} presenter.ChatErrorResponse
// @Failure     401 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ChatErrorResponse
// @Router      /chat/ [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		// An unreadable body is handled like an empty prompt.
		req.Prompt = ""
	}
	return presenter.Chat(c, h.uc.Handle(c.Context(), req.Prompt))
}
