package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/cyberbuddy/backend/api/http/presenter"
	"github.com/cyberbuddy/backend/pkg/topics"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler { return &InfoHandler{} }

type topicResponse struct {
	Topic       string `json:"topic"`
	Description string `json:"description"`
}

// Get returns a short description of a security topic. Unknown topics get a
// fixed not-found description with status 200.
// @Summary Describe a topic
// @Tags    info
// @Produce json
// @Param   topic path string true "Topic key, case-insensitive"
// @Success 200 {object} topicResponse
// @Router  /info/{topic} [get]
func (h *InfoHandler) Get(c *fiber.Ctx) error {
	topic := c.Params("topic")
	if unescaped, err := url.PathUnescape(topic); err == nil {
		topic = unescaped
	}
	key := topics.Key(topic)
	desc, _ := topics.Describe(key)
	return presenter.JSON(c, fiber.StatusOK, topicResponse{Topic: key, Description: desc})
}

// List returns the known topic keys.
// @Summary List topics
// @Tags    info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router  /info/ [get]
func (h *InfoHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"topics": topics.Keys()})
}
