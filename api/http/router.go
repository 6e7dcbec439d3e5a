package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyberbuddy/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. chatGuard may be nil.
func Register(app *fiber.App, health *handlers.HealthHandler, chat *handlers.ChatHandler, info *handlers.InfoHandler, logs *handlers.LogsHandler, chatGuard fiber.Handler) {
	app.Get("/", health.Welcome)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	cg := app.Group("/chat")
	cg.Get("/health", health.ChatHealth)
	if chatGuard != nil {
		cg.Post("/", chatGuard, chat.Chat)
	} else {
		cg.Post("/", chat.Chat)
	}

	ig := app.Group("/info")
	ig.Get("/", info.List)
	ig.Get("/:topic", info.Get)

	lg := app.Group("/logs")
	lg.Post("/", logs.Analyze)
}
