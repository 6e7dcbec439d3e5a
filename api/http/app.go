package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cyberbuddy/backend/api/http/middleware"
	"github.com/cyberbuddy/backend/api/http/presenter"
	"github.com/cyberbuddy/backend/pkg/config"
)

// NewApp builds the Fiber app with the shared middleware chain: panic
// recovery, request ids, CORS and access logging.
func NewApp(cfg config.Config, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cyberbuddy",
		DisableStartupMessage: true,
		// leave headroom for multipart framing around the file itself
		BodyLimit:    int(cfg.MaxUploadBytes) + 1<<20,
		ErrorHandler: errorHandler(log),
	})
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Error().Interface("panic", e).Str("path", c.Path()).Msg("panic recovered")
		},
	}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.AccessLog(log))
	return app
}

func errorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, msg = fe.Code, fe.Message
		} else {
			log.Error().Err(err).Str("path", c.Path()).Msg("unhandled handler error")
		}
		return presenter.Error(c, code, msg)
	}
}
