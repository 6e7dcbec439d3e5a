// @title         Cyber Buddy API
// @version       1.0
// @description   Backend for Cyber Buddy, a cybersecurity assistant: LLM chat, topic lookup and log classification.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Only enforced on POST /chat/ when JWT_SECRET is set. "Bearer <JWT>" or "<JWT>".
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/cyberbuddy/backend/docs"

	// internal imports
	"github.com/cyberbuddy/backend/api/http"
	"github.com/cyberbuddy/backend/api/http/handlers"
	"github.com/cyberbuddy/backend/pkg/chat"
	"github.com/cyberbuddy/backend/pkg/config"
	"github.com/cyberbuddy/backend/pkg/health"
	"github.com/cyberbuddy/backend/pkg/health/checkers"
	"github.com/cyberbuddy/backend/pkg/llm"
	"github.com/cyberbuddy/backend/pkg/llm/openrouter"
	"github.com/cyberbuddy/backend/pkg/logger"
	"github.com/cyberbuddy/backend/pkg/metrics"
	"github.com/cyberbuddy/backend/pkg/security/jwt"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// LLM client. A missing key is not fatal: chat requests short-circuit instead.
	var model llm.ChatModel
	client, err := openrouter.FromConfig(cfg.Provider)
	if err != nil {
		log.Error().Err(err).Msg("llm client unavailable")
		model = llm.Unavailable(err)
	} else {
		model = llm.WithRateLimit(client, cfg.Provider.RequestsPerSecond, cfg.Provider.Burst)
	}
	if !cfg.Provider.Configured() {
		log.Warn().Msg("OPENROUTER_API_KEY is not set; chat requests will return configuration_error")
	}

	chatUC := chat.NewService(model, cfg.Provider, cfg.Debug, log, m)
	chatHandler := handlers.NewChatHandler(chatUC)

	readiness := health.NewService(checkers.NewProviderChecker(cfg.Provider))
	healthHandler := handlers.NewHealthHandler(readiness)
	infoHandler := handlers.NewInfoHandler()
	logsHandler := handlers.NewLogsHandler(cfg.MaxUploadBytes, log)

	// Optional bearer guard for the chat endpoint
	var chatGuard fiber.Handler
	if cfg.JWTSecret != "" {
		chatGuard = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := http.NewApp(cfg, log)
	app.Use(m.Middleware())
	http.Register(app, healthHandler, chatHandler, infoHandler, logsHandler, chatGuard)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(cfg.Provider.Timeout + 5*time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	log.Info().
		Str("port", cfg.Port).
		Str("provider", cfg.Provider.Name).
		Str("model", cfg.Provider.Model).
		Bool("debug", cfg.Debug).
		Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
