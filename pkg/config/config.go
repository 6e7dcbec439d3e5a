package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Provider holds the language model settings. It is read once at startup and
// shared read-only by every request.
type Provider struct {
	Name            string
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
	AppTitle        string
	Referer         string
	// RequestsPerSecond of 0 disables the local throttle.
	RequestsPerSecond float64
	Burst             int
}

type Config struct {
	Port           string
	LogLevel       string
	Debug          bool
	AllowOrigins   string
	MaxUploadBytes int64
	JWTSecret      string
	JWTIssuer      string
	Provider       Provider
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("LLM_API_KEY")
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Debug:          getEnvBool("CHAT_DEBUG", false),
		AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTIssuer:      getEnv("JWT_ISSUER", "cyberbuddy"),
		Provider: Provider{
			Name:              strings.ToLower(getEnv("LLM_PROVIDER", "openrouter")),
			APIKey:            strings.TrimSpace(apiKey),
			BaseURL:           os.Getenv("OPENROUTER_BASE_URL"),
			Model:             getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			Temperature:       getEnvFloat("LLM_TEMPERATURE", 0.7),
			MaxOutputTokens:   getEnvInt("LLM_MAX_OUTPUT_TOKENS", 1000),
			Timeout:           getEnvDuration("PROVIDER_TIMEOUT", 30*time.Second),
			AppTitle:          getEnv("OPENROUTER_APP_TITLE", "Cyber Buddy"),
			Referer:           os.Getenv("OPENROUTER_REFERER"),
			RequestsPerSecond: getEnvFloat("PROVIDER_RPS", 0),
			Burst:             getEnvInt("PROVIDER_BURST", 1),
		},
	}
	return cfg
}

// Configured reports whether a provider credential is present.
func (p Provider) Configured() bool { return p.APIKey != "" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("45s") or a plain number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
