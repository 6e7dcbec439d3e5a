package checkers

import (
	"context"
	"errors"

	"github.com/cyberbuddy/backend/pkg/config"
)

var ErrNoAPIKey = errors.New("api key is not configured")

// ProviderChecker reports the chat provider as not ready when no credential
// was supplied. It never calls the provider itself.
type ProviderChecker struct {
	provider config.Provider
}

func NewProviderChecker(p config.Provider) *ProviderChecker {
	return &ProviderChecker{provider: p}
}

func (c *ProviderChecker) Name() string { return "llm_provider" }

func (c *ProviderChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.provider.Configured() {
		return ErrNoAPIKey
	}
	return nil
}
