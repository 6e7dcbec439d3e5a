package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request is one completion call: a fixed system instruction plus a single user turn.
type Request struct {
	System      string
	User        string
	Model       string
	Temperature float64
	MaxTokens   int
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Provider failures. Concrete clients wrap one of these so callers can match
// with errors.Is; the texts keep message-based classification unambiguous.
var (
	ErrUnavailable = errors.New("provider client unavailable")
	ErrAuth        = errors.New("provider api authentication failed")
	ErrTransport   = errors.New("provider api unreachable")
	ErrTimeout     = errors.New("provider request timeout")
	ErrRateLimited = errors.New("provider rate limit exceeded")
)

type unavailable struct{ cause error }

// Unavailable returns a ChatModel that fails every call with ErrUnavailable.
// It stands in for a client that could not be constructed at startup.
func Unavailable(cause error) ChatModel { return unavailable{cause: cause} }

func (u unavailable) Complete(context.Context, Request) (string, error) {
	if u.cause == nil {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrUnavailable, u.cause)
}
