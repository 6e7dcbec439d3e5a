package chat

import (
	"errors"
	"strings"

	"github.com/cyberbuddy/backend/pkg/llm"
)

// Classify maps a provider fault to a user-facing message by sniffing its text.
// Order is fixed: "api", then "rate limit", then "timeout"; anything else gets
// the generic message.
func Classify(err error) string {
	if err == nil {
		return msgGeneric
	}
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "api"):
		return msgConnectivity
	case strings.Contains(text, "rate limit"):
		return msgRateLimited
	case strings.Contains(text, "timeout"):
		return msgTimeout
	default:
		return msgGeneric
	}
}

func kindOf(err error) ErrorKind {
	if errors.Is(err, llm.ErrUnavailable) {
		return KindDependency
	}
	return KindProcessing
}
