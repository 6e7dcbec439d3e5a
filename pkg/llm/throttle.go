package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type throttled struct {
	next    ChatModel
	limiter *rate.Limiter
}

// WithRateLimit guards next with a token bucket. Calls over budget fail fast
// with ErrRateLimited instead of queueing. rps <= 0 returns next unchanged.
func WithRateLimit(next ChatModel, rps float64, burst int) ChatModel {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &throttled{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (t *throttled) Complete(ctx context.Context, req Request) (string, error) {
	if !t.limiter.Allow() {
		return "", fmt.Errorf("%w: local budget of %.2f req/s", ErrRateLimited, float64(t.limiter.Limit()))
	}
	return t.next.Complete(ctx, req)
}
