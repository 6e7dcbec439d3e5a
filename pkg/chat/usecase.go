package chat

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/cyberbuddy/backend/pkg/config"
	"github.com/cyberbuddy/backend/pkg/llm"
)

const previewRunes = 50

// UseCase answers one prompt. Handle never returns an error and never panics:
// every failure is folded into the Outcome.
type UseCase interface {
	Handle(ctx context.Context, prompt string) Outcome
}

// Observer receives per-call measurements. It must be safe for concurrent use.
type Observer interface {
	ObserveOutcome(o Outcome)
	ObserveProviderCall(d time.Duration, err error)
}

type service struct {
	model    llm.ChatModel
	provider config.Provider
	debug    bool
	log      zerolog.Logger
	obs      Observer
}

// NewService creates the default implementation. model may be nil, in which
// case every configured request fails with a dependency error. obs may be nil.
func NewService(model llm.ChatModel, provider config.Provider, debug bool, log zerolog.Logger, obs Observer) UseCase {
	return &service{
		model:    model,
		provider: provider,
		debug:    debug,
		log:      log.With().Str("component", "chat").Logger(),
		obs:      obs,
	}
}

func (s *service) Handle(ctx context.Context, prompt string) (out Outcome) {
	if s.obs != nil {
		defer func() { s.obs.ObserveOutcome(out) }()
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		s.log.Warn().Str("error_kind", string(KindInvalidInput)).Msg("empty prompt rejected")
		return Outcome{Response: msgInvalidInput, Status: StatusError, ErrorKind: KindInvalidInput}
	}
	if !s.provider.Configured() {
		s.log.Error().Str("error_kind", string(KindConfiguration)).Msg("provider api key is not configured")
		return Outcome{Response: msgNotConfigured, Status: StatusError, ErrorKind: KindConfiguration}
	}

	s.log.Info().
		Str("prompt_preview", preview(prompt)).
		Int("prompt_chars", utf8.RuneCountInString(prompt)).
		Msg("chat request received")

	text, err := s.complete(ctx, prompt)
	if err != nil {
		return s.failure(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Warn().Str("error_kind", string(KindEmptyResponse)).Msg("provider returned empty output")
		return Outcome{Response: msgEmptyResponse, Status: StatusWarning, ErrorKind: KindEmptyResponse}
	}
	s.log.Info().Int("response_chars", utf8.RuneCountInString(text)).Msg("chat response generated")
	return Outcome{Response: text, Status: StatusSuccess}
}

func (s *service) complete(ctx context.Context, prompt string) (text string, err error) {
	if s.model == nil {
		return "", fmt.Errorf("%w: no chat model wired", llm.ErrUnavailable)
	}
	if s.provider.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.provider.Timeout)
		defer cancel()
	}
	start := time.Now()
	text, err = s.invoke(ctx, prompt)
	if s.obs != nil {
		s.obs.ObserveProviderCall(time.Since(start), err)
	}
	if err != nil && !errors.Is(err, llm.ErrTimeout) && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.log.Debug().Err(err).Msg("provider call hit the deadline")
		err = fmt.Errorf("%w after %s", llm.ErrTimeout, s.provider.Timeout)
	}
	return text, err
}

// invoke turns a provider panic into an error.
func (s *service) invoke(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("provider call panicked")
			text, err = "", fmt.Errorf("provider panic: %v", r)
		}
	}()
	return s.model.Complete(ctx, llm.Request{
		System:      systemInstruction,
		User:        prompt,
		Model:       s.provider.Model,
		Temperature: s.provider.Temperature,
		MaxTokens:   s.provider.MaxOutputTokens,
	})
}

func (s *service) failure(err error) Outcome {
	out := Outcome{
		Response:  Classify(err),
		Status:    StatusError,
		ErrorKind: kindOf(err),
	}
	if s.debug {
		out.DebugDetail = err.Error()
	}
	s.log.Error().
		Err(err).
		Str("error_kind", string(out.ErrorKind)).
		Bytes("stack", debug.Stack()).
		Msg("chat request failed")
	return out
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	r := []rune(s)
	return string(r[:previewRunes]) + "..."
}
