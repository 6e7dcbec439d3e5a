package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cyberbuddy/backend/pkg/config"
	"github.com/cyberbuddy/backend/pkg/llm"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	OpenAIBaseURL  = "https://api.openai.com/v1"
	defaultModel   = "openai/gpt-4o-mini"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	httpDo   *http.Client
}

func New(apiKey, baseURL, model, appTitle, referer string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Model:    model,
		AppTitle: appTitle,
		Referer:  referer,
		httpDo: &http.Client{
			Timeout: timeout,
		},
	}
}

// FromConfig builds a client for one of the OpenAI-compatible providers.
func FromConfig(p config.Provider) (*Client, error) {
	base := p.BaseURL
	switch p.Name {
	case "", "openrouter":
	case "openai":
		if base == "" {
			base = OpenAIBaseURL
		}
	default:
		return nil, fmt.Errorf("unsupported provider %q", p.Name)
	}
	return New(p.APIKey, base, p.Model, p.AppTitle, p.Referer, p.Timeout), nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the system instruction and user turn and returns the raw reply text.
func (c *Client) Complete(ctx context.Context, req llm.Request) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("%w: api key is empty", llm.ErrAuth)
	}
	model := req.Model
	if model == "" {
		model = c.Model
	}
	if model == "" {
		model = defaultModel
	}
	temperature := req.Temperature
	reqBody := chatCompletionsRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", transportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError(resp.StatusCode, body)
	}
	var out chatCompletionsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices returned by model")
	}
	return out.Choices[0].Message.Content, nil
}

// transportError drops the request URL from the message so that the endpoint
// path does not leak into message-based classification.
func transportError(ctx context.Context, err error) error {
	cause := err
	var uerr *url.Error
	if errors.As(err, &uerr) {
		cause = uerr.Err
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded), uerr != nil && uerr.Timeout():
		return fmt.Errorf("%w: %v", llm.ErrTimeout, cause)
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return fmt.Errorf("request canceled: %w", cause)
	default:
		return fmt.Errorf("%w: %v", llm.ErrTransport, cause)
	}
}

func statusError(code int, body []byte) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", llm.ErrAuth, code)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", llm.ErrRateLimited, code)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: status %d", llm.ErrTimeout, code)
	}
	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil && env.Error.Message != "" {
		return fmt.Errorf("openrouter http %d: %s", code, env.Error.Message)
	}
	return fmt.Errorf("openrouter http %d: %s", code, strings.TrimSpace(string(body)))
}
