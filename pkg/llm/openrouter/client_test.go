package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberbuddy/backend/pkg/config"
	"github.com/cyberbuddy/backend/pkg/llm"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "Cyber Buddy", r.Header.Get("X-Title"))

		var body chatCompletionsRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			return
		}
		assert.Equal(t, "test/model", body.Model)
		if !assert.Len(t, body.Messages, 2) {
			return
		}
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "be helpful", body.Messages[0].Content)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "What is nmap?", body.Messages[1].Content)
		if assert.NotNil(t, body.Temperature) {
			assert.Equal(t, 0.0, *body.Temperature)
		}
		assert.Equal(t, 128, body.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":" Nmap is a network scanner. "}}]}`))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL+"/", "fallback/model", "Cyber Buddy", "", time.Second)
	out, err := c.Complete(context.Background(), llm.Request{
		System:    "be helpful",
		User:      "What is nmap?",
		Model:     "test/model",
		MaxTokens: 128,
	})
	require.NoError(t, err)
	assert.Equal(t, " Nmap is a network scanner. ", out)
}

func TestComplete_StatusErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		target error
		text   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, target: llm.ErrAuth},
		{name: "rate limited", status: http.StatusTooManyRequests, target: llm.ErrRateLimited},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, target: llm.ErrTimeout},
		{name: "envelope", status: http.StatusBadGateway, body: `{"error":{"message":"upstream exploded"}}`, text: "openrouter http 502: upstream exploded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New("k", srv.URL, "", "", "", time.Second).Complete(context.Background(), llm.Request{User: "hi"})
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
			if tc.text != "" {
				assert.EqualError(t, err, tc.text)
			}
		})
	}
}

func TestComplete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := New("k", srv.URL, "", "", "", time.Second).Complete(context.Background(), llm.Request{User: "hi"})
	assert.EqualError(t, err, "no choices returned by model")
}

func TestComplete_DeadlineMapsToTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-done:
		}
	}))
	defer srv.Close()
	defer close(done)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := New("k", srv.URL, "", "", "", 5*time.Second).Complete(ctx, llm.Request{User: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrTimeout)
	assert.NotContains(t, err.Error(), srv.URL, "endpoint must not leak into the error text")
}

func TestComplete_UnreachableMapsToTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New("k", url, "", "", "", time.Second).Complete(context.Background(), llm.Request{User: "hi"})
	assert.ErrorIs(t, err, llm.ErrTransport)
}

func TestComplete_EmptyKey(t *testing.T) {
	_, err := New("", "", "", "", "", 0).Complete(context.Background(), llm.Request{User: "hi"})
	assert.ErrorIs(t, err, llm.ErrAuth)
}

func TestFromConfig(t *testing.T) {
	c, err := FromConfig(config.Provider{Name: "openrouter", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)

	c, err = FromConfig(config.Provider{Name: "openai", APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, OpenAIBaseURL, c.BaseURL)
	assert.Equal(t, "gpt-4o", c.Model)

	_, err = FromConfig(config.Provider{Name: "carrier-pigeon"})
	assert.EqualError(t, err, `unsupported provider "carrier-pigeon"`)
}
