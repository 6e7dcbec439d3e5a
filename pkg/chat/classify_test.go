package chat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyberbuddy/backend/pkg/llm"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Invalid API key provided", msgConnectivity},
		{"openai.APIConnectionError", msgConnectivity},
		{"Rate Limit reached for requests", msgRateLimited},
		{"read tcp: i/o TIMEOUT", msgTimeout},
		{"something odd", msgGeneric},
		{"", msgGeneric},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(errors.New(tc.in)), "input %q", tc.in)
	}
	assert.Equal(t, msgGeneric, Classify(nil))
}

func TestClassify_PriorityOrder(t *testing.T) {
	// rate limit beats timeout
	assert.Equal(t, msgRateLimited, Classify(errors.New("timeout while waiting: rate limit exceeded")))
	assert.Equal(t, msgRateLimited, Classify(errors.New("RATE LIMIT hit after TIMEOUT")))
	// api beats both
	assert.Equal(t, msgConnectivity, Classify(errors.New("api rate limit timeout")))
}

func TestClassify_SentinelTexts(t *testing.T) {
	assert.Equal(t, msgConnectivity, Classify(llm.ErrAuth))
	assert.Equal(t, msgConnectivity, Classify(llm.ErrTransport))
	assert.Equal(t, msgRateLimited, Classify(llm.ErrRateLimited))
	assert.Equal(t, msgTimeout, Classify(llm.ErrTimeout))
	assert.Equal(t, msgGeneric, Classify(llm.ErrUnavailable))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDependency, kindOf(fmt.Errorf("wrap: %w", llm.ErrUnavailable)))
	assert.Equal(t, KindProcessing, kindOf(llm.ErrTimeout))
	assert.Equal(t, KindProcessing, kindOf(errors.New("x")))
}
