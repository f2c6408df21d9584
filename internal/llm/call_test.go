package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	response string
	err      error

	calls        int
	temperature  float32
	maxTokens    int32
	lastMessages []Message
}

func (p *stubProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	p.calls++
	p.lastMessages = messages
	return p.response, p.err
}

func (p *stubProvider) SetTemperature(temperature float32) { p.temperature = temperature }
func (p *stubProvider) SetMaxTokens(maxTokens int32)       { p.maxTokens = maxTokens }

func TestCallAppliesBudgetAndTrims(t *testing.T) {
	p := &stubProvider{response: "  order_placement\n"}

	res := Call(context.Background(), p, BudgetClassify, "system prompt", "user text")
	require.True(t, res.OK())
	assert.Equal(t, "order_placement", res.Text)

	assert.Equal(t, 1, p.calls)
	assert.Equal(t, float32(0), p.temperature)
	assert.Equal(t, int32(16), p.maxTokens)

	require.Len(t, p.lastMessages, 2)
	assert.Equal(t, "system", p.lastMessages[0].Role)
	assert.Equal(t, "system prompt", p.lastMessages[0].Content)
	assert.Equal(t, "user", p.lastMessages[1].Role)
	assert.Equal(t, "user text", p.lastMessages[1].Content)
}

func TestCallNilProviderReportsAuthFailure(t *testing.T) {
	res := Call(context.Background(), nil, BudgetAnswer, "system", "user")

	assert.False(t, res.OK())
	assert.Equal(t, FailureAuth, res.Kind)
	assert.NotEmpty(t, res.Kind.Apology())
}

func TestCallCategorizesProviderErrors(t *testing.T) {
	tests := []struct {
		err  error
		kind FailureKind
	}{
		{errors.New("dial tcp: connection refused"), FailureConnectivity},
		{errors.New("401 Unauthorized"), FailureAuth},
		{errors.New("invalid_api_key provided"), FailureAuth},
		{context.DeadlineExceeded, FailureConnectivity},
	}

	for _, tc := range tests {
		p := &stubProvider{err: tc.err}
		res := Call(context.Background(), p, BudgetExtract, "system", "user")
		assert.False(t, res.OK())
		assert.Equal(t, tc.kind, res.Kind, "error %v", tc.err)
	}
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	key, ok := ResolveAPIKey("session-key")
	assert.True(t, ok)
	assert.Equal(t, "session-key", key)

	key, ok = ResolveAPIKey("")
	assert.True(t, ok)
	assert.Equal(t, "env-key", key)

	t.Setenv("OPENAI_API_KEY", "")
	_, ok = ResolveAPIKey("")
	assert.False(t, ok)
}

func TestStripFences(t *testing.T) {
	fenced := "```json\n{\"items\": []}\n```"
	assert.Equal(t, `{"items": []}`, StripFences(fenced))
	assert.Equal(t, `{"items": []}`, StripFences(`{"items": []}`))
	assert.Equal(t, "plain text", StripFences("```\nplain text\n```"))
}
