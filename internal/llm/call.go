package llm

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"
)

// Budget bounds a single completion call. Extraction-style calls run short
// and near-deterministic; open Q&A gets the larger allowance.
type Budget struct {
	MaxTokens   int32
	Temperature float32
	Timeout     time.Duration
}

var (
	// BudgetClassify covers single-label intent classification.
	BudgetClassify = Budget{MaxTokens: 16, Temperature: 0, Timeout: 10 * time.Second}
	// BudgetExtract covers structured JSON extraction.
	BudgetExtract = Budget{MaxTokens: 256, Temperature: 0.1, Timeout: 15 * time.Second}
	// BudgetAnswer covers open-ended Q&A.
	BudgetAnswer = Budget{MaxTokens: 1000, Temperature: 0.5, Timeout: 30 * time.Second}
)

// Call runs one bounded completion against the provider and returns a
// categorized result. A nil provider reports an auth failure so the caller
// can surface the configure-a-key message.
func Call(ctx context.Context, p Provider, budget Budget, system, user string) CallResult {
	if p == nil {
		return Failure(FailureAuth, errors.New("no completion provider configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, budget.Timeout)
	defer cancel()

	p.SetTemperature(budget.Temperature)
	p.SetMaxTokens(budget.MaxTokens)

	text, err := p.Complete(ctx, []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return Failure(ClassifyError(err), err)
	}
	return Success(strings.TrimSpace(text))
}

// ResolveAPIKey resolves the OpenAI key for a session. A user-supplied
// session key takes precedence over the process environment; absence of both
// is a normal state, not an error.
func ResolveAPIKey(sessionKey string) (string, bool) {
	if sessionKey != "" {
		return sessionKey, true
	}
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		return env, true
	}
	return "", false
}

// StripFences removes Markdown code-fence wrapping from a model response so
// the remainder can be parsed as JSON.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
