package llm

import (
	"context"
	"errors"
	"strings"
)

// FailureKind categorizes an external-call failure so callers can pick the
// right user-facing message without inspecting raw errors.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureAuth
	FailureConnectivity
	FailureParse
)

func (k FailureKind) String() string {
	switch k {
	case FailureAuth:
		return "auth"
	case FailureConnectivity:
		return "connectivity"
	case FailureParse:
		return "parse"
	default:
		return "none"
	}
}

// CallResult is the outcome of one completion call: either the generated
// text or a categorized failure. Failures never escape as raw errors past
// the component that receives this.
type CallResult struct {
	Text string
	Kind FailureKind
	Err  error
}

// OK reports whether the call produced usable text
func (r CallResult) OK() bool {
	return r.Kind == FailureNone
}

// Success wraps generated text in a CallResult
func Success(text string) CallResult {
	return CallResult{Text: text}
}

// Failure wraps a categorized error in a CallResult
func Failure(kind FailureKind, err error) CallResult {
	return CallResult{Kind: kind, Err: err}
}

// Apology returns the user-facing message for a failure category. Every
// category maps to a complete sentence, never a stack trace.
func (k FailureKind) Apology() string {
	switch k {
	case FailureAuth:
		return "There seems to be an issue with the API key. Please check that your API key is valid."
	case FailureConnectivity:
		return "I'm having trouble connecting to the language model service. Please try again in a moment."
	case FailureParse:
		return "I had trouble processing the response format. Please try rephrasing your request."
	default:
		return "I'm having trouble processing your request. Please try again."
	}
}

// ClassifyError maps a transport error to a failure category
func ClassifyError(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureConnectivity
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"unauthorized", "401", "api key", "invalid_api_key", "authentication", "permission"} {
		if strings.Contains(msg, marker) {
			return FailureAuth
		}
	}
	return FailureConnectivity
}
