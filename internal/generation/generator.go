package generation

import (
	"context"

	"github.com/askary/studyaid-api/internal/domain"
)

// DefaultModel is the model used when neither the caller nor the
// configuration names one.
const DefaultModel = "gpt-4o-mini"

// DefaultTemperature is the sampling temperature used when the caller
// leaves ChatOptions.Temperature unset.
const DefaultTemperature = 0.2

// ChatOptions carries per-call overrides for a chat-completion request.
// Zero values mean "use the default": an empty Model resolves to the
// configured model (falling back to DefaultModel), and a zero
// Temperature resolves to DefaultTemperature.
type ChatOptions struct {
	Model       string
	Temperature float64
}

// Provider is the boundary between the application core and an external
// chat-completion backend. Implementations perform exactly one request
// per call: there is no retry or backoff, and any failure is terminal
// for the invocation.
//
// On success the trimmed assistant message content is returned. On
// failure the error is a *Error whose Kind distinguishes configuration,
// transport, and provider-semantic failures.
type Provider interface {
	Chat(ctx context.Context, messages []domain.ChatMessage, opts ChatOptions) (string, error)
}
