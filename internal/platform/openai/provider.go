// Package openai implements generation.Provider against an
// OpenAI-compatible Chat Completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/askary/studyaid-api/internal/config"
	"github.com/askary/studyaid-api/internal/domain"
	"github.com/askary/studyaid-api/internal/generation"
)

// Client-facing messages for the two failure shapes the gateway itself
// originates. Transport errors surface the underlying error text
// instead.
const (
	MissingAPIKeyMessage = "Missing API key."
	ProviderErrorMessage = "Provider error."
)

const chatCompletionsPath = "/v1/chat/completions"

// requestTimeout bounds the single network attempt. A timed-out call is
// reported like any other transport failure.
const requestTimeout = 30 * time.Second

// Provider performs chat-completion requests over HTTP. All settings
// are injected at construction time; nothing is read from ambient
// state. Exactly one network attempt is made per Chat call.
type Provider struct {
	cfg        config.ProviderConfig
	logger     *slog.Logger
	httpClient *http.Client
}

var _ generation.Provider = (*Provider)(nil)

// New creates a Provider from the given configuration. The API key is
// not validated here so that a misconfigured deployment still starts
// and reports the problem per request, matching the synchronous
// missing-key check in Chat.
func New(cfg config.ProviderConfig, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewWithHTTPClient is intended for tests; it substitutes the HTTP
// client so no network access occurs.
func NewWithHTTPClient(cfg config.ProviderConfig, logger *slog.Logger, httpClient *http.Client) *Provider {
	p := New(cfg, logger)
	if httpClient != nil {
		p.httpClient = httpClient
	}
	return p
}

type chatRequest struct {
	Model       string               `json:"model"`
	Messages    []domain.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends one chat-completion request and returns the trimmed
// assistant message content. Failures are *generation.Error values:
// KindConfiguration for a missing key (checked before any I/O),
// KindTransport for network errors, and KindProvider for non-200
// statuses or responses missing the message content.
func (p *Provider) Chat(ctx context.Context, messages []domain.ChatMessage, opts generation.ChatOptions) (string, error) {
	key := strings.TrimSpace(p.cfg.APIKey)
	if key == "" {
		return "", generation.NewError(generation.KindConfiguration, MissingAPIKeyMessage)
	}

	model := opts.Model
	if model == "" {
		model = p.cfg.Model
	}
	if model == "" {
		model = generation.DefaultModel
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = generation.DefaultTemperature
	}

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", generation.WrapError(generation.KindProvider, ProviderErrorMessage, err)
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + chatCompletionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", generation.WrapError(generation.KindTransport, err.Error(), err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	p.logger.DebugContext(ctx, "calling chat completions endpoint",
		"model", model,
		"message_count", len(messages))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// DNS, connection, and timeout failures all land here. The
		// underlying message is surfaced to the caller unchanged.
		p.logger.ErrorContext(ctx, "provider transport failure", "error", err)
		return "", generation.WrapError(generation.KindTransport, err.Error(), err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			p.logger.WarnContext(ctx, "failed to close provider response body", "error", cerr)
		}
	}()

	var parsed chatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	content := ""
	if decodeErr == nil && len(parsed.Choices) > 0 {
		content = parsed.Choices[0].Message.Content
	}

	if resp.StatusCode != http.StatusOK || content == "" {
		message := ProviderErrorMessage
		if decodeErr == nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		p.logger.ErrorContext(ctx, "provider returned an error",
			"status", resp.StatusCode,
			"message", message)
		return "", generation.NewError(generation.KindProvider, message)
	}

	return strings.TrimSpace(content), nil
}
