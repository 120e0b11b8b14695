package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	defaultAnthropicModel   = "claude-sonnet-4-20250514"
	anthropicVersion        = "2023-06-01"
	anthropicMessagesPath   = "/messages"
	defaultMaxTokens        = 1000
	defaultTimeout          = 60 * time.Second
	maxResponseBytes        = 1 << 20
)

// APIError is a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
	err        error
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("provider error %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Anthropic calls the Messages API.
type Anthropic struct {
	apiKey     string
	model      string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
}

func NewAnthropic(opts Options) (*Anthropic, error) {
	if opts.APIKey == "" {
		return nil, ErrNotConfigured
	}
	a := &Anthropic{
		apiKey:    opts.APIKey,
		model:     opts.Model,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		maxTokens: opts.MaxTokens,
	}
	if a.model == "" {
		a.model = defaultAnthropicModel
	}
	if a.baseURL == "" {
		a.baseURL = defaultAnthropicBaseURL
	}
	if a.maxTokens <= 0 {
		a.maxTokens = defaultMaxTokens
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	a.httpClient = &http.Client{Timeout: timeout}
	return a, nil
}

func (a *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(anthropicRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+anthropicMessagesPath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out anthropicResponse
	decodeErr := json.Unmarshal(respBody, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		if decodeErr == nil && out.Error != nil {
			apiErr.Type, apiErr.Message = out.Error.Type, out.Error.Message
		}
		apiErr.err = classifyStatus(resp.StatusCode)
		return "", apiErr
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}
	if len(out.Content) == 0 {
		return "", ErrEmptyResponse
	}
	return out.Content[0].Text, nil
}

func classifyStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrAuthFailed
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return ErrUnavailable
	}
	return nil
}
