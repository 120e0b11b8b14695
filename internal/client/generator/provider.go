// Package generator talks to hosted language models. A Provider turns a
// prompt into the model's raw text; interpreting that text is up to the
// caller.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotConfigured   = errors.New("provider api key not configured")
	ErrAuthFailed      = errors.New("provider authentication failed")
	ErrRateLimited     = errors.New("provider rate limited")
	ErrUnavailable     = errors.New("provider unavailable")
	ErrEmptyResponse   = errors.New("provider returned no text")
	ErrUnknownProvider = errors.New("unknown provider")
)

// Provider completes a single user prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options configure a provider. Zero values fall back to provider defaults.
type Options struct {
	APIKey    string
	Model     string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}

// New builds the provider named by name ("anthropic" or "gemini").
func New(ctx context.Context, name string, opts Options) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch name {
	case "anthropic", "":
		p, err = NewAnthropic(opts)
	case "gemini":
		p, err = NewGemini(ctx, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
