package generator

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// Gemini calls the Gemini API through the genai SDK.
type Gemini struct {
	client    *genai.Client
	model     string
	maxTokens int32
}

func NewGemini(ctx context.Context, opts Options) (*Gemini, error) {
	if opts.APIKey == "" {
		return nil, ErrNotConfigured
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &Gemini{client: client, model: opts.Model, maxTokens: clampTokens(opts.MaxTokens)}
	if g.model == "" {
		g.model = defaultGeminiModel
	}
	return g, nil
}

// clampTokens fits n into the SDK's int32 field. Non-positive values fall back
// to the default.
func clampTokens(n int) int32 {
	switch {
	case n <= 0:
		return defaultMaxTokens
	case n > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(n)
}

func (g *Gemini) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
