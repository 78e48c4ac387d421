// Package llm provides the text-generation backends used to produce store names.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rorical/storenamer/internal/config"
)

var (
	// ErrNotConfigured is returned when a provider has no usable credentials.
	ErrNotConfigured = errors.New("provider not configured")
	// ErrEmptyResponse is returned when the provider answers without any candidate.
	ErrEmptyResponse = errors.New("empty response from provider")
	// ErrUnknownProvider is returned for provider names the factory does not know.
	ErrUnknownProvider = errors.New("unknown provider")
)

// Generator submits a single instruction and returns the raw text reply.
type Generator interface {
	Generate(ctx context.Context, model, instruction string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, model, instruction string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, model, instruction string) (string, error) {
	return f(ctx, model, instruction)
}

// New builds the Generator for a profile. It returns ErrNotConfigured when the
// provider needs an API key and none is set.
func New(profile config.Profile) (Generator, error) {
	provider := profile.Provider
	if provider == "" {
		provider = config.DefaultProvider
	}

	if profile.NeedsAPIKey() && profile.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrNotConfigured)
	}

	switch provider {
	case config.ProviderGemini:
		return NewGeminiGenerator(profile.APIKey, profile.BaseURL), nil
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(profile.APIKey, profile.BaseURL), nil
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(profile.APIKey, profile.BaseURL), nil
	case config.ProviderOllama:
		return NewOllamaGenerator(profile.BaseURL)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
}
