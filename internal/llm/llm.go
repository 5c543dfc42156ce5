// Package llm abstracts the generative-text providers behind a single
// prompt-in, text-out interface. Returned text is opaque: possibly empty,
// possibly carrying the loose **/- markup the renderer understands, never
// guaranteed to follow any markup dialect.
package llm

import (
	"context"
	"errors"
)

// Generator produces text for a free-form prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderGenerator is the fallback when no provider is wired. Every
// call fails, which the generation service degrades into placeholder text.
type PlaceholderGenerator struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
