// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the text generation backend behind a single-method
// interface, with Groq (OpenAI-compatible) and Anthropic implementations.
package llm

import (
	"context"
	"fmt"

	"github.com/xndrsa/search-agent/pkg/types"
)

// DefaultMaxTokens caps completions when the config leaves it unset.
const DefaultMaxTokens = 1024

// Generator produces one completion for one prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the Generator selected by cfg.Provider.
func New(cfg types.LLMConfig) (Generator, error) {
	switch cfg.Provider {
	case types.ProviderGroq, "":
		return NewGroq(cfg), nil
	case types.ProviderAnthropic:
		return NewAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q: use groq or anthropic", cfg.Provider)
	}
}
