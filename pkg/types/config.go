// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "search-agent/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// WebSearchConfig holds settings for the general web search provider.
type WebSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of organic results per search (default 3).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Pause is the minimum delay between successive engine requests (default 2s).
	Pause time.Duration `json:"pause" yaml:"pause"`

	// Locale restricts results to one language region (default "us-en").
	Locale string `json:"locale" yaml:"locale"`

	// Markers is the relevance allow-list for result lines. A line from a
	// search result survives formatting only if it contains one of these
	// substrings. Empty means the built-in default set.
	Markers []string `json:"markers,omitempty" yaml:"markers,omitempty"`
}

// LookupConfig holds settings for the arXiv and Wikipedia lookup tools.
type LookupConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxContentChars caps the content returned by a lookup (default 500).
	MaxContentChars int `json:"max_content_chars" yaml:"max_content_chars"`
}

// LLMProvider identifies the text generation backend.
type LLMProvider string

const (
	ProviderGroq      LLMProvider = "groq"
	ProviderAnthropic LLMProvider = "anthropic"
)

// LLMConfig holds settings for the text generation backend.
type LLMConfig struct {
	// Provider selects the backend: groq or anthropic.
	Provider LLMProvider `json:"provider" yaml:"provider"`

	// Model is the model identifier (e.g. "gemma2-9b-it").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint. Used to point the
	// OpenAI-compatible backend at Groq, or tests at a local server.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// MaxTokens caps the completion length (default 1024).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Streaming requests incremental delivery from providers that support it.
	Streaming bool `json:"streaming" yaml:"streaming"`
}

// AgentConfig holds settings for the reasoning agent loop.
type AgentConfig struct {
	// MaxIterations is the hard cap on tool-call iterations (default 5).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`
}

// PipelineConfig groups all component configurations for one assistant process.
type PipelineConfig struct {
	WebSearch WebSearchConfig `json:"web_search" yaml:"web_search"`
	Lookup    LookupConfig    `json:"lookup" yaml:"lookup"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Agent     AgentConfig     `json:"agent" yaml:"agent"`
}
