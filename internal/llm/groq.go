// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/xndrsa/search-agent/pkg/types"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// DefaultGroqModel matches the assistant's stock configuration.
const DefaultGroqModel = "gemma2-9b-it"

// GroqGenerator calls an OpenAI-compatible chat completion API. With the
// default base URL it talks to Groq; tests point BaseURL at a local server.
type GroqGenerator struct {
	client    *openai.Client
	model     string
	maxTokens int
	streaming bool
}

// NewGroq builds a GroqGenerator from config.
func NewGroq(cfg types.LLMConfig) *GroqGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = groqBaseURL
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGroqModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &GroqGenerator{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: maxTokens,
		streaming: cfg.Streaming,
	}
}

// Generate sends the prompt as a single user message and returns the
// completion text. When streaming is enabled the deltas are accumulated
// before returning; the caller always sees the full text.
func (g *GroqGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	if g.streaming {
		return g.generateStream(ctx, req)
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *GroqGenerator) generateStream(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	req.Stream = true
	stream, err := g.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion stream: %w", err)
	}
	defer stream.Close()

	var b strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading stream: %w", err)
		}
		if len(chunk.Choices) > 0 {
			b.WriteString(chunk.Choices[0].Delta.Content)
		}
	}
	return b.String(), nil
}
