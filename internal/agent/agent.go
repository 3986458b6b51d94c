// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent runs the reasoning loop that answers one query with the help
// of search tools, and composes it with prompt building and output repair
// into the per-turn pipeline.
package agent

import (
	"context"
	"errors"
)

// ErrIterationLimit reports that a run hit the tool-call cap before reaching
// a final answer. Callers match it with errors.Is instead of inspecting the
// message text.
var ErrIterationLimit = errors.New("iteration limit reached")

// Tool is one capability the agent can invoke by name with a free-text input.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}

// Invocation records one tool call made during a run.
type Invocation struct {
	Tool  string
	Input string
}

// Transcript is the outcome of one run: the final answer plus the ordered
// tool calls that produced it.
type Transcript struct {
	Answer string
	Calls  []Invocation
}

// Runner executes the reasoning loop for one rendered prompt.
type Runner interface {
	Run(ctx context.Context, prompt string, tools []Tool) (string, error)
}
