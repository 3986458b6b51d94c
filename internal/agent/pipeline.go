// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"errors"

	"github.com/xndrsa/search-agent/internal/normalize"
	"github.com/xndrsa/search-agent/internal/prompt"
	"github.com/xndrsa/search-agent/internal/session"
	"github.com/xndrsa/search-agent/internal/templates"
)

// StoppedMessage replaces the answer when a run hits the iteration cap.
const StoppedMessage = "Search stopped due to too many iterations. Please try a more specific query."

// Pipeline wires one turn end to end: prompt build, agent run, output
// repair, and the conversation log append.
type Pipeline struct {
	Builder prompt.Builder
	Runner  Runner
	Tools   []Tool
	Log     *session.Log
}

// Respond answers one user query. The turn runs to completion before the
// next query is accepted; there is no background work and no cancellation
// beyond ctx. An iteration-cap failure is converted to StoppedMessage; every
// other runner error propagates, leaving the log with the user turn only so
// earlier turns survive a failed one. The returned text always contains the
// schema delimiter, via the normalizer's repair path when needed.
func (p *Pipeline) Respond(ctx context.Context, query, templateName, requiredFormat string) (string, error) {
	if p.Log != nil {
		p.Log.Append("user", query)
	}

	built := p.Builder.Build(query, templateName, requiredFormat)

	raw, err := p.Runner.Run(ctx, built, p.Tools)
	switch {
	case errors.Is(err, ErrIterationLimit):
		raw = StoppedMessage
	case err != nil:
		return "", err
	}

	answer := normalize.Normalize(raw, templates.SplitFormat(requiredFormat))

	if p.Log != nil {
		p.Log.Append("assistant", answer)
	}
	return answer, nil
}
