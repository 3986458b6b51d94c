// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// --- mocks ---

// scriptedGenerator replays canned model replies in order.
type scriptedGenerator struct {
	replies []string
	prompts []string
	err     error
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	i := len(g.prompts) - 1
	if i >= len(g.replies) {
		return g.replies[len(g.replies)-1], nil
	}
	return g.replies[i], nil
}

type fakeTool struct {
	name   string
	result string
	err    error
	inputs []string
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "fake " + t.name + " tool" }

func (t *fakeTool) Call(_ context.Context, input string) (string, error) {
	t.inputs = append(t.inputs, input)
	return t.result, t.err
}

// --- ReactRunner ---

func TestRunImmediateFinalAnswer(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"Thought: I already know this.\nFinal Answer: Texas<||>US State",
	}}
	r := &ReactRunner{Generator: gen}

	got, err := r.Run(context.Background(), "what is texas", nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != "Texas<||>US State" {
		t.Errorf("Run() = %q", got)
	}
}

func TestRunDispatchesToolThenAnswers(t *testing.T) {
	wiki := &fakeTool{name: "wikipedia", result: "Page: Texas\nSummary: a state"}
	gen := &scriptedGenerator{replies: []string{
		"Thought: I should look this up.\nAction: wikipedia\nAction Input: Texas",
		"Thought: I now know the final answer\nFinal Answer: Texas is a state",
	}}
	r := &ReactRunner{Generator: gen}

	transcript, err := r.RunTranscript(context.Background(), "what is texas", []Tool{wiki})
	if err != nil {
		t.Fatalf("RunTranscript() error: %v", err)
	}

	if transcript.Answer != "Texas is a state" {
		t.Errorf("Answer = %q", transcript.Answer)
	}
	if len(transcript.Calls) != 1 || transcript.Calls[0] != (Invocation{Tool: "wikipedia", Input: "Texas"}) {
		t.Errorf("Calls = %+v", transcript.Calls)
	}
	if len(wiki.inputs) != 1 || wiki.inputs[0] != "Texas" {
		t.Errorf("tool inputs = %v", wiki.inputs)
	}
	// The observation must be fed back into the next generation.
	if !strings.Contains(gen.prompts[1], "Observation: Page: Texas") {
		t.Errorf("second prompt missing observation:\n%s", gen.prompts[1])
	}
}

func TestRunIterationLimit(t *testing.T) {
	tool := &fakeTool{name: "wikipedia", result: "nothing useful"}
	gen := &scriptedGenerator{replies: []string{
		"Thought: search again.\nAction: wikipedia\nAction Input: anything",
	}}
	r := &ReactRunner{Generator: gen, MaxIterations: 3}

	_, err := r.Run(context.Background(), "unanswerable", []Tool{tool})
	if !errors.Is(err, ErrIterationLimit) {
		t.Fatalf("Run() error = %v, want ErrIterationLimit", err)
	}
	if len(tool.inputs) != 3 {
		t.Errorf("tool calls = %d, want 3 (one per iteration)", len(tool.inputs))
	}
}

func TestRunUnknownToolBecomesObservation(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"Action: google\nAction Input: acme",
		"Final Answer: done",
	}}
	r := &ReactRunner{Generator: gen}

	got, err := r.Run(context.Background(), "q", []Tool{&fakeTool{name: "wikipedia"}})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != "done" {
		t.Errorf("Run() = %q", got)
	}
	if !strings.Contains(gen.prompts[1], `unknown tool "google"`) {
		t.Errorf("second prompt missing unknown-tool observation:\n%s", gen.prompts[1])
	}
}

func TestRunToolErrorBecomesObservation(t *testing.T) {
	tool := &fakeTool{name: "arxiv", err: errors.New("HTTP 503")}
	gen := &scriptedGenerator{replies: []string{
		"Action: arxiv\nAction Input: transformers",
		"Final Answer: could not find papers",
	}}
	r := &ReactRunner{Generator: gen}

	if _, err := r.Run(context.Background(), "q", []Tool{tool}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(gen.prompts[1], "tool error: HTTP 503") {
		t.Errorf("second prompt missing tool-error observation:\n%s", gen.prompts[1])
	}
}

func TestRunProtocolBreakIsFinalAnswer(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"Just a plain reply with no protocol."}}
	r := &ReactRunner{Generator: gen}

	got, err := r.Run(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != "Just a plain reply with no protocol." {
		t.Errorf("Run() = %q", got)
	}
}

func TestRunGeneratorErrorPropagates(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("connection reset")}
	r := &ReactRunner{Generator: gen}

	_, err := r.Run(context.Background(), "q", nil)
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("Run() error = %v, want wrapped generator error", err)
	}
	if errors.Is(err, ErrIterationLimit) {
		t.Error("generator failure must not look like the iteration cap")
	}
}

func TestRunHallucinatedObservationIsCut(t *testing.T) {
	tool := &fakeTool{name: "wikipedia", result: "real output"}
	gen := &scriptedGenerator{replies: []string{
		"Action: wikipedia\nAction Input: Texas\nObservation: made-up output\nFinal Answer: fake",
		"Final Answer: real",
	}}
	r := &ReactRunner{Generator: gen}

	got, err := r.Run(context.Background(), "q", []Tool{tool})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// The hallucinated Final Answer sits after Observation: and must not win.
	if got != "real" {
		t.Errorf("Run() = %q, want %q", got, "real")
	}
	if strings.Contains(gen.prompts[1], "made-up output") {
		t.Errorf("hallucinated observation leaked into prompt:\n%s", gen.prompts[1])
	}
	if !strings.Contains(gen.prompts[1], "Observation: real output") {
		t.Errorf("real observation missing from prompt:\n%s", gen.prompts[1])
	}
}

func TestRunPreambleListsTools(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{"Final Answer: ok"}}
	r := &ReactRunner{Generator: gen}
	tools := []Tool{
		&fakeTool{name: "arxiv"},
		&fakeTool{name: "wikipedia"},
		&fakeTool{name: "google_search"},
	}

	if _, err := r.Run(context.Background(), "the question", tools); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	first := gen.prompts[0]
	for _, want := range []string{
		"arxiv: fake arxiv tool",
		"wikipedia: fake wikipedia tool",
		"google_search: fake google_search tool",
		"[arxiv, wikipedia, google_search]",
		"Question: the question",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("preamble missing %q:\n%s", want, first)
		}
	}
}

func TestRunFinalAnswerBug(t *testing.T) {
	// A reply that mentions tools but carries a final answer must end the run.
	gen := &scriptedGenerator{replies: []string{
		fmt.Sprintf("Thought: done\nFinal Answer: %s", strings.Repeat("x", 10)),
	}}
	r := &ReactRunner{Generator: gen, MaxIterations: 1}
	got, err := r.Run(context.Background(), "q", nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != strings.Repeat("x", 10) {
		t.Errorf("Run() = %q", got)
	}
}
