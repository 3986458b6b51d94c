// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xndrsa/search-agent/internal/prompt"
	"github.com/xndrsa/search-agent/internal/session"
	"github.com/xndrsa/search-agent/internal/templates"
)

// scriptedRunner returns a fixed answer or error and records the prompt.
type scriptedRunner struct {
	answer  string
	err     error
	prompts []string
}

func (r *scriptedRunner) Run(_ context.Context, prompt string, _ []Tool) (string, error) {
	r.prompts = append(r.prompts, prompt)
	return r.answer, r.err
}

const companyFormat = "Name of the company<||>Industry<||>One line description<||>Estimated annual revenue"

func newTestPipeline(runner Runner) *Pipeline {
	return &Pipeline{
		Builder: prompt.NewBuilder(nil),
		Runner:  runner,
		Log:     session.NewLog(),
	}
}

func TestRespondNormalizesBareAnswer(t *testing.T) {
	runner := &scriptedRunner{answer: "Acme Corp"}
	p := newTestPipeline(runner)

	got, err := p.Respond(context.Background(), "tell me about Acme", "Company Details", companyFormat)
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	want := "Acme Corp<||>N/A<||>N/A<||>N/A"
	if got != want {
		t.Errorf("Respond() = %q, want %q", got, want)
	}
	if !strings.Contains(got, templates.Delimiter) {
		t.Error("answer must contain the schema delimiter")
	}
}

func TestRespondDelimitedAnswerUnchanged(t *testing.T) {
	runner := &scriptedRunner{answer: "Acme Corp<||>Tools<||>Maker of anvils<||>$10M"}
	p := newTestPipeline(runner)

	got, err := p.Respond(context.Background(), "tell me about Acme", "Company Details", companyFormat)
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if got != runner.answer {
		t.Errorf("Respond() = %q, want runner answer unchanged", got)
	}
}

func TestRespondBuildsPromptFromTemplate(t *testing.T) {
	runner := &scriptedRunner{answer: "x<||>y"}
	p := newTestPipeline(runner)

	if _, err := p.Respond(context.Background(), "RYOBI drills", "Product Search", "a<||>b"); err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if len(runner.prompts) != 1 {
		t.Fatalf("runner called %d times, want 1", len(runner.prompts))
	}
	built := runner.prompts[0]
	if !strings.Contains(built, "RYOBI drills") {
		t.Errorf("prompt missing query:\n%s", built)
	}
	if !strings.Contains(built, "Required output format: a<||>b") {
		t.Errorf("prompt missing format suffix:\n%s", built)
	}
}

func TestRespondIterationLimitBecomesStoppedMessage(t *testing.T) {
	runner := &scriptedRunner{err: ErrIterationLimit}
	p := newTestPipeline(runner)

	got, err := p.Respond(context.Background(), "impossible question", "Custom", companyFormat)
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	want := StoppedMessage + "<||>N/A<||>N/A<||>N/A"
	if got != want {
		t.Errorf("Respond() = %q, want %q", got, want)
	}

	turns := p.Log.Turns()
	if len(turns) != 3 {
		t.Fatalf("log has %d turns, want greeting + user + assistant", len(turns))
	}
	if turns[2].Content != want {
		t.Errorf("logged assistant turn = %q", turns[2].Content)
	}
}

func TestRespondWrappedIterationLimit(t *testing.T) {
	// The cap error must be recognized through wrapping, not by string match.
	runner := &scriptedRunner{err: errors.Join(errors.New("run 3 of 5 failed"), ErrIterationLimit)}
	p := newTestPipeline(runner)

	got, err := p.Respond(context.Background(), "q", "Custom", "only")
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if got != StoppedMessage {
		t.Errorf("Respond() = %q, want stopped message", got)
	}
}

func TestRespondOtherErrorsPropagate(t *testing.T) {
	boom := errors.New("model unavailable")
	runner := &scriptedRunner{err: boom}
	p := newTestPipeline(runner)

	_, err := p.Respond(context.Background(), "q", "Custom", companyFormat)
	if !errors.Is(err, boom) {
		t.Fatalf("Respond() error = %v, want %v", err, boom)
	}

	// A failed turn leaves the user turn in place so the session continues.
	turns := p.Log.Turns()
	if len(turns) != 2 {
		t.Fatalf("log has %d turns, want greeting + user", len(turns))
	}
	if turns[1].Role != "user" || turns[1].Content != "q" {
		t.Errorf("turns[1] = %+v", turns[1])
	}
}

func TestRespondNilLog(t *testing.T) {
	runner := &scriptedRunner{answer: "fine<||>ok"}
	p := &Pipeline{Builder: prompt.NewBuilder(nil), Runner: runner}

	got, err := p.Respond(context.Background(), "q", "Custom", "a<||>b")
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if got != "fine<||>ok" {
		t.Errorf("Respond() = %q", got)
	}
}
