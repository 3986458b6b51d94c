// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/xndrsa/search-agent/internal/llm"
)

// DefaultMaxIterations is the hard cap on tool calls per run.
const DefaultMaxIterations = 5

// reactPreamble frames the question for a zero-shot reason-and-act loop. The
// model alternates Thought/Action/Action Input lines with Observation lines
// this runner fills in from tool output.
const reactPreamble = `Answer the following question as best you can. You have access to the following tools:

%s
Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, exactly one of [%s]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat several times)
Thought: I now know the final answer
Final Answer: the final answer to the original input question

Keep using tools until you can give the final answer; do not give up while steps remain.

Question: %s
Thought:`

// ReactRunner drives a text generator through the reason-and-act protocol.
type ReactRunner struct {
	Generator     llm.Generator
	MaxIterations int
}

// Run implements Runner.
func (r *ReactRunner) Run(ctx context.Context, prompt string, tools []Tool) (string, error) {
	transcript, err := r.RunTranscript(ctx, prompt, tools)
	return transcript.Answer, err
}

// RunTranscript runs the loop and also returns the ordered tool calls. The
// loop ends when the model emits a Final Answer, when it stops requesting
// actions, or with ErrIterationLimit after MaxIterations tool calls.
func (r *ReactRunner) RunTranscript(ctx context.Context, prompt string, tools []Tool) (Transcript, error) {
	maxIterations := r.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	byName := make(map[string]Tool, len(tools))
	names := make([]string, 0, len(tools))
	var descriptions strings.Builder
	for _, tool := range tools {
		byName[strings.ToLower(tool.Name())] = tool
		names = append(names, tool.Name())
		fmt.Fprintf(&descriptions, "%s: %s\n", tool.Name(), tool.Description())
	}

	working := fmt.Sprintf(reactPreamble, descriptions.String(), strings.Join(names, ", "), prompt)
	var calls []Invocation

	for i := 0; i < maxIterations; i++ {
		out, err := r.Generator.Generate(ctx, working)
		if err != nil {
			return Transcript{Calls: calls}, fmt.Errorf("generating step %d: %w", i+1, err)
		}

		// Cut at the first Observation marker before reading the reply:
		// anything past it is the model guessing tool output.
		step := stepText(out)

		if answer, ok := finalAnswer(step); ok {
			return Transcript{Answer: answer, Calls: calls}, nil
		}

		action, input, ok := parseAction(step)
		if !ok {
			// The model ignored the protocol; its whole reply is the answer.
			return Transcript{Answer: strings.TrimSpace(out), Calls: calls}, nil
		}

		calls = append(calls, Invocation{Tool: action, Input: input})
		observation := r.invoke(ctx, byName, names, action, input)
		working += step + "\nObservation: " + observation + "\nThought:"
	}

	return Transcript{Calls: calls}, ErrIterationLimit
}

// invoke dispatches one action. Tool failures become observations the model
// can react to; they never abort the run.
func (r *ReactRunner) invoke(ctx context.Context, byName map[string]Tool, names []string, action, input string) string {
	tool, ok := byName[strings.ToLower(action)]
	if !ok {
		return fmt.Sprintf("unknown tool %q, available tools: [%s]", action, strings.Join(names, ", "))
	}
	result, err := tool.Call(ctx, input)
	if err != nil {
		return "tool error: " + err.Error()
	}
	if result == "" {
		return "the tool returned no output"
	}
	return result
}

// finalAnswer extracts the text after the Final Answer marker, if present.
func finalAnswer(out string) (string, bool) {
	_, after, found := strings.Cut(out, "Final Answer:")
	if !found {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// parseAction pulls the first Action / Action Input pair out of a model
// reply.
func parseAction(out string) (action, input string, ok bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if v, found := strings.CutPrefix(line, "Action:"); found && action == "" {
			action = strings.TrimSpace(v)
		}
		if v, found := strings.CutPrefix(line, "Action Input:"); found && input == "" {
			input = strings.TrimSpace(v)
		}
	}
	return action, input, action != ""
}

// stepText cuts a model reply at the first Observation marker: everything
// after it is the model guessing tool output rather than reasoning.
func stepText(out string) string {
	if idx := strings.Index(out, "Observation:"); idx >= 0 {
		out = out[:idx]
	}
	return strings.TrimRight(out, " \n\t")
}
