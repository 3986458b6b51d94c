// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the in-memory conversation log for one chat session.
package session

import "github.com/xndrsa/search-agent/pkg/types"

// Greeting opens every new session as the assistant's first turn.
const Greeting = "Hi, I can search the web. How can I help you?"

// Log is an append-only sequence of conversation turns. It is written only
// by the orchestration layer after a turn resolves; turns are never mutated
// or removed.
type Log struct {
	turns []types.Turn
}

// NewLog returns a log seeded with the assistant greeting.
func NewLog() *Log {
	return &Log{turns: []types.Turn{{Role: "assistant", Content: Greeting}}}
}

// Append records one turn.
func (l *Log) Append(role, content string) {
	l.turns = append(l.turns, types.Turn{Role: role, Content: content})
}

// Turns returns a copy of the recorded turns in order.
func (l *Log) Turns() []types.Turn {
	out := make([]types.Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of recorded turns.
func (l *Log) Len() int {
	return len(l.turns)
}
