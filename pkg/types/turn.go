// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Turn is one message in a conversation: who said it and what was said.
type Turn struct {
	// Role is "user" or "assistant".
	Role string `json:"role" yaml:"role"`

	// Content is the displayed text of the turn.
	Content string `json:"content" yaml:"content"`
}
