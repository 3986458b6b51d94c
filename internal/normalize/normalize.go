// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize repairs agent output so it always matches the requested
// delimiter-separated schema.
package normalize

import (
	"strings"

	"github.com/xndrsa/search-agent/internal/templates"
)

// Sentinel fills schema fields the agent's answer did not provide.
const Sentinel = "N/A"

// Normalize guarantees the returned text contains the schema delimiter.
// Text that already contains it is trusted and returned unchanged, without
// checking field count or content. Otherwise the whole raw text becomes the
// first field and every remaining field is padded with Sentinel, yielding
// exactly len(fields) segments.
func Normalize(raw string, fields []string) string {
	if strings.Contains(raw, templates.Delimiter) {
		return raw
	}
	if len(fields) <= 1 {
		return raw
	}

	parts := make([]string, len(fields))
	parts[0] = raw
	for i := 1; i < len(parts); i++ {
		parts[i] = Sentinel
	}
	return strings.Join(parts, templates.Delimiter)
}
