// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt renders the full instruction text sent to the reasoning agent.
package prompt

import (
	"strings"

	"github.com/xndrsa/search-agent/internal/templates"
)

// queryPlaceholder is the only placeholder the builder fills. The
// {search_results} placeholder stays verbatim: the agent's tooling fills it
// during the run, outside this package.
const queryPlaceholder = "{query}"

// Builder renders prompts from a template registry.
type Builder struct {
	Registry *templates.Registry
}

// NewBuilder returns a Builder over the given registry, or over the built-in
// registry when reg is nil.
func NewBuilder(reg *templates.Registry) Builder {
	if reg == nil {
		reg = templates.NewRegistry()
	}
	return Builder{Registry: reg}
}

// Build renders the prompt for one turn. The template is selected by name
// with silent fallback to Custom, {query} is substituted, and the caller's
// required output format is appended as the final instruction line. The
// caller's format wins even when it differs from the template's own schema.
// Pure function of its three inputs.
func (b Builder) Build(query, templateName, requiredFormat string) string {
	tmpl := b.Registry.Lookup(templateName)
	body := strings.ReplaceAll(tmpl.Body, queryPlaceholder, query)
	return body + "\nRequired output format: " + requiredFormat
}
