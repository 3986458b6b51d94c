// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search-agent pipeline.
package types

// SearchResult represents one organic web search hit before formatting.
// Each result carries the engine URL, a derived domain, and zero or more
// short annotations attached by the web search provider.
type SearchResult struct {
	// URL is the result link as returned by the engine.
	URL string `json:"url" yaml:"url"`

	// Domain is the host portion derived from the URL (third "/"-delimited segment).
	Domain string `json:"domain" yaml:"domain"`

	// Annotations lists short derived notes (e.g. "Company Website: example.com").
	Annotations []string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}
