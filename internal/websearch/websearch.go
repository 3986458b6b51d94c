// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch issues general-purpose web searches and renders the hits
// as a markdown snippet grouped by source.
package websearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xndrsa/search-agent/internal/markdown"
	"github.com/xndrsa/search-agent/pkg/types"
)

// DefaultMaxResults caps a plain (non-company) search.
const DefaultMaxResults = 3

// companyResultCap caps each of the two sub-searches of a company query.
const companyResultCap = 2

// DefaultPause is the minimum delay between successive engine requests.
const DefaultPause = 2 * time.Second

// sleep is swapped out by tests to avoid real pauses.
var sleep = time.Sleep

// Engine issues one underlying search and returns result URLs in rank order.
type Engine interface {
	Search(ctx context.Context, query string, max int) ([]string, error)
}

// Provider composes an Engine with the markdown formatter. It throttles
// engine calls to one per Pause interval. Not safe for concurrent use; the
// pipeline runs one turn at a time.
type Provider struct {
	Engine    Engine
	Formatter markdown.Formatter
	Pause     time.Duration

	lastRequest time.Time
}

// NewProvider builds a Provider from config. Unset config fields fall back
// to the package defaults.
func NewProvider(engine Engine, cfg types.WebSearchConfig) *Provider {
	pause := cfg.Pause
	if pause <= 0 {
		pause = DefaultPause
	}
	return &Provider{
		Engine:    engine,
		Formatter: markdown.Formatter{Markers: cfg.Markers},
		Pause:     pause,
	}
}

// Search runs the query and returns formatted markdown. resultCount <= 0
// means DefaultMaxResults. Queries mentioning "company" or "llc" are treated
// as company lookups: two narrower sub-searches whose results are
// concatenated website-search first. Engine failures never escape: they come
// back as an inline error string.
func (p *Provider) Search(ctx context.Context, query string, resultCount int) string {
	if resultCount <= 0 {
		resultCount = DefaultMaxResults
	}

	urls, err := p.collect(ctx, query, resultCount)
	if err != nil {
		return "Error in Google Search: " + err.Error()
	}

	var blocks []string
	for _, r := range annotate(urls) {
		blocks = append(blocks, fmt.Sprintf("Source: %s\nWebsite: %s\nInfo: %s",
			r.URL, r.Domain, strings.Join(r.Annotations, " ")))
	}

	return p.Formatter.Format(strings.Join(blocks, "\n"))
}

// collect issues the underlying engine calls for one logical search.
func (p *Provider) collect(ctx context.Context, query string, resultCount int) ([]string, error) {
	lower := strings.ToLower(query)
	if !strings.Contains(lower, "company") && !strings.Contains(lower, "llc") {
		return p.engineSearch(ctx, query, resultCount)
	}

	name := stripLegalSuffix(query)
	websiteQuery := fmt.Sprintf("%s company website OR %s.com", name, name)
	specificQuery := fmt.Sprintf("%s company (industry OR revenue OR headquarters)", name)

	// Website results always come first; the two calls are sequential, never
	// parallel, so concatenation order is fixed.
	urls, err := p.engineSearch(ctx, websiteQuery, companyResultCap)
	if err != nil {
		return nil, err
	}
	more, err := p.engineSearch(ctx, specificQuery, companyResultCap)
	if err != nil {
		return nil, err
	}
	return append(urls, more...), nil
}

// engineSearch calls the engine after enforcing the minimum pause since the
// previous request.
func (p *Provider) engineSearch(ctx context.Context, query string, max int) ([]string, error) {
	if wait := p.Pause - time.Since(p.lastRequest); wait > 0 && !p.lastRequest.IsZero() {
		sleep(wait)
	}
	p.lastRequest = time.Now()
	return p.Engine.Search(ctx, query, max)
}

// stripLegalSuffix removes every case-insensitive occurrence of "llc" from
// the query and trims the remainder, leaving the bare company name.
func stripLegalSuffix(query string) string {
	lower := strings.ToLower(query)
	var b strings.Builder
	for i := 0; i < len(query); {
		if strings.HasPrefix(lower[i:], "llc") {
			i += len("llc")
			continue
		}
		b.WriteByte(query[i])
		i++
	}
	return strings.TrimSpace(b.String())
}

// annotate derives per-result metadata. A URL whose domain cannot be parsed
// (fewer than three "/"-delimited segments) is skipped; one bad result never
// fails the batch.
func annotate(urls []string) []types.SearchResult {
	var results []types.SearchResult
	for _, u := range urls {
		parts := strings.Split(u, "/")
		if len(parts) < 3 {
			continue
		}
		r := types.SearchResult{URL: u, Domain: parts[2]}
		if strings.HasSuffix(r.Domain, ".com") || strings.HasSuffix(r.Domain, ".org") {
			r.Annotations = append(r.Annotations, "Company Website: "+r.Domain)
		}
		results = append(results, r)
	}
	return results
}
