// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup provides the opaque single-result search tools the agent
// can call besides general web search: arXiv and Wikipedia. Each returns the
// top hit with content capped at a fixed character budget.
package lookup

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/xndrsa/search-agent/pkg/types"
)

// DefaultMaxContentChars caps the text a lookup returns.
const DefaultMaxContentChars = 500

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivTool queries the arXiv API and returns the single most relevant paper.
type ArxivTool struct {
	Client *http.Client
	Cfg    types.LookupConfig
}

// Name returns the tool identifier the agent dispatches on.
func (t *ArxivTool) Name() string { return "arxiv" }

// Description tells the agent when to reach for this tool.
func (t *ArxivTool) Description() string {
	return "Searches arxiv.org for academic papers. Useful for questions about physics, mathematics, computer science, and other scientific topics. Input: a search query."
}

// Call runs the query and returns the top result's metadata and summary,
// truncated to the configured character budget.
func (t *ArxivTool) Call(ctx context.Context, query string) (string, error) {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return "", fmt.Errorf("empty arXiv query")
	}

	url := fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=1&sortBy=relevance&sortOrder=descending",
		arxivAPIBase, strings.Join(terms, "+"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", t.Cfg.UserAgent)

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("parsing arXiv response: %w", err)
	}

	if len(feed.Entries) == 0 {
		return "No good arXiv result was found", nil
	}

	entry := feed.Entries[0]
	var authors []string
	for _, a := range entry.Authors {
		authors = append(authors, strings.TrimSpace(a.Name))
	}

	content := fmt.Sprintf("Published: %s\nTitle: %s\nAuthors: %s\nSummary: %s",
		entry.Published,
		strings.TrimSpace(entry.Title),
		strings.Join(authors, ", "),
		strings.TrimSpace(entry.Summary))

	return Truncate(content, t.Cfg.MaxContentChars), nil
}

// Truncate caps s at max characters. max <= 0 means DefaultMaxContentChars.
func Truncate(s string, max int) string {
	if max <= 0 {
		max = DefaultMaxContentChars
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}
