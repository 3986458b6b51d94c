// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/xndrsa/search-agent/internal/httputil"
	"github.com/xndrsa/search-agent/pkg/types"
)

// wikipediaAPIBase is the MediaWiki action API endpoint. Declared as a var
// so tests can substitute an httptest server.
var wikipediaAPIBase = "https://en.wikipedia.org/w/api.php"

// WikipediaTool queries the English Wikipedia and returns the top page's
// plain-text introduction.
type WikipediaTool struct {
	Client *http.Client
	Cfg    types.LookupConfig
}

// Name returns the tool identifier the agent dispatches on.
func (t *WikipediaTool) Name() string { return "wikipedia" }

// Description tells the agent when to reach for this tool.
func (t *WikipediaTool) Description() string {
	return "Searches Wikipedia for encyclopedic information about people, places, companies, events, and concepts. Input: a search query."
}

// Call searches for the query and returns "Page: <title>\nSummary: <intro>"
// for the best match, truncated to the configured character budget.
func (t *WikipediaTool) Call(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("empty Wikipedia query")
	}

	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"generator":     {"search"},
		"gsrsearch":     {query},
		"gsrlimit":      {"1"},
		"prop":          {"extracts"},
		"explaintext":   {"1"},
		"exintro":       {"1"},
		"formatversion": {"2"},
	}
	reqURL := wikipediaAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", t.Cfg.UserAgent)

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return "", fmt.Errorf("Wikipedia API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Wikipedia API returned HTTP %d", resp.StatusCode)
	}

	var wr wikiResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return "", fmt.Errorf("parsing Wikipedia response: %w", err)
	}

	if len(wr.Query.Pages) == 0 {
		return "No good Wikipedia Search Result was found", nil
	}

	page := wr.Query.Pages[0]
	content := fmt.Sprintf("Page: %s\nSummary: %s", page.Title, strings.TrimSpace(page.Extract))
	return Truncate(content, t.Cfg.MaxContentChars), nil
}

// MediaWiki API JSON structures (formatversion=2).
type wikiResponse struct {
	Query struct {
		Pages []wikiPage `json:"pages"`
	} `json:"query"`
}

type wikiPage struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}
