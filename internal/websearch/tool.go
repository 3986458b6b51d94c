// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import "context"

// Tool exposes the provider to the agent loop under the google_search name.
// Engine failures already come back as inline text from Provider.Search, so
// Call never returns an error: the agent reads failures as observations.
type Tool struct {
	Provider   *Provider
	MaxResults int
}

// Name returns the tool identifier the agent dispatches on.
func (t *Tool) Name() string { return "google_search" }

// Description tells the agent when to reach for this tool.
func (t *Tool) Description() string {
	return "Searches the web for current information. Useful for questions about products, companies, locations, and anything not covered by an encyclopedia. Input: a search query."
}

// Call runs one web search and returns the formatted markdown snippet.
func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	return t.Provider.Search(ctx, input, t.MaxResults), nil
}
