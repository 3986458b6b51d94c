// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/xndrsa/search-agent/internal/httputil"
	"github.com/xndrsa/search-agent/pkg/types"
)

// duckduckgoBase is the HTML (non-JS) results endpoint. Declared as a var so
// tests can substitute an httptest server.
var duckduckgoBase = "https://html.duckduckgo.com/html/"

// DefaultLocale is the single language region results are restricted to.
const DefaultLocale = "us-en"

// DuckDuckGoEngine scrapes the DuckDuckGo HTML results page. No API key
// needed, which matches the assistant's zero-configuration web search.
type DuckDuckGoEngine struct {
	Client *http.Client
	Cfg    types.WebSearchConfig
}

// Search fetches one results page and returns up to max organic result URLs
// in page order.
func (e *DuckDuckGoEngine) Search(ctx context.Context, query string, max int) ([]string, error) {
	locale := e.Cfg.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	params := url.Values{
		"q":  {query},
		"kl": {locale},
	}
	reqURL := duckduckgoBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.Cfg.UserAgent)

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned HTTP %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}

	var urls []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(urls) >= max {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			if u := resultURL(href(n)); u != "" {
				urls = append(urls, u)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return urls, nil
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func href(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return attr.Val
		}
	}
	return ""
}

// resultURL unwraps DuckDuckGo's redirect links. Result anchors point at
// //duckduckgo.com/l/?uddg=<escaped target>; direct links pass through.
func resultURL(link string) string {
	if link == "" {
		return ""
	}
	if !strings.Contains(link, "uddg=") {
		return link
	}
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Query().Get("uddg")
}
