// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package websearch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/xndrsa/search-agent/pkg/types"
)

const resultsPage = `<!DOCTYPE html>
<html><body>
<div class="results">
  <div class="result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fa.com%2Fx&amp;rut=abc">First</a>
  </div>
  <div class="result">
    <a class="result__a" href="https://direct.example.org/page">Second</a>
  </div>
  <div class="result">
    <a class="result__snippet" href="https://ignored.example.com/">snippet link</a>
  </div>
  <div class="result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fb.net%2Fz">Third</a>
  </div>
</div>
</body></html>`

func TestDuckDuckGoSearch(t *testing.T) {
	var gotQuery, gotLocale string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLocale = r.URL.Query().Get("kl")
		io.WriteString(w, resultsPage)
	}))
	defer ts.Close()

	old := duckduckgoBase
	duckduckgoBase = ts.URL
	defer func() { duckduckgoBase = old }()

	e := &DuckDuckGoEngine{Client: ts.Client(), Cfg: types.WebSearchConfig{}}
	urls, err := e.Search(context.Background(), "ryobi drill", 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if gotQuery != "ryobi drill" {
		t.Errorf("query param = %q", gotQuery)
	}
	if gotLocale != DefaultLocale {
		t.Errorf("locale param = %q, want %q", gotLocale, DefaultLocale)
	}

	want := []string{"https://a.com/x", "https://direct.example.org/page", "https://b.net/z"}
	if len(urls) != len(want) {
		t.Fatalf("urls = %v, want %v", urls, want)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("urls[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestDuckDuckGoSearchCapsResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, resultsPage)
	}))
	defer ts.Close()

	old := duckduckgoBase
	duckduckgoBase = ts.URL
	defer func() { duckduckgoBase = old }()

	e := &DuckDuckGoEngine{Client: ts.Client()}
	urls, err := e.Search(context.Background(), "anything", 2)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(urls) != 2 {
		t.Errorf("len(urls) = %d, want 2", len(urls))
	}
}

func TestDuckDuckGoSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	old := duckduckgoBase
	duckduckgoBase = ts.URL
	defer func() { duckduckgoBase = old }()

	e := &DuckDuckGoEngine{Client: ts.Client()}
	if _, err := e.Search(context.Background(), "anything", 3); err == nil {
		t.Fatal("Search() error = nil, want HTTP status error")
	}
}

func TestResultURL(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://a.com/x") + "&rut=1", "https://a.com/x"},
		{"https://direct.example.org/page", "https://direct.example.org/page"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := resultURL(tt.link); got != tt.want {
			t.Errorf("resultURL(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}
