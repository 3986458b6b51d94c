package main

import (
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/xndrsa/search-agent/internal/agent"
	"github.com/xndrsa/search-agent/internal/llm"
	"github.com/xndrsa/search-agent/internal/lookup"
	"github.com/xndrsa/search-agent/internal/prompt"
	"github.com/xndrsa/search-agent/internal/session"
	"github.com/xndrsa/search-agent/internal/templates"
	"github.com/xndrsa/search-agent/internal/websearch"
	"github.com/xndrsa/search-agent/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "search-agent/0.1"
)

func init() {
	viper.SetDefault("llm.provider", string(types.ProviderGroq))
	viper.SetDefault("llm.max_tokens", llm.DefaultMaxTokens)
	viper.SetDefault("agent.max_iterations", agent.DefaultMaxIterations)
	viper.SetDefault("web_search.max_results", websearch.DefaultMaxResults)
	viper.SetDefault("web_search.pause", websearch.DefaultPause)
	viper.SetDefault("web_search.locale", websearch.DefaultLocale)
	viper.SetDefault("lookup.max_content_chars", lookup.DefaultMaxContentChars)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)
}

// loadRegistry returns the built-in templates plus any loaded from the
// --templates file.
func loadRegistry() (*templates.Registry, error) {
	reg := templates.NewRegistry()
	path, _ := rootCmd.PersistentFlags().GetString("templates")
	if path != "" {
		if err := reg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// buildPipeline assembles one turn pipeline from the viper configuration:
// the prompt builder over reg, the selected text generator driving the
// reason-and-act loop, and the three search tools.
func buildPipeline(reg *templates.Registry) (*agent.Pipeline, error) {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	client := &http.Client{Timeout: httpCfg.Timeout}

	provider := types.LLMProvider(viper.GetString("llm.provider"))
	generator, err := llm.New(types.LLMConfig{
		Provider:  provider,
		Model:     viper.GetString("llm.model"),
		APIKey:    secretDefault(string(provider)+"-api-key", viper.GetString("llm.api_key")),
		BaseURL:   viper.GetString("llm.base_url"),
		MaxTokens: viper.GetInt("llm.max_tokens"),
		Streaming: viper.GetBool("llm.streaming"),
	})
	if err != nil {
		return nil, err
	}

	searchCfg := types.WebSearchConfig{
		HTTPConfig: httpCfg,
		MaxResults: viper.GetInt("web_search.max_results"),
		Pause:      viper.GetDuration("web_search.pause"),
		Locale:     viper.GetString("web_search.locale"),
		Markers:    viper.GetStringSlice("web_search.markers"),
	}
	lookupCfg := types.LookupConfig{
		HTTPConfig:      httpCfg,
		MaxContentChars: viper.GetInt("lookup.max_content_chars"),
	}

	engine := &websearch.DuckDuckGoEngine{Client: client, Cfg: searchCfg}
	tools := []agent.Tool{
		&lookup.ArxivTool{Client: client, Cfg: lookupCfg},
		&lookup.WikipediaTool{Client: client, Cfg: lookupCfg},
		&websearch.Tool{
			Provider:   websearch.NewProvider(engine, searchCfg),
			MaxResults: searchCfg.MaxResults,
		},
	}

	return &agent.Pipeline{
		Builder: prompt.NewBuilder(reg),
		Runner: &agent.ReactRunner{
			Generator:     generator,
			MaxIterations: viper.GetInt("agent.max_iterations"),
		},
		Tools: tools,
		Log:   session.NewLog(),
	}, nil
}
