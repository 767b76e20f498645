package registry

import (
	"os"
	"time"

	// Packages
	llmtools "github.com/jxlarrea/voice-satellite-card-llm-tools"
	cache "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/cache"
	weather "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/weather"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ImageProvider selects the upstream for the image search tool
type ImageProvider string

// WebProvider selects the upstream for the web search tool
type WebProvider string

// FinancialProvider selects the upstream for the financial data tool
type FinancialProvider string

// Config is the resolved tool configuration, usually loaded from a YAML
// file. A tool is enabled when its section names a provider (or, for
// wikipedia, sets enabled), and credentials are checked at call time.
type Config struct {
	// Cache lifetime in seconds, shared by all search tools
	CacheTTL int `yaml:"cache_ttl"`

	ImageSearch   ImageSearchConfig   `yaml:"image_search"`
	WebSearch     WebSearchConfig     `yaml:"web_search"`
	VideoSearch   VideoSearchConfig   `yaml:"video_search"`
	Wikipedia     WikipediaConfig     `yaml:"wikipedia"`
	Financial     FinancialConfig     `yaml:"financial"`
	Weather       weather.Config      `yaml:"weather"`
	HomeAssistant HomeAssistantConfig `yaml:"home_assistant"`
}

type ImageSearchConfig struct {
	Provider   ImageProvider `yaml:"provider"`
	NumResults int           `yaml:"num_results"`
	Google     GoogleConfig  `yaml:"google"`
	Brave      BraveConfig   `yaml:"brave"`
	SearXNG    SearXNGConfig `yaml:"searxng"`
}

type WebSearchConfig struct {
	Provider   WebProvider   `yaml:"provider"`
	NumResults int           `yaml:"num_results"`
	Brave      BraveConfig   `yaml:"brave"`
	SearXNG    SearXNGConfig `yaml:"searxng"`
}

type VideoSearchConfig struct {
	YouTubeAPIKey string `yaml:"youtube_api_key"`
	NumResults    int    `yaml:"num_results"`
}

type WikipediaConfig struct {
	Enabled bool   `yaml:"enabled"`
	Detail  string `yaml:"detail"`
}

type FinancialConfig struct {
	Provider      FinancialProvider `yaml:"provider"`
	FinnhubAPIKey string            `yaml:"finnhub_api_key"`
}

type GoogleConfig struct {
	APIKey string `yaml:"api_key"`
	CX     string `yaml:"cx"`
}

type BraveConfig struct {
	APIKey     string `yaml:"api_key"`
	SafeSearch string `yaml:"safesearch"`
}

type SearXNGConfig struct {
	URL     string `yaml:"server_url"`
	Engines string `yaml:"engines"`
}

// HomeAssistantConfig connects the weather tool, and optionally the
// generic entity tools, to a Home Assistant instance.
type HomeAssistantConfig struct {
	Endpoint           string `yaml:"endpoint"`
	APIKey             string `yaml:"api_key"`
	ExposeControlTools bool   `yaml:"expose_control_tools"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ImageProviderGoogle  ImageProvider = "google"
	ImageProviderBrave   ImageProvider = "brave"
	ImageProviderSearXNG ImageProvider = "searxng"
)

const (
	WebProviderBrave   WebProvider = "brave"
	WebProviderSearXNG WebProvider = "searxng"
)

const (
	FinancialProviderFinnhub FinancialProvider = "finnhub"
)

// Default result count per search tool when configuration does not
// provide one
const defaultNumResults = 3

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadConfig reads a YAML configuration file
func LoadConfig(path string) (Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, llmtools.ErrBadParameter.Withf("invalid configuration: %v", err)
	}
	return config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TTL returns the configured cache lifetime
func (c Config) TTL() time.Duration {
	if c.CacheTTL <= 0 {
		return cache.DefaultTTL
	}
	return time.Duration(c.CacheTTL) * time.Second
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c ImageSearchConfig) numResults() int {
	if c.NumResults <= 0 {
		return defaultNumResults
	}
	return c.NumResults
}

func (c WebSearchConfig) numResults() int {
	if c.NumResults <= 0 {
		return defaultNumResults
	}
	return c.NumResults
}

func (c VideoSearchConfig) numResults() int {
	if c.NumResults <= 0 {
		return defaultNumResults
	}
	return c.NumResults
}
