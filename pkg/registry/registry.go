/*
registry builds the enabled toolkit from a resolved configuration. Each
tool family maps its configured provider onto a client package through an
exhaustive switch, so an unrecognized provider fails at construction
rather than at call time.
*/
package registry

import (
	"context"
	"sort"

	// Packages
	llmtools "github.com/jxlarrea/voice-satellite-card-llm-tools"
	brave "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/brave"
	cache "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/cache"
	coingecko "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/coingecko"
	finnhub "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/finnhub"
	googlecse "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/googlecse"
	homeassistant "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/homeassistant"
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	searxng "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searxng"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
	weather "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/weather"
	wikipedia "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/wikipedia"
	youtube "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/youtube"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Registry holds the enabled tools, the shared cache store behind them,
// and the prompt fragments for the hosting LLM.
type Registry struct {
	toolkit    *tool.Toolkit
	store      *cache.Store
	tracer     trace.Tracer
	prompts    []string
	clientOpts []client.ClientOpt
}

// Opt is a functional option for configuring a registry
type Opt func(*Registry) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const imageSearchPrompt = "You may use the Image Search Services tools to find images on the internet. " +
	"When the user asks you to find, search for, or show images, use the search_images tool. " +
	"Set auto_display to true when the user wants to see a specific image immediately " +
	"(e.g. 'show me the Mona Lisa', 'what does a pangolin look like'). " +
	"Set auto_display to false when they want to browse multiple results " +
	"(e.g. 'find me pictures of cats', 'search for sunset photos')."

const videoSearchPrompt = "You may use the Video Search Services tools to find videos on YouTube. " +
	"When the user asks you to find, search for, or show videos, use the search_videos tool. " +
	"Set auto_play to true when the user wants to watch a specific video immediately " +
	"(e.g. 'play the latest MrBeast video', 'show me that rickroll video'). " +
	"Set auto_play to false when they want to browse or explore results " +
	"(e.g. 'find me videos about cooking', 'search for guitar tutorials')."

const webSearchPrompt = "You may use the Web Search Services tools to look up current information " +
	"on the internet. When the user asks a question requiring recent facts or general " +
	"knowledge you do not have, use the search_web tool."

const wikipediaPrompt = "You may use the Wikipedia tools to look up encyclopedic information. " +
	"When the user asks about a person, place, concept or historical event, use the " +
	"search_wikipedia tool."

const weatherPrompt = "You may use the Weather tools to answer questions about the forecast. " +
	"When the user asks about the weather, use the get_weather_forecast tool."

const financialPrompt = "You may use the Financial Data tools to look up stock quotes, " +
	"cryptocurrency prices and currency exchange rates. When the user asks about a " +
	"share price, crypto price or currency conversion, use the get_financial_data tool."

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New builds a registry from the configuration. Tool families without a
// configured provider are skipped; an unknown provider is an error.
func New(config Config, opts ...Opt) (*Registry, error) {
	r := &Registry{
		store: cache.NewStore(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	toolkit, err := tool.NewToolkit()
	if err != nil {
		return nil, err
	}
	r.toolkit = toolkit

	if err := r.registerImageSearch(config); err != nil {
		return nil, err
	}
	if err := r.registerWebSearch(config); err != nil {
		return nil, err
	}
	if err := r.registerVideoSearch(config); err != nil {
		return nil, err
	}
	if err := r.registerWikipedia(config); err != nil {
		return nil, err
	}
	if err := r.registerFinancial(config); err != nil {
		return nil, err
	}
	if err := r.registerHomeAssistant(config); err != nil {
		return nil, err
	}

	return r, nil
}

// WithClientOpts passes options through to every provider client, e.g.
// request tracing to stderr.
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(r *Registry) error {
		r.clientOpts = append(r.clientOpts, opts...)
		return nil
	}
}

// WithTracer sets the tracer for tool invocation spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(r *Registry) error {
		r.tracer = tracer
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the enabled tools sorted by name
func (r *Registry) Tools() []tool.Tool {
	tools := r.toolkit.Tools()
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// Lookup returns an enabled tool by name, or nil
func (r *Registry) Lookup(name string) tool.Tool {
	return r.toolkit.Lookup(name)
}

// Prompts returns the prompt fragments for the enabled tool families,
// to be appended to the hosting LLM's system prompt.
func (r *Registry) Prompts() []string {
	return r.prompts
}

// Run executes an enabled tool by name
func (r *Registry) Run(ctx context.Context, name string, input any) (result any, err error) {
	ctx, endSpan := otel.StartSpan(r.tracer, ctx, "RunTool",
		attribute.String("tool", name),
	)
	defer func() { endSpan(err) }()

	return r.toolkit.Run(ctx, name, input)
}

func (r *Registry) String() string {
	return r.toolkit.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *Registry) registerImageSearch(config Config) error {
	section := config.ImageSearch
	if section.Provider == "" {
		return nil
	}

	var fetch searchtool.Fetcher[searchtool.ImageResult]
	switch section.Provider {
	case ImageProviderGoogle:
		c, err := googlecse.New(section.Google.APIKey, section.Google.CX, r.clientOpts...)
		if err != nil {
			return err
		}
		fetch = c.FetchImages
	case ImageProviderBrave:
		c, err := brave.New(section.Brave.APIKey, r.clientOpts...)
		if err != nil {
			return err
		}
		var fetchOpts []brave.FetchOpt
		if section.Brave.SafeSearch != "" {
			fetchOpts = append(fetchOpts, brave.WithSafeSearch(section.Brave.SafeSearch))
		}
		fetch = c.ImageFetcher(fetchOpts...)
	case ImageProviderSearXNG:
		c, err := searxng.New(section.SearXNG.URL, r.clientOpts...)
		if err != nil {
			return err
		}
		fetch = c.ImageFetcher(section.SearXNG.Engines)
	default:
		return llmtools.ErrBadParameter.Withf("unknown image search provider: %q", section.Provider)
	}

	t, err := searchtool.NewImageTool(fetch,
		searchtool.WithStore(r.store, config.TTL()),
		searchtool.WithMaxResults(section.numResults()),
	)
	if err != nil {
		return err
	}
	return r.register(t, imageSearchPrompt)
}

func (r *Registry) registerWebSearch(config Config) error {
	section := config.WebSearch
	if section.Provider == "" {
		return nil
	}

	var fetch searchtool.Fetcher[searchtool.WebResult]
	switch section.Provider {
	case WebProviderBrave:
		c, err := brave.New(section.Brave.APIKey, r.clientOpts...)
		if err != nil {
			return err
		}
		fetch = c.FetchWeb
	case WebProviderSearXNG:
		c, err := searxng.New(section.SearXNG.URL, r.clientOpts...)
		if err != nil {
			return err
		}
		fetch = c.WebFetcher(section.SearXNG.Engines)
	default:
		return llmtools.ErrBadParameter.Withf("unknown web search provider: %q", section.Provider)
	}

	t, err := searchtool.NewWebTool(string(section.Provider), fetch,
		searchtool.WithStore(r.store, config.TTL()),
		searchtool.WithMaxResults(section.numResults()),
	)
	if err != nil {
		return err
	}
	return r.register(t, webSearchPrompt)
}

func (r *Registry) registerVideoSearch(config Config) error {
	section := config.VideoSearch
	if section.YouTubeAPIKey == "" {
		return nil
	}

	c, err := youtube.New(section.YouTubeAPIKey, r.clientOpts...)
	if err != nil {
		return err
	}

	t, err := searchtool.NewVideoTool("youtube", c.FetchVideos,
		searchtool.WithStore(r.store, config.TTL()),
		searchtool.WithMaxResults(section.numResults()),
	)
	if err != nil {
		return err
	}
	return r.register(t, videoSearchPrompt)
}

func (r *Registry) registerWikipedia(config Config) error {
	section := config.Wikipedia
	if !section.Enabled {
		return nil
	}

	var detail wikipedia.Detail
	switch section.Detail {
	case "", string(wikipedia.DetailConcise):
		detail = wikipedia.DetailConcise
	case string(wikipedia.DetailDetailed):
		detail = wikipedia.DetailDetailed
	default:
		return llmtools.ErrBadParameter.Withf("unknown wikipedia detail level: %q", section.Detail)
	}

	c, err := wikipedia.New(r.clientOpts...)
	if err != nil {
		return err
	}
	t, err := wikipedia.NewTool(c, detail,
		searchtool.WithStore(r.store, config.TTL()),
	)
	if err != nil {
		return err
	}
	return r.register(t, wikipediaPrompt)
}

func (r *Registry) registerFinancial(config Config) error {
	section := config.Financial
	if section.Provider == "" {
		return nil
	}

	switch section.Provider {
	case FinancialProviderFinnhub:
		c, err := finnhub.New(section.FinnhubAPIKey, r.clientOpts...)
		if err != nil {
			return err
		}
		crypto, err := coingecko.New(r.clientOpts...)
		if err != nil {
			return err
		}
		t, err := finnhub.NewTool(c, crypto)
		if err != nil {
			return err
		}
		return r.register(t, financialPrompt)
	default:
		return llmtools.ErrBadParameter.Withf("unknown financial data provider: %q", section.Provider)
	}
}

func (r *Registry) registerHomeAssistant(config Config) error {
	weatherEnabled := config.Weather.DailyEntity != ""
	if !weatherEnabled && !config.HomeAssistant.ExposeControlTools {
		return nil
	}

	c, err := homeassistant.New(config.HomeAssistant.Endpoint, config.HomeAssistant.APIKey, r.clientOpts...)
	if err != nil {
		return err
	}

	if weatherEnabled {
		t, err := weather.NewTool(c, config.Weather)
		if err != nil {
			return err
		}
		if err := r.register(t, weatherPrompt); err != nil {
			return err
		}
	}

	if config.HomeAssistant.ExposeControlTools {
		if err := r.toolkit.Register(homeassistant.NewTools(c)...); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(t tool.Tool, prompt string) error {
	if err := r.toolkit.Register(t); err != nil {
		return err
	}
	r.prompts = append(r.prompts, prompt)
	return nil
}
