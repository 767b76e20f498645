package wikipedia

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type wikiTool struct {
	core *searchtool.Core[Article]
}

// SearchRequest defines the input for the tool
type SearchRequest struct {
	Query string `json:"query" jsonschema:"The Wikipedia search query"`
}

// Response is the envelope returned to the LLM
type Response struct {
	Source        string  `json:"source"`
	Query         string  `json:"query"`
	Title         string  `json:"title,omitempty"`
	URL           string  `json:"url,omitempty"`
	Summary       string  `json:"summary,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	Message       string  `json:"message,omitempty"`
	Instruction   string  `json:"instruction,omitempty"`
}

var _ tool.Tool = (*wikiTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const instruction = "Relay the key information from this Wikipedia article in a concise, " +
	"conversational way. Do NOT mention Wikipedia, the URL, or that this " +
	"came from an article - just share the knowledge naturally."

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool creates the encyclopedia lookup tool. The detail level is part
// of the cache key, so reconfiguring it does not serve stale entries.
func NewTool(client *Client, detail Detail, opts ...searchtool.Opt) (tool.Tool, error) {
	if detail == "" {
		detail = DetailConcise
	}
	opts = append(opts,
		searchtool.WithQualifiers(map[string]string{"d": string(detail)}),
		searchtool.WithMaxResults(1),
	)
	core, err := searchtool.NewCore(searchtool.KindEncyclopedia, client.ArticleFetcher(detail), opts...)
	if err != nil {
		return nil, err
	}
	return &wikiTool{core: core}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*wikiTool) Name() string {
	return "search_wikipedia"
}

func (*wikiTool) Description() string {
	return "Look up a topic on Wikipedia. Returns the most relevant article's " +
		"summary and thumbnail. Use when the user asks about a topic, person, " +
		"place, event, or concept."
}

func (*wikiTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SearchRequest](nil)
}

func (t *wikiTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return searchtool.Errorf("Wikipedia search failed: %v", err), nil
		}
	}
	if req.Query == "" {
		return searchtool.Errorf("Wikipedia search failed: query is required"), nil
	}

	articles, _, err := t.core.Search(ctx, req.Query, 1)
	switch {
	case err != nil:
		return searchtool.Errorf("Wikipedia search failed: %v", err), nil
	case len(articles) == 0:
		return Response{
			Source:  "wikipedia",
			Query:   req.Query,
			Message: "No Wikipedia article found for this query.",
		}, nil
	}

	article := articles[0]
	response := Response{
		Source:      "wikipedia",
		Query:       req.Query,
		Title:       article.Title,
		URL:         article.URL,
		Summary:     article.Summary,
		Instruction: instruction,
	}
	if article.FeaturedImage != "" {
		image := article.FeaturedImage
		response.FeaturedImage = &image
	}
	return response, nil
}
