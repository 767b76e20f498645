package searchtool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type imageTool struct {
	core *Core[ImageResult]
}

type webTool struct {
	source string
	core   *Core[WebResult]
}

type videoTool struct {
	source string
	core   *Core[VideoResult]
}

var _ tool.Tool = (*imageTool)(nil)
var _ tool.Tool = (*webTool)(nil)
var _ tool.Tool = (*videoTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewImageTool creates the image search tool backed by a provider fetch
// function.
func NewImageTool(fetch Fetcher[ImageResult], opts ...Opt) (tool.Tool, error) {
	core, err := NewCore(KindImage, fetch, opts...)
	if err != nil {
		return nil, err
	}
	return &imageTool{core: core}, nil
}

// NewWebTool creates the web search tool backed by a provider fetch
// function. The source labels the responses, e.g. "brave".
func NewWebTool(source string, fetch Fetcher[WebResult], opts ...Opt) (tool.Tool, error) {
	core, err := NewCore(KindWeb, fetch, opts...)
	if err != nil {
		return nil, err
	}
	return &webTool{source: source, core: core}, nil
}

// NewVideoTool creates the video search tool backed by a provider fetch
// function.
func NewVideoTool(source string, fetch Fetcher[VideoResult], opts ...Opt) (tool.Tool, error) {
	core, err := NewCore(KindVideo, fetch, opts...)
	if err != nil {
		return nil, err
	}
	return &videoTool{source: source, core: core}, nil
}

///////////////////////////////////////////////////////////////////////////////
// search_images

func (*imageTool) Name() string {
	return "search_images"
}

func (*imageTool) Description() string {
	return "Search the internet for images matching a query. " +
		"Returns a list of image results with URLs, titles, and thumbnails. " +
		"Use this when the user asks to find, search for, or show images."
}

func (*imageTool) Schema() (*jsonschema.Schema, error) {
	return schemaFor[ImageSearchRequest](1, 10)
}

func (t *imageTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ImageSearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return Errorf("Image search failed: %v", err), nil
		}
	}
	if req.Query == "" {
		return Errorf("Image search failed: query is required"), nil
	}

	// The display hint is per-call and recomputed even on a cache hit
	autoDisplay := req.AutoDisplay != nil && *req.AutoDisplay

	count := t.core.ResolveCount(req.NumResults)
	results, _, err := t.core.Search(ctx, req.Query, count)
	switch {
	case err != nil:
		return Errorf("Image search failed: %v", err), nil
	case len(results) == 0:
		return newEmptyImageResponse(req.Query), nil
	default:
		return newImageResponse(req.Query, results, autoDisplay), nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// search_web

func (*webTool) Name() string {
	return "search_web"
}

func (*webTool) Description() string {
	return "Search the internet for information on a topic. " +
		"Returns web page results with titles and snippets. " +
		"Use this when the user asks a question requiring current information, " +
		"facts, or general knowledge."
}

func (*webTool) Schema() (*jsonschema.Schema, error) {
	return schemaFor[WebSearchRequest](1, 6)
}

func (t *webTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req WebSearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return Errorf("Web search failed: %v", err), nil
		}
	}
	if req.Query == "" {
		return Errorf("Web search failed: query is required"), nil
	}

	count := t.core.ResolveCount(req.NumResults)
	results, _, err := t.core.Search(ctx, req.Query, count)
	switch {
	case err != nil:
		return Errorf("Web search failed: %v", err), nil
	case len(results) == 0:
		return newEmptyWebResponse(t.source, req.Query), nil
	default:
		return newWebResponse(t.source, req.Query, results), nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// search_videos

func (*videoTool) Name() string {
	return "search_videos"
}

func (*videoTool) Description() string {
	return "Search YouTube for videos matching a query. " +
		"Returns a list of video results with URLs, titles, thumbnails, and channel info. " +
		"Use this when the user asks to find, search for, or show videos."
}

func (*videoTool) Schema() (*jsonschema.Schema, error) {
	return schemaFor[VideoSearchRequest](1, 10)
}

func (t *videoTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req VideoSearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return Errorf("Video search failed: %v", err), nil
		}
	}
	if req.Query == "" {
		return Errorf("Video search failed: query is required"), nil
	}

	// The play hint is per-call and recomputed even on a cache hit
	autoPlay := req.AutoPlay != nil && *req.AutoPlay

	count := t.core.ResolveCount(req.NumResults)
	results, _, err := t.core.Search(ctx, req.Query, count)
	switch {
	case err != nil:
		return Errorf("Video search failed: %v", err), nil
	case len(results) == 0:
		return newEmptyVideoResponse(t.source, req.Query), nil
	default:
		return newVideoResponse(t.source, req.Query, results, autoPlay), nil
	}
}
