package brave

import (
	"context"
	"strings"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FetchOpt adjusts how results are fetched for the search core
type FetchOpt func(*fetchConfig)

type fetchConfig struct {
	safeSearch string
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithSafeSearch sets the safesearch level for image fetches, one of
// "off", "moderate" or "strict".
func WithSafeSearch(level string) FetchOpt {
	return func(c *fetchConfig) {
		c.safeSearch = level
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ImageFetcher returns an adapter mapping image search results into the
// intermediate shape consumed by the shared search core.
func (c *Client) ImageFetcher(opts ...FetchOpt) searchtool.Fetcher[searchtool.ImageResult] {
	var cfg fetchConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(ctx context.Context, query string, count int) ([]searchtool.ImageResult, error) {
		items, err := c.Images(ctx, &ImageRequest{Query: query, Count: count, SafeSearch: cfg.safeSearch})
		if err != nil {
			return nil, err
		}

		result := make([]searchtool.ImageResult, 0, len(items))
		for _, item := range items {
			image := searchtool.ImageResult{
				ImageURL:     item.Properties.URL,
				Title:        item.Title,
				ThumbnailURL: item.Thumbnail.Src,
				SourceURL:    item.URL,
				Source:       item.Source,
			}
			if item.Properties.Width > 0 {
				width := item.Properties.Width
				image.Width = &width
			}
			if item.Properties.Height > 0 {
				height := item.Properties.Height
				image.Height = &height
			}
			result = append(result, image)
		}
		return result, nil
	}
}

// FetchWeb adapts a web search into the intermediate shape consumed by the
// shared search core. Extra snippets are folded into the main snippet.
func (c *Client) FetchWeb(ctx context.Context, query string, count int) ([]searchtool.WebResult, error) {
	items, err := c.Web(ctx, &WebRequest{Query: query, Count: count})
	if err != nil {
		return nil, err
	}

	result := make([]searchtool.WebResult, 0, len(items))
	for _, item := range items {
		snippet := item.Description
		if len(item.ExtraSnippets) > 0 {
			snippet = snippet + " " + strings.Join(item.ExtraSnippets, " ")
		}
		result = append(result, searchtool.WebResult{
			URL:          item.URL,
			Title:        item.Title,
			Snippet:      snippet,
			ThumbnailURL: item.Thumbnail.Src,
		})
	}

	// Return success
	return result, nil
}
