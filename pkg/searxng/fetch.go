package searxng

import (
	"context"
	"strings"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ImageFetcher returns an adapter mapping image-category results into the
// intermediate shape consumed by the shared search core. The instance does
// not honour a result count so results are truncated here, and results
// without an absolute image URL are skipped.
func (c *Client) ImageFetcher(engines string) searchtool.Fetcher[searchtool.ImageResult] {
	return func(ctx context.Context, query string, count int) ([]searchtool.ImageResult, error) {
		items, err := c.Search(ctx, &SearchRequest{Query: query, Categories: "images", Engines: engines})
		if err != nil {
			return nil, err
		}

		result := make([]searchtool.ImageResult, 0, count)
		for _, item := range items {
			if len(result) >= count {
				break
			}
			if !strings.HasPrefix(item.ImgSrc, "http") {
				continue
			}
			source := item.Source
			if source == "" {
				source = item.Engine
			}
			result = append(result, searchtool.ImageResult{
				ImageURL:     item.ImgSrc,
				Title:        item.Title,
				ThumbnailURL: httpOrEmpty(item.ThumbnailSrc),
				SourceURL:    item.URL,
				Source:       source,
			})
		}
		return result, nil
	}
}

// WebFetcher returns an adapter mapping general-category results into the
// intermediate shape consumed by the shared search core.
func (c *Client) WebFetcher(engines string) searchtool.Fetcher[searchtool.WebResult] {
	return func(ctx context.Context, query string, count int) ([]searchtool.WebResult, error) {
		items, err := c.Search(ctx, &SearchRequest{Query: query, Categories: "general", Engines: engines})
		if err != nil {
			return nil, err
		}

		result := make([]searchtool.WebResult, 0, count)
		for _, item := range items {
			if len(result) >= count {
				break
			}
			if !strings.HasPrefix(item.URL, "http") {
				continue
			}
			thumb := item.ImgSrc
			if thumb == "" {
				thumb = item.Thumbnail
			}
			if thumb == "" {
				thumb = item.ThumbnailSrc
			}
			result = append(result, searchtool.WebResult{
				URL:          item.URL,
				Title:        item.Title,
				Snippet:      item.Content,
				ThumbnailURL: httpOrEmpty(thumb),
			})
		}
		return result, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func httpOrEmpty(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return ""
}
