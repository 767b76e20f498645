package googlecse

import (
	"context"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FetchImages adapts an image search into the intermediate shape consumed
// by the shared search core.
func (c *Client) FetchImages(ctx context.Context, query string, count int) ([]searchtool.ImageResult, error) {
	items, err := c.Images(ctx, &SearchRequest{Query: query, Count: count})
	if err != nil {
		return nil, err
	}

	result := make([]searchtool.ImageResult, 0, len(items))
	for _, item := range items {
		image := searchtool.ImageResult{
			ImageURL: item.Link,
			Title:    item.Title,
			Source:   item.DisplayLink,
		}
		if item.Image != nil {
			image.ThumbnailURL = item.Image.ThumbnailLink
			image.SourceURL = item.Image.ContextLink
			if item.Image.Width > 0 {
				width := item.Image.Width
				image.Width = &width
			}
			if item.Image.Height > 0 {
				height := item.Image.Height
				image.Height = &height
			}
		}
		result = append(result, image)
	}

	// Return success
	return result, nil
}
