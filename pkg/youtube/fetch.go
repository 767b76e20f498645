package youtube

import (
	"context"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FetchVideos adapts the two-stage search into the intermediate shape
// consumed by the shared search core. The second stage enriches results
// with duration and view count; if it fails, results are returned with
// those fields empty rather than failing the whole search.
func (c *Client) FetchVideos(ctx context.Context, query string, count int) ([]searchtool.VideoResult, error) {
	items, err := c.Search(ctx, &SearchRequest{Query: query, Count: count})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Id.VideoId)
	}

	details := make(map[string]Video, len(ids))
	if videos, err := c.Videos(ctx, ids); err == nil {
		for _, video := range videos {
			details[video.Id] = video
		}
	}

	result := make([]searchtool.VideoResult, 0, len(items))
	for _, item := range items {
		id := item.Id.VideoId
		detail := details[id]
		result = append(result, searchtool.VideoResult{
			VideoURL:     "https://www.youtube.com/watch?v=" + id,
			VideoID:      id,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: item.Snippet.Thumbnails.Best(),
			ChannelName:  item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Duration:     detail.ContentDetails.Duration,
			ViewCount:    detail.Statistics.ViewCount,
		})
	}

	// Return success
	return result, nil
}

// Best returns the largest available thumbnail URL
func (t Thumbnails) Best() string {
	if t.High.Url != "" {
		return t.High.Url
	}
	if t.Medium.Url != "" {
		return t.Medium.Url
	}
	return t.Default.Url
}
