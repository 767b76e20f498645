package searchtool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	// Packages
	"github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/cache"
	"github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	"github.com/stretchr/testify/assert"
)

func TestImageToolSuccess(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{results: images(5)}
	tool, err := searchtool.NewImageTool(fetcher.fetch,
		searchtool.WithStore(cache.NewStore(), time.Minute),
		searchtool.WithMaxResults(5),
	)
	assert.NoError(err)

	assert.Equal("search_images", tool.Name())
	assert.NotEmpty(tool.Description())

	schema, err := tool.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "query")
	assert.Contains(schema.Properties, "num_results")
	assert.Contains(schema.Properties, "auto_display")

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cats","num_results":3}`))
	assert.NoError(err)

	response, ok := result.(searchtool.ImageResponse)
	assert.True(ok)
	assert.Equal("cats", response.Query)
	assert.Equal(3, fetcher.lastCount)
	assert.NotEmpty(response.Instruction)
	assert.Empty(response.Message)
	assert.False(response.AutoDisplay)
}

func TestImageToolDisplayHintRecomputedOnHit(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{results: images(3)}
	tool, err := searchtool.NewImageTool(fetcher.fetch,
		searchtool.WithStore(cache.NewStore(), time.Minute),
		searchtool.WithMaxResults(3),
	)
	assert.NoError(err)

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cats","auto_display":true}`))
	assert.NoError(err)
	assert.True(result.(searchtool.ImageResponse).AutoDisplay)

	// Identical query served from the cache still honours the new hint
	result, err = tool.Run(context.Background(), json.RawMessage(`{"query":"cats","auto_display":false}`))
	assert.NoError(err)
	assert.False(result.(searchtool.ImageResponse).AutoDisplay)
	assert.Equal(1, fetcher.calls)
}

func TestImageToolMissingQuery(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{results: images(3)}
	tool, err := searchtool.NewImageTool(fetcher.fetch)
	assert.NoError(err)

	result, err := tool.Run(context.Background(), json.RawMessage(`{}`))
	assert.NoError(err)

	response, ok := result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.NotEmpty(response.Error)
	assert.Equal(0, fetcher.calls)
}

func TestImageToolFetchError(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{err: errors.New("API key not configured")}
	tool, err := searchtool.NewImageTool(fetcher.fetch)
	assert.NoError(err)

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cats"}`))
	assert.NoError(err)

	response, ok := result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.Contains(response.Error, "not configured")
}

func TestImageToolEmptyResults(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{}
	tool, err := searchtool.NewImageTool(fetcher.fetch)
	assert.NoError(err)

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cats"}`))
	assert.NoError(err)

	response, ok := result.(searchtool.ImageResponse)
	assert.True(ok)
	assert.NotEmpty(response.Message)
	assert.Empty(response.Results)
	assert.Empty(response.Instruction)
}

func TestWebToolResponse(t *testing.T) {
	assert := assert.New(t)

	fetch := func(ctx context.Context, query string, count int) ([]searchtool.WebResult, error) {
		return []searchtool.WebResult{
			{URL: "https://www.example.com/article", Title: "Article", Snippet: "A snippet"},
			{URL: "https://news.example.org/post", Title: "Post", Snippet: "Another", ThumbnailURL: "https://img.example.org/t.jpg"},
		}, nil
	}
	tool, err := searchtool.NewWebTool("brave", fetch)
	assert.NoError(err)

	assert.Equal("search_web", tool.Name())

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"news"}`))
	assert.NoError(err)

	response, ok := result.(searchtool.WebResponse)
	assert.True(ok)
	assert.Equal("brave", response.Source)
	assert.Equal(2, response.NumResults)
	assert.Equal("example.com", response.Results[0].SiteName)
	assert.Equal("news.example.org", response.Results[1].SiteName)
	assert.NotNil(response.FeaturedImage)
	assert.Equal("https://img.example.org/t.jpg", *response.FeaturedImage)
}

func TestVideoToolResponse(t *testing.T) {
	assert := assert.New(t)

	fetch := func(ctx context.Context, query string, count int) ([]searchtool.VideoResult, error) {
		return []searchtool.VideoResult{
			{VideoID: "abc123", VideoURL: "https://www.youtube.com/watch?v=abc123", Title: "A video"},
		}, nil
	}
	tool, err := searchtool.NewVideoTool("youtube", fetch)
	assert.NoError(err)

	assert.Equal("search_videos", tool.Name())

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cooking","auto_play":true}`))
	assert.NoError(err)

	response, ok := result.(searchtool.VideoResponse)
	assert.True(ok)
	assert.Equal("youtube", response.Source)
	assert.True(response.AutoPlay)
	assert.Equal(1, response.NumResults)
	assert.NotEmpty(response.Instruction)
}

func TestErrorShapeExclusivity(t *testing.T) {
	assert := assert.New(t)

	fetcher := &countingFetcher{err: errors.New("boom")}
	tool, err := searchtool.NewImageTool(fetcher.fetch)
	assert.NoError(err)

	result, err := tool.Run(context.Background(), json.RawMessage(`{"query":"cats"}`))
	assert.NoError(err)

	// The error shape carries the error field and nothing else
	data, err := json.Marshal(result)
	assert.NoError(err)

	var fields map[string]any
	assert.NoError(json.Unmarshal(data, &fields))
	assert.Contains(fields, "error")
	assert.NotContains(fields, "results")
	assert.Len(fields, 1)
}
