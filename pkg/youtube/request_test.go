package youtube_test

import (
	"testing"

	// Packages
	youtube "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/youtube"
	assert "github.com/stretchr/testify/assert"
)

func Test_request_001(t *testing.T) {
	assert := assert.New(t)

	req := youtube.SearchRequest{Query: "cooking", Count: 3}
	values := req.Values("key")
	assert.Equal("snippet", values.Get("part"))
	assert.Equal("video", values.Get("type"))
	assert.Equal("3", values.Get("maxResults"))
}

func Test_request_002(t *testing.T) {
	assert := assert.New(t)

	req := youtube.VideosRequest{Ids: "a,b,c"}
	values := req.Values("key")
	assert.Equal("contentDetails,statistics", values.Get("part"))
	assert.Equal("a,b,c", values.Get("id"))
}

func Test_request_003(t *testing.T) {
	assert := assert.New(t)

	thumbs := youtube.Thumbnails{}
	assert.Empty(thumbs.Best())

	thumbs.Default.Url = "https://i.ytimg.com/default.jpg"
	assert.Equal("https://i.ytimg.com/default.jpg", thumbs.Best())

	thumbs.Medium.Url = "https://i.ytimg.com/medium.jpg"
	assert.Equal("https://i.ytimg.com/medium.jpg", thumbs.Best())

	thumbs.High.Url = "https://i.ytimg.com/high.jpg"
	assert.Equal("https://i.ytimg.com/high.jpg", thumbs.Best())
}

func Test_request_004(t *testing.T) {
	assert := assert.New(t)

	// Missing credentials surface when the search runs
	client, err := youtube.New("")
	assert.NoError(err)

	_, err = client.Search(t.Context(), &youtube.SearchRequest{Query: "cats", Count: 1})
	assert.Error(err)
	assert.Contains(err.Error(), "not configured")
}
