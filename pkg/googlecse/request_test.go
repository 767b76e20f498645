package googlecse_test

import (
	"testing"

	// Packages
	googlecse "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/googlecse"
	assert "github.com/stretchr/testify/assert"
)

func Test_request_001(t *testing.T) {
	assert := assert.New(t)

	req := googlecse.SearchRequest{Query: "cats", Count: 3}
	values := req.Values("key", "cx")
	assert.Equal("cats", values.Get("q"))
	assert.Equal("image", values.Get("searchType"))
	assert.Equal("active", values.Get("safe"))
	assert.Equal("3", values.Get("num"))
}

func Test_request_002(t *testing.T) {
	assert := assert.New(t)

	// Count is clamped to the per-request limit
	req := googlecse.SearchRequest{Query: "cats", Count: 50}
	assert.Equal("10", req.Values("key", "cx").Get("num"))

	req = googlecse.SearchRequest{Query: "cats"}
	assert.Equal("1", req.Values("key", "cx").Get("num"))
}

func Test_request_003(t *testing.T) {
	assert := assert.New(t)

	// Missing credentials surface when the search runs
	client, err := googlecse.New("", "")
	assert.NoError(err)

	_, err = client.Images(t.Context(), &googlecse.SearchRequest{Query: "cats", Count: 1})
	assert.Error(err)
	assert.Contains(err.Error(), "not configured")
}
