package wikipedia_test

import (
	"encoding/json"
	"testing"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	wikipedia "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/wikipedia"
	assert "github.com/stretchr/testify/assert"
)

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)

	client, err := wikipedia.New()
	assert.NoError(err)

	tool, err := wikipedia.NewTool(client, wikipedia.DetailConcise)
	assert.NoError(err)
	assert.Equal("search_wikipedia", tool.Name())
	assert.NotEmpty(tool.Description())

	schema, err := tool.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "query")
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)

	client, err := wikipedia.New()
	assert.NoError(err)

	tool, err := wikipedia.NewTool(client, wikipedia.DetailConcise)
	assert.NoError(err)

	// A missing query is a structured error, not a hard fault
	result, err := tool.Run(t.Context(), json.RawMessage(`{}`))
	assert.NoError(err)

	response, ok := result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.NotEmpty(response.Error)
}
