package finnhub_test

import (
	"encoding/json"
	"testing"

	// Packages
	finnhub "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/finnhub"
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)

	client, err := finnhub.New("")
	assert.NoError(err)

	tool, err := finnhub.NewTool(client, nil)
	assert.NoError(err)
	assert.Equal("get_financial_data", tool.Name())
	assert.NotEmpty(tool.Description())

	schema, err := tool.Schema()
	assert.NoError(err)
	assert.Contains(schema.Properties, "query_type")
	assert.Contains(schema.Properties, "symbol")
	assert.Contains(schema.Properties, "from_currency")
	assert.Contains(schema.Properties, "to_currency")
	assert.Contains(schema.Properties, "amount")
	assert.Contains(schema.Properties["query_type"].Enum, any("stock"))
	assert.Contains(schema.Properties["query_type"].Enum, any("currency"))
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)

	client, err := finnhub.New("")
	assert.NoError(err)
	tool, err := finnhub.NewTool(client, nil)
	assert.NoError(err)

	// Missing symbol
	result, err := tool.Run(t.Context(), json.RawMessage(`{"query_type":"stock"}`))
	assert.NoError(err)
	response, ok := result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.Contains(response.Error, "required")

	// Missing credentials surface as a structured error
	result, err = tool.Run(t.Context(), json.RawMessage(`{"query_type":"stock","symbol":"AAPL"}`))
	assert.NoError(err)
	response, ok = result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.Contains(response.Error, "not configured")
}

func Test_tool_003(t *testing.T) {
	assert := assert.New(t)

	client, err := finnhub.New("")
	assert.NoError(err)
	tool, err := finnhub.NewTool(client, nil)
	assert.NoError(err)

	// Missing currency codes
	result, err := tool.Run(t.Context(), json.RawMessage(`{"query_type":"currency","from_currency":"USD"}`))
	assert.NoError(err)
	response, ok := result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.Contains(response.Error, "required")

	// Unknown query type
	result, err = tool.Run(t.Context(), json.RawMessage(`{"query_type":"weather"}`))
	assert.NoError(err)
	response, ok = result.(searchtool.ErrorResponse)
	assert.True(ok)
	assert.Contains(response.Error, "Unknown query_type")
}
