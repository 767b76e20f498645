package weather_test

import (
	"encoding/json"
	"testing"

	// Packages
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	weather "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/weather"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_tool_001(t *testing.T) {
	assert := assert.New(t)

	forecast, err := weather.NewTool(nil, weather.Config{DailyEntity: "weather.home"})
	if !assert.NoError(err) {
		t.FailNow()
	}

	assert.Equal("get_weather_forecast", forecast.Name())
	assert.Contains(forecast.Description(), "weekly outlook")

	schema, err := forecast.Schema()
	if assert.NoError(err) && assert.NotNil(schema) {
		field := schema.Properties["range"]
		if assert.NotNil(field) {
			assert.Contains(field.Enum, any("week"))
			assert.Contains(field.Enum, any("tomorrow"))
			assert.Contains(field.Enum, any("sunday"))
		}
	}
}

func Test_tool_002(t *testing.T) {
	assert := assert.New(t)

	// Without a daily entity the tool reports a configuration error
	forecast, err := weather.NewTool(nil, weather.Config{})
	if !assert.NoError(err) {
		t.FailNow()
	}

	result, err := forecast.Run(t.Context(), json.RawMessage(`{"range":"today"}`))
	assert.NoError(err)
	if response, ok := result.(searchtool.ErrorResponse); assert.True(ok) {
		assert.Equal("No daily weather entity configured.", response.Error)
	}
}
