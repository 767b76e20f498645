package homeassistant_test

import (
	"encoding/json"
	"testing"

	// Packages
	homeassistant "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/homeassistant"
	assert "github.com/stretchr/testify/assert"
)

func Test_states_001(t *testing.T) {
	assert := assert.New(t)

	var state homeassistant.State
	err := json.Unmarshal([]byte(`{
		"entity_id": "sensor.outdoor_temperature",
		"state": "21.4",
		"attributes": {
			"friendly_name": "Outdoor Temperature",
			"unit_of_measurement": "°C"
		}
	}`), &state)
	assert.NoError(err)

	assert.Equal("sensor", state.Domain())
	assert.Equal("Outdoor Temperature", state.Name())
	assert.Equal("21.4", state.Value())
	assert.Equal("°C", state.UnitOfMeasurement())
	assert.Equal("21°C", state.DisplayValue())
}

func Test_states_002(t *testing.T) {
	assert := assert.New(t)

	// Unavailable states have no value
	state := homeassistant.State{State: "unavailable"}
	assert.Empty(state.Value())
	assert.Empty(state.DisplayValue())

	state.State = "unknown"
	assert.Empty(state.Value())

	// Non-numeric states have no display value
	state.State = "cloudy"
	assert.Equal("cloudy", state.Value())
	assert.Empty(state.DisplayValue())
}

func Test_states_003(t *testing.T) {
	assert := assert.New(t)

	var state homeassistant.State
	err := json.Unmarshal([]byte(`{
		"entity_id": "weather.home",
		"state": "sunny",
		"attributes": {
			"supported_features": 3
		}
	}`), &state)
	assert.NoError(err)

	assert.Equal(uint64(3), state.SupportedFeatures())
	assert.True(state.Supports(homeassistant.WeatherFeatureForecastDaily))
	assert.True(state.Supports(homeassistant.WeatherFeatureForecastHourly))
	assert.False(state.Supports(homeassistant.WeatherFeatureForecastTwiceDaily))

	// Missing attribute means no features
	assert.False(homeassistant.State{}.Supports(homeassistant.WeatherFeatureForecastDaily))
}
