package homeassistant

import (
	"context"
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ForecastEntry is one entry returned by the weather.get_forecasts
// service. Nullable numeric fields are pointers so that absent values can
// be told apart from zero.
type ForecastEntry struct {
	Datetime                 string   `json:"datetime"`
	Condition                string   `json:"condition,omitempty"`
	Temperature              *float64 `json:"temperature,omitempty"`
	TempLow                  *float64 `json:"templow,omitempty"`
	PrecipitationProbability *float64 `json:"precipitation_probability,omitempty"`
	Humidity                 *float64 `json:"humidity,omitempty"`
	WindSpeed                *float64 `json:"wind_speed,omitempty"`
	IsDaytime                *bool    `json:"is_daytime,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Feature bits advertised by weather entities in supported_features
const (
	WeatherFeatureForecastDaily      uint64 = 1
	WeatherFeatureForecastHourly     uint64 = 2
	WeatherFeatureForecastTwiceDaily uint64 = 4
)

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// Forecasts fetches forecast entries for a weather entity. The forecast
// type is one of "daily", "hourly" or "twice_daily".
func (c *Client) Forecasts(ctx context.Context, entityId, forecastType string) ([]ForecastEntry, error) {
	response, err := c.CallWithResponse(ctx, "weather", "get_forecasts", map[string]any{
		"entity_id": entityId,
		"type":      forecastType,
	})
	if err != nil {
		return nil, err
	}

	// The service response nests the forecast under the entity id
	entity, ok := response.ServiceResponse[entityId].(map[string]any)
	if !ok {
		return nil, nil
	}
	raw, ok := entity["forecast"]
	if !ok {
		return nil, nil
	}

	// Round-trip through JSON into the typed entries
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var entries []ForecastEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	// Return success
	return entries, nil
}
