package weather

import (
	"context"
	"encoding/json"
	"time"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	homeassistant "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/homeassistant"
	searchtool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/searchtool"
	tool "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type forecastTool struct {
	client         *homeassistant.Client
	dailyEntity    string
	hourlyEntity   string
	tempSensor     string
	humiditySensor string
	now            func() time.Time
}

// Config names the Home Assistant entities backing the forecast tool.
// Only the daily weather entity is required.
type Config struct {
	DailyEntity       string `yaml:"daily_entity"`
	HourlyEntity      string `yaml:"hourly_entity"`
	TemperatureSensor string `yaml:"temperature_sensor"`
	HumiditySensor    string `yaml:"humidity_sensor"`
}

// Request defines the input for the forecast tool
type Request struct {
	Range string `json:"range" jsonschema:"The time range: 'week', 'today', 'tomorrow', or a day name (monday-sunday)."`
}

// Response is the envelope returned to the LLM
type Response struct {
	Source             string  `json:"source"`
	Range              string  `json:"range"`
	ForecastType       string  `json:"forecast_type,omitempty"`
	Forecast           []Entry `json:"forecast,omitempty"`
	ConditionIcon      string  `json:"condition_icon,omitempty"`
	CurrentTemperature string  `json:"current_temperature,omitempty"`
	CurrentHumidity    string  `json:"current_humidity,omitempty"`
	Message            string  `json:"message,omitempty"`
	Instruction        string  `json:"instruction,omitempty"`
}

var _ tool.Tool = (*forecastTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const instruction = "Summarize the weather forecast naturally. Mention temperatures, " +
	"conditions, and precipitation chances. If current humidity is " +
	"provided, mention it as well. Do NOT list raw numbers " +
	"or data verbatim - give a conversational summary."

var rangeOptions = []any{
	"week", "today", "tomorrow",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool creates the weather forecast tool
func NewTool(client *homeassistant.Client, config Config) (tool.Tool, error) {
	return &forecastTool{
		client:         client,
		dailyEntity:    config.DailyEntity,
		hourlyEntity:   config.HourlyEntity,
		tempSensor:     config.TemperatureSensor,
		humiditySensor: config.HumiditySensor,
		now:            time.Now,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*forecastTool) Name() string {
	return "get_weather_forecast"
}

func (*forecastTool) Description() string {
	return "Get the weather forecast. Use 'week' for the weekly outlook, " +
		"'today' or 'tomorrow' for those days, or a day name (monday-sunday) " +
		"for a specific upcoming day. If the user says 'tonight', use 'today'."
}

func (*forecastTool) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Request](nil)
	if err != nil {
		return nil, err
	}
	if field, ok := schema.Properties["range"]; ok && field != nil {
		field.Enum = rangeOptions
	}
	return schema, nil
}

func (t *forecastTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req Request
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return searchtool.Errorf("Weather forecast failed: %v", err), nil
		}
	}
	if t.dailyEntity == "" {
		return searchtool.Errorf("No daily weather entity configured."), nil
	}

	today := t.now()
	target := resolveTargetDate(req.Range, today)

	entries, forecastType, err := t.fetch(ctx, req.Range, target)
	if err != nil {
		return searchtool.Errorf("Weather forecast failed: %v", err), nil
	}
	if len(entries) == 0 {
		return Response{
			Source:  "home_assistant",
			Range:   req.Range,
			Message: "No forecast data available for the requested range.",
		}, nil
	}

	response := Response{
		Source:       "home_assistant",
		Range:        req.Range,
		ForecastType: forecastType,
		Forecast:     formatEntries(entries, forecastType),
		Instruction:  instruction,
	}

	// Icon reflects the first entry's condition
	first := entries[0]
	isDaytime := first.IsDaytime == nil || *first.IsDaytime
	response.ConditionIcon = conditionIconURL(first.Condition, isDaytime)

	// Current readings only make sense for today and the weekly outlook
	if req.Range == "today" || req.Range == "week" {
		response.CurrentTemperature = t.sensorValue(ctx, t.tempSensor)
		response.CurrentHumidity = t.sensorValue(ctx, t.humiditySensor)
	}

	return response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// fetch selects the best forecast granularity for the range and returns
// the entries filtered to the target date
func (t *forecastTool) fetch(ctx context.Context, rangeValue string, target *time.Time) ([]homeassistant.ForecastEntry, string, error) {
	useHourly := rangeValue != "week" && t.hourlyEntity != "" &&
		t.entitySupports(ctx, t.hourlyEntity, homeassistant.WeatherFeatureForecastHourly)

	if useHourly {
		raw, err := t.client.Forecasts(ctx, t.hourlyEntity, "hourly")
		if err != nil {
			return nil, "", err
		}
		return filterByDate(raw, target), "hourly", nil
	}

	if rangeValue != "week" && t.entitySupports(ctx, t.dailyEntity, homeassistant.WeatherFeatureForecastTwiceDaily) {
		raw, err := t.client.Forecasts(ctx, t.dailyEntity, "twice_daily")
		if err != nil {
			return nil, "", err
		}
		return filterByDate(raw, target), "twice_daily", nil
	}

	raw, err := t.client.Forecasts(ctx, t.dailyEntity, "daily")
	if err != nil {
		return nil, "", err
	}
	if rangeValue == "week" {
		if len(raw) > 7 {
			raw = raw[:7]
		}
		return raw, "daily", nil
	}
	return filterByDate(raw, target), "daily", nil
}

func (t *forecastTool) entitySupports(ctx context.Context, entityId string, feature uint64) bool {
	state, err := t.client.State(ctx, entityId)
	if err != nil || state == nil {
		return false
	}
	return state.Supports(feature)
}

// sensorValue returns the rounded sensor reading with its unit, or empty
// when the sensor is unset, unavailable or not numeric
func (t *forecastTool) sensorValue(ctx context.Context, entityId string) string {
	if entityId == "" {
		return ""
	}
	state, err := t.client.State(ctx, entityId)
	if err != nil || state == nil {
		return ""
	}
	return state.DisplayValue()
}
