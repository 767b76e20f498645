/*
weather implements the forecast tool on top of Home Assistant weather
entities. The forecast granularity adapts to what the configured entities
support: hourly for single days when an hourly entity exists, twice-daily
as the next best, daily otherwise and always for the weekly outlook.
*/
package weather

import (
	"math"
	"strconv"
	"strings"
	"time"

	// Packages
	homeassistant "github.com/jxlarrea/voice-satellite-card-llm-tools/pkg/homeassistant"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Entry is one formatted forecast entry. Hourly entries carry a time,
// daily and twice-daily entries carry a weekday name.
type Entry struct {
	Time          string   `json:"time,omitempty"`
	Date          string   `json:"date,omitempty"`
	Datetime      string   `json:"datetime,omitempty"`
	Condition     string   `json:"condition"`
	Temperature   string   `json:"temperature,omitempty"`
	IsDaytime     *bool    `json:"is_daytime,omitempty"`
	Precipitation string   `json:"precipitation,omitempty"`
	Humidity      string   `json:"humidity,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Base URL for the weather condition icons served by the UI
const iconBaseURL = "/voice_satellite_llm_tools/weather_icons"

// Weekday names in range order, Monday first
var dayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Day and night icon names per weather condition
var conditionIcons = map[string][2]string{
	"clear-night":     {"clear_night", "clear_night"},
	"cloudy":          {"cloudy", "cloudy"},
	"fog":             {"haze_fog_dust_smoke", "haze_fog_dust_smoke"},
	"hail":            {"mixed_rain_hail_sleet", "mixed_rain_hail_sleet"},
	"lightning":       {"isolated_thunderstorms", "isolated_thunderstorms"},
	"lightning-rainy": {"strong_thunderstorms", "strong_thunderstorms"},
	"partlycloudy":    {"partly_cloudy_day", "partly_cloudy_night"},
	"pouring":         {"heavy_rain", "heavy_rain"},
	"rainy":           {"showers_rain", "showers_rain"},
	"snowy":           {"heavy_snow", "heavy_snow"},
	"snowy-rainy":     {"mixed_rain_snow", "mixed_rain_snow"},
	"sunny":           {"clear_day", "clear_day"},
	"windy":           {"windy", "windy"},
	"windy-variant":   {"windy", "windy"},
	"exceptional":     {"tropical_storm_hurricane", "tropical_storm_hurricane"},
}

// Precipitation probability thresholds mapped to natural language, in
// ascending order
var precipitationThresholds = []struct {
	limit int
	text  string
}{
	{0, "no chance"},
	{5, "very unlikely"},
	{15, "unlikely"},
	{30, "possible"},
	{50, "moderate"},
	{70, "likely"},
	{85, "very likely"},
	{95, "extremely likely"},
	{100, "almost guaranteed"},
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolveTargetDate maps a range value onto a calendar date, or nil for
// the weekly outlook. A day name matching today means next week.
func resolveTargetDate(rangeValue string, today time.Time) *time.Time {
	switch rangeValue {
	case "week":
		return nil
	case "today":
		return &today
	case "tomorrow":
		target := today.AddDate(0, 0, 1)
		return &target
	}
	for i, name := range dayNames {
		if name != rangeValue {
			continue
		}
		// Monday-first weekday index of today
		todayIndex := (int(today.Weekday()) + 6) % 7
		ahead := (i - todayIndex + 7) % 7
		if ahead == 0 {
			ahead = 7
		}
		target := today.AddDate(0, 0, ahead)
		return &target
	}
	return &today
}

// filterByDate keeps entries whose datetime falls on the target date.
// Entries with an unparseable datetime are dropped.
func filterByDate(entries []homeassistant.ForecastEntry, target *time.Time) []homeassistant.ForecastEntry {
	if target == nil {
		return entries
	}
	filtered := make([]homeassistant.ForecastEntry, 0, len(entries))
	for _, entry := range entries {
		when, err := parseDatetime(entry.Datetime)
		if err != nil {
			continue
		}
		if sameDate(when, *target) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// formatEntries renders raw forecast entries for the LLM
func formatEntries(entries []homeassistant.ForecastEntry, forecastType string) []Entry {
	formatted := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		item := Entry{
			Condition: entry.Condition,
		}

		if when, err := parseDatetime(entry.Datetime); err == nil {
			if forecastType == "hourly" {
				item.Time = strings.ToLower(when.Format("3PM"))
			} else {
				item.Date = when.Format("Monday")
			}
		} else if entry.Datetime != "" {
			item.Datetime = entry.Datetime
		}

		if entry.Temperature != nil {
			if entry.TempLow != nil {
				item.Temperature = strconv.Itoa(roundInt(*entry.TempLow)) + " - " + strconv.Itoa(roundInt(*entry.Temperature))
			} else {
				item.Temperature = strconv.Itoa(roundInt(*entry.Temperature))
			}
		}

		if forecastType == "twice_daily" {
			item.IsDaytime = entry.IsDaytime
		}

		if text := describePrecipitation(entry.PrecipitationProbability); text != "" {
			item.Precipitation = text
		}
		if entry.Humidity != nil {
			item.Humidity = strconv.FormatFloat(*entry.Humidity, 'f', -1, 64) + "%"
		}
		if entry.WindSpeed != nil {
			item.WindSpeed = entry.WindSpeed
		}

		formatted = append(formatted, item)
	}
	return formatted
}

// describePrecipitation converts a probability into natural language
func describePrecipitation(probability *float64) string {
	if probability == nil {
		return ""
	}
	value := int(*probability)
	for _, threshold := range precipitationThresholds {
		if value <= threshold.limit {
			return threshold.text
		}
	}
	return "almost guaranteed"
}

// conditionIconURL returns the icon URL for a condition, or empty when
// the condition is unknown
func conditionIconURL(condition string, isDaytime bool) string {
	icons, ok := conditionIcons[condition]
	if !ok {
		return ""
	}
	if isDaytime {
		return iconBaseURL + "/" + icons[0] + ".svg"
	}
	return iconBaseURL + "/" + icons[1] + ".svg"
}

func parseDatetime(value string) (time.Time, error) {
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, nil
	}
	return time.Parse("2006-01-02", value)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func roundInt(value float64) int {
	return int(math.Round(value))
}
