package searchtool

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ImageSearchRequest defines the input for the image search tool
type ImageSearchRequest struct {
	Query       string `json:"query" jsonschema:"The image search query"`
	NumResults  *int   `json:"num_results,omitempty" jsonschema:"Number of image results to return (1-10)"`
	AutoDisplay *bool  `json:"auto_display,omitempty" jsonschema:"Set to true when the user wants to see a specific image displayed immediately (e.g. 'show me the Mona Lisa'). Set to false when the user wants to browse multiple results."`
}

// WebSearchRequest defines the input for the web search tool
type WebSearchRequest struct {
	Query      string `json:"query" jsonschema:"The web search query"`
	NumResults *int   `json:"num_results,omitempty" jsonschema:"Number of web results to return (1-6)"`
}

// VideoSearchRequest defines the input for the video search tool
type VideoSearchRequest struct {
	Query      string `json:"query" jsonschema:"The video search query"`
	NumResults *int   `json:"num_results,omitempty" jsonschema:"Number of video results to return (1-10)"`
	AutoPlay   *bool  `json:"auto_play,omitempty" jsonschema:"Set to true when the user wants to immediately watch/play a specific video. Set to false when the user wants to browse or explore multiple results."`
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// schemaFor generates the schema for a request type, constraining the
// num_results field to the given range when present.
func schemaFor[T any](min, max float64) (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	if field, ok := schema.Properties["num_results"]; ok && field != nil {
		field.Minimum = &min
		field.Maximum = &max
	}
	return schema, nil
}
