package searxng

import (
	"net/url"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchRequest defines the input for a search
type SearchRequest struct {
	Query      string
	Categories string
	Engines    string
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values() url.Values {
	result := url.Values{}
	result.Set("q", r.Query)
	result.Set("format", "json")
	if r.Categories != "" {
		result.Set("categories", r.Categories)
	} else {
		result.Set("categories", "general")
	}
	if engines := strings.TrimSpace(r.Engines); engines != "" {
		result.Set("engines", engines)
	}
	return result
}
