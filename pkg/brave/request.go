package brave

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// ImageRequest defines the input for an image search
type ImageRequest struct {
	Query      string
	Count      int
	SafeSearch string
}

// WebRequest defines the input for a web search
type WebRequest struct {
	Query string
	Count int
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts ImageRequest to URL query parameters
func (r *ImageRequest) Values() url.Values {
	result := url.Values{}
	result.Set("q", r.Query)
	result.Set("count", strconv.Itoa(r.Count))
	if r.SafeSearch != "" {
		result.Set("safesearch", r.SafeSearch)
	} else {
		result.Set("safesearch", "moderate")
	}
	return result
}

// Values converts WebRequest to URL query parameters
func (r *WebRequest) Values() url.Values {
	result := url.Values{}
	result.Set("q", r.Query)
	result.Set("count", strconv.Itoa(r.Count))
	result.Set("result_filter", "web")
	result.Set("extra_snippets", "true")
	return result
}
