package googlecse

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchRequest defines the input for an image search
type SearchRequest struct {
	Query string
	Count int
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values(key, cx string) url.Values {
	result := url.Values{}
	result.Set("key", key)
	result.Set("cx", cx)
	result.Set("q", r.Query)
	result.Set("searchType", "image")
	result.Set("safe", "active")

	count := r.Count
	if count < 1 {
		count = 1
	} else if count > maxResultsPerRequest {
		count = maxResultsPerRequest
	}
	result.Set("num", strconv.Itoa(count))

	return result
}
