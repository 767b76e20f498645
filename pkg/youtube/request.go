package youtube

import (
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchRequest defines the input for a video search
type SearchRequest struct {
	Query string
	Count int
}

// VideosRequest defines the input for a video details lookup
type VideosRequest struct {
	Ids string
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchRequest to URL query parameters
func (r *SearchRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("key", key)
	result.Set("part", "snippet")
	result.Set("q", r.Query)
	result.Set("type", "video")
	result.Set("maxResults", strconv.Itoa(r.Count))
	return result
}

// Values converts VideosRequest to URL query parameters
func (r *VideosRequest) Values(key string) url.Values {
	result := url.Values{}
	result.Set("key", key)
	result.Set("part", "contentDetails,statistics")
	result.Set("id", r.Ids)
	return result
}
