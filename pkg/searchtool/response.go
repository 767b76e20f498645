package searchtool

import (
	"fmt"
	"net/url"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ErrorResponse is returned for every failed call outcome. It is mutually
// exclusive with the success and empty shapes: a response never carries
// both an error and results.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ImageResponse is the normalized envelope for image search. A zero-item
// outcome carries Message instead of Instruction.
type ImageResponse struct {
	Query       string        `json:"query"`
	NumResults  int           `json:"num_results,omitempty"`
	AutoDisplay bool          `json:"auto_display"`
	Results     []ImageResult `json:"results"`
	Message     string        `json:"message,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
}

// WebResultItem is one formatted web search hit. The site name is derived
// from the URL at formatting time.
type WebResultItem struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	SiteName string `json:"site_name"`
}

// WebResponse is the normalized envelope for web search.
type WebResponse struct {
	Source        string          `json:"source"`
	Query         string          `json:"query"`
	NumResults    int             `json:"num_results,omitempty"`
	Results       []WebResultItem `json:"results"`
	FeaturedImage *string         `json:"featured_image"`
	Message       string          `json:"message,omitempty"`
	Instruction   string          `json:"instruction,omitempty"`
}

// VideoResponse is the normalized envelope for video search.
type VideoResponse struct {
	Source      string        `json:"source"`
	Query       string        `json:"query"`
	NumResults  int           `json:"num_results,omitempty"`
	AutoPlay    bool          `json:"auto_play"`
	Results     []VideoResult `json:"results"`
	Message     string        `json:"message,omitempty"`
	Instruction string        `json:"instruction,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	imageInstruction = "Do NOT include image URLs or markdown image syntax in your response. " +
		"The images will be displayed automatically by the UI. " +
		"Simply tell the user what you found in plain text, e.g. " +
		"'Here are some cat images I found from Unsplash and Google Images.'"

	webInstruction = "Summarize the key information from these search results in 2-3 concise sentences. " +
		"Do NOT list individual URLs, titles, or sources. " +
		"The user cannot see the raw results - synthesize the information into a helpful answer."

	videoInstruction = "Do NOT include video URLs in your response. " +
		"The videos will be displayed automatically by the UI. " +
		"Simply tell the user what you found in plain text, e.g. " +
		"'Here are some cooking tutorial videos I found on YouTube.'"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Errorf wraps a failure into the single-field error shape.
func Errorf(format string, args ...any) ErrorResponse {
	return ErrorResponse{Error: fmt.Sprintf(format, args...)}
}

// newImageResponse wraps image results, re-applying the per-call display
// hint which is never part of the cached payload.
func newImageResponse(query string, results []ImageResult, autoDisplay bool) ImageResponse {
	return ImageResponse{
		Query:       query,
		NumResults:  len(results),
		AutoDisplay: autoDisplay,
		Results:     results,
		Instruction: imageInstruction,
	}
}

func newEmptyImageResponse(query string) ImageResponse {
	return ImageResponse{
		Query:   query,
		Results: []ImageResult{},
		Message: "No images found for this query.",
	}
}

func newWebResponse(source, query string, results []WebResult) WebResponse {
	items := make([]WebResultItem, 0, len(results))
	for _, r := range results {
		items = append(items, WebResultItem{
			URL:      r.URL,
			Title:    r.Title,
			Snippet:  r.Snippet,
			SiteName: siteName(r.URL),
		})
	}
	return WebResponse{
		Source:        source,
		Query:         query,
		NumResults:    len(results),
		Results:       items,
		FeaturedImage: featuredImage(results),
		Instruction:   webInstruction,
	}
}

func newEmptyWebResponse(source, query string) WebResponse {
	return WebResponse{
		Source:  source,
		Query:   query,
		Results: []WebResultItem{},
		Message: "No results found for this query.",
	}
}

func newVideoResponse(source, query string, results []VideoResult, autoPlay bool) VideoResponse {
	return VideoResponse{
		Source:      source,
		Query:       query,
		NumResults:  len(results),
		AutoPlay:    autoPlay,
		Results:     results,
		Instruction: videoInstruction,
	}
}

func newEmptyVideoResponse(source, query string) VideoResponse {
	return VideoResponse{
		Source:  source,
		Query:   query,
		Results: []VideoResult{},
		Message: "No videos found for this query.",
	}
}

// featuredImage picks the first usable thumbnail for the media panel,
// or nil when no result carries one.
func featuredImage(results []WebResult) *string {
	for _, r := range results {
		if strings.HasPrefix(r.ThumbnailURL, "http") {
			thumb := r.ThumbnailURL
			return &thumb
		}
	}
	return nil
}

// siteName extracts a clean site name from a URL, e.g. "reddit.com".
func siteName(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
