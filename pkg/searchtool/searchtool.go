/*
searchtool implements the orchestration shared by every search-style tool:
resolve the effective result count, derive a cache key, consult the result
cache, fetch from a provider adapter on a miss, and wrap the outcome into
the normalized response consumed by the LLM runtime. Provider packages
supply only a fetch function; everything else lives here.
*/
package searchtool

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind identifies a search tool family. It namespaces cache keys and
// determines the hard result-count ceiling.
type Kind string

// ImageResult is the provider-agnostic intermediate shape for one image
// search hit. It is constructed by a provider adapter, immutable once
// returned, and becomes the cached payload.
type ImageResult struct {
	ImageURL     string `json:"image_url"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	SourceURL    string `json:"source_url"`
	Source       string `json:"source"`
	Width        *int   `json:"width,omitempty"`
	Height       *int   `json:"height,omitempty"`
}

// WebResult is the provider-agnostic intermediate shape for one web
// search hit.
type WebResult struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Snippet      string `json:"snippet"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// VideoResult is the provider-agnostic intermediate shape for one video
// search hit, including the detail fields from the second-stage lookup.
type VideoResult struct {
	VideoURL     string `json:"video_url"`
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelName  string `json:"channel_name"`
	PublishedAt  string `json:"published_at"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"view_count"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindImage        Kind = "image"
	KindWeb          Kind = "web"
	KindVideo        Kind = "video"
	KindEncyclopedia Kind = "wikipedia"
)

// DefaultNumResults is used when neither the caller nor the configuration
// provides a result count.
const DefaultNumResults = 3

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MaxResults returns the hard per-kind result-count ceiling, enforced
// independently of configuration.
func (k Kind) MaxResults() int {
	switch k {
	case KindWeb:
		return 6
	case KindEncyclopedia:
		return 1
	default:
		return 10
	}
}

func (k Kind) String() string {
	return string(k)
}
