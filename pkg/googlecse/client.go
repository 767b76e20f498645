/*
googlecse implements an API client for the Google Custom Search JSON API
https://developers.google.com/custom-search/v1/overview
*/
package googlecse

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-client"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
	cx  string
}

// Item is one result from the custom search engine
type Item struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	DisplayLink string     `json:"displayLink"`
	Snippet     string     `json:"snippet,omitempty"`
	Image       *ItemImage `json:"image,omitempty"`
}

// ItemImage carries the image metadata for an image-type result
type ItemImage struct {
	ContextLink   string `json:"contextLink"`
	ThumbnailLink string `json:"thumbnailLink"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
}

type respSearch struct {
	Items []Item `json:"items"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://www.googleapis.com/customsearch/v1"
)

// The API returns at most ten results per request
const maxResultsPerRequest = 10

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. Missing credentials are reported when a search is
// attempted, not here, so that an unconfigured tool can still be registered.
func New(key, cx string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endPoint))
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    key,
		cx:     cx,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Images performs an image-type search
func (c *Client) Images(ctx context.Context, req *SearchRequest) ([]Item, error) {
	var response respSearch

	// Check for missing credentials
	if c.key == "" || c.cx == "" {
		return nil, ErrBadParameter.With("Google API key or Search Engine ID not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptQuery(req.Values(c.key, c.cx))); err != nil {
		return nil, err
	}

	// Return success
	return response.Items, nil
}
