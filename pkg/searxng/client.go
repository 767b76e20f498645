/*
searxng implements an API client for a self-hosted SearXNG instance
https://docs.searxng.org/dev/search_api.html
*/
package searxng

import (
	"context"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"

	// Namespace imports
	. "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// Item is one result from the search endpoint. The thumbnail may arrive
// under several keys depending on the engine that produced the result.
type Item struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	ImgSrc       string `json:"img_src,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	ThumbnailSrc string `json:"thumbnail_src,omitempty"`
	Source       string `json:"source,omitempty"`
	Engine       string `json:"engine,omitempty"`
}

type respSearch struct {
	Results []Item `json:"results"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for a SearXNG instance. Unlike hosted providers the
// server URL is required up front, there is no meaningful default.
func New(url string, opts ...client.ClientOpt) (*Client, error) {
	if url == "" {
		return nil, ErrBadParameter.With("SearXNG server URL not configured")
	}

	// Create client
	opts = append(opts,
		client.OptEndpoint(strings.TrimSuffix(url, "/")),
		client.OptHeader("Accept", "application/json"),
	)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Search queries the instance. The category decides whether general or
// image results come back.
func (c *Client) Search(ctx context.Context, req *SearchRequest) ([]Item, error) {
	var response respSearch

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return success
	return response.Results, nil
}
