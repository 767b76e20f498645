/*
brave implements an API client for the Brave Search API
https://api-dashboard.search.brave.com/app/documentation
*/
package brave

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
}

// ImageItem is one result from the image search endpoint
type ImageItem struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	Thumbnail  Media  `json:"thumbnail"`
	Properties Image  `json:"properties"`
}

// Media carries a thumbnail source URL
type Media struct {
	Src string `json:"src"`
}

// Image carries the full-size image metadata
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// WebItem is one result from the web search endpoint
type WebItem struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Description   string   `json:"description"`
	ExtraSnippets []string `json:"extra_snippets,omitempty"`
	Thumbnail     Media    `json:"thumbnail"`
}

type respImages struct {
	Results []ImageItem `json:"results"`
}

type respWeb struct {
	Web struct {
		Results []WebItem `json:"results"`
	} `json:"web"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.search.brave.com/res/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. A missing API key is reported when a search is
// attempted, not here, so that an unconfigured tool can still be registered.
func New(key string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts,
		client.OptEndpoint(endPoint),
		client.OptHeader("Accept", "application/json"),
		client.OptHeader("X-Subscription-Token", key),
	)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    key,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Images searches for images matching a query
func (c *Client) Images(ctx context.Context, req *ImageRequest) ([]ImageItem, error) {
	var response respImages

	// Check for missing credentials
	if c.key == "" {
		return nil, ErrBadParameter.With("Brave API key not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("images/search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return success
	return response.Results, nil
}

// Web searches for web pages matching a query
func (c *Client) Web(ctx context.Context, req *WebRequest) ([]WebItem, error) {
	var response respWeb

	// Check for missing credentials
	if c.key == "" {
		return nil, ErrBadParameter.With("Brave API key not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("web/search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return success
	return response.Web.Results, nil
}
