/*
youtube implements an API client for the YouTube Data API v3
https://developers.google.com/youtube/v3/docs
*/
package youtube

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
	key string
}

// SearchItem is one result from the search endpoint
type SearchItem struct {
	Id struct {
		VideoId string `json:"videoId"`
	} `json:"id"`
	Snippet Snippet `json:"snippet"`
}

// Snippet carries the descriptive metadata of a video
type Snippet struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

// Thumbnails lists the available thumbnail sizes
type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

type Thumbnail struct {
	Url string `json:"url"`
}

// Video is one result from the videos endpoint, carrying the detail
// fields absent from search results
type Video struct {
	Id             string `json:"id"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}

type respSearch struct {
	Items []SearchItem `json:"items"`
}

type respVideos struct {
	Items []Video `json:"items"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://www.googleapis.com/youtube/v3"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. A missing API key is reported when a search is
// attempted, not here, so that an unconfigured tool can still be registered.
func New(key string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endPoint))
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

// Search returns video-type search results for a query
func (c *Client) Search(ctx context.Context, req *SearchRequest) ([]SearchItem, error) {
	var response respSearch

	// Check for missing credentials
	if c.key == "" {
		return nil, ErrBadParameter.With("YouTube API key not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("search"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, err
	}

	// Return success
	return response.Items, nil
}

// Videos returns the content details and statistics for a set of video ids
func (c *Client) Videos(ctx context.Context, ids []string) ([]Video, error) {
	var response respVideos

	// Check for missing credentials
	if c.key == "" {
		return nil, ErrBadParameter.With("YouTube API key not configured")
	}

	// Request -> Response
	req := VideosRequest{Ids: strings.Join(ids, ",")}
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("videos"), client.OptQuery(req.Values(c.key))); err != nil {
		return nil, err
	}

	// Return success
	return response.Items, nil
}
