/*
wikipedia implements an API client for the English Wikipedia, using the
MediaWiki action API for search and extracts and the REST API for page
summaries
https://www.mediawiki.org/wiki/API:Main_page
https://en.wikipedia.org/api/rest_v1/
*/
package wikipedia

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	// Packages
	"github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// SearchResult is one hit from the full-text search
type SearchResult struct {
	Title   string `json:"title"`
	PageId  int    `json:"pageid"`
	Snippet string `json:"snippet"`
}

// Summary is the REST summary of one page. The type field distinguishes
// articles from disambiguation pages.
type Summary struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail,omitempty"`
	ContentUrls struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

type respSearch struct {
	Query struct {
		Search []SearchResult `json:"search"`
	} `json:"query"`
}

type respExtracts struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint  = "https://en.wikipedia.org"
	userAgent = "HomeAssistant VoiceSatelliteCard/1.0"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts,
		client.OptEndpoint(endPoint),
		client.OptHeader("User-Agent", userAgent),
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

// Search performs a full-text search and returns the top matches
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	var response respSearch

	// Request -> Response
	request := url.Values{}
	request.Set("action", "query")
	request.Set("list", "search")
	request.Set("srsearch", query)
	request.Set("srlimit", strconv.Itoa(limit))
	request.Set("format", "json")
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("w", "api.php"), client.OptQuery(request)); err != nil {
		return nil, err
	}

	// Return success
	return response.Query.Search, nil
}

// GetSummary returns the REST summary for a page title
func (c *Client) GetSummary(ctx context.Context, title string) (*Summary, error) {
	var response Summary

	// Request -> Response
	page := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("api", "rest_v1", "page", "summary", page)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetIntro returns the plain-text introduction section of a page
func (c *Client) GetIntro(ctx context.Context, title string) (string, error) {
	var response respExtracts

	// Request -> Response
	request := url.Values{}
	request.Set("action", "query")
	request.Set("titles", title)
	request.Set("prop", "extracts")
	request.Set("exintro", "")
	request.Set("explaintext", "")
	request.Set("format", "json")
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("w", "api.php"), client.OptQuery(request)); err != nil {
		return "", err
	}

	// Any page with a non-empty extract will do
	for _, page := range response.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", nil
}
