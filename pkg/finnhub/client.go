/*
finnhub implements an API client for the Finnhub stock and forex API
https://finnhub.io/docs/api
*/
package finnhub

import (
	"context"
	"net/url"

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

// Quote is the realtime quote for one symbol. A zero current price means
// the symbol is unknown to the exchange feed.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

// Profile is the company profile for one symbol
type Profile struct {
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
	Logo     string `json:"logo"`
}

type respRates struct {
	Quote map[string]float64 `json:"quote"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://finnhub.io/api/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. A missing API key is reported when a lookup is
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

// GetQuote returns the realtime quote for a symbol
func (c *Client) GetQuote(ctx context.Context, symbol string) (Quote, error) {
	var response Quote

	// Check for missing credentials
	if c.key == "" {
		return Quote{}, ErrBadParameter.With("Finnhub API key not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("quote"), client.OptQuery(c.values(symbol))); err != nil {
		return Quote{}, err
	}

	// Return success
	return response, nil
}

// GetProfile returns the company profile for a symbol
func (c *Client) GetProfile(ctx context.Context, symbol string) (Profile, error) {
	var response Profile

	// Check for missing credentials
	if c.key == "" {
		return Profile{}, ErrBadParameter.With("Finnhub API key not configured")
	}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("stock", "profile2"), client.OptQuery(c.values(symbol))); err != nil {
		return Profile{}, err
	}

	// Return success
	return response, nil
}

// GetRates returns the exchange rates for a base currency
func (c *Client) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	var response respRates

	// Check for missing credentials
	if c.key == "" {
		return nil, ErrBadParameter.With("Finnhub API key not configured")
	}

	// Request -> Response
	request := url.Values{}
	request.Set("base", base)
	request.Set("token", c.key)
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forex", "rates"), client.OptQuery(request)); err != nil {
		return nil, err
	}

	// Return success
	return response.Quote, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) values(symbol string) url.Values {
	result := url.Values{}
	result.Set("symbol", symbol)
	result.Set("token", c.key)
	return result
}
