/*
coingecko implements an API client for the CoinGecko API, used for
cryptocurrency quotes. The public endpoints need no API key.
https://docs.coingecko.com/reference/introduction
*/
package coingecko

import (
	"context"
	"net/url"

	// Packages
	"github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// Coin is one market entry, quoted in the requested fiat currency
type Coin struct {
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
	MarketCap                float64 `json:"market_cap"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.coingecko.com/api/v3"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endPoint))
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

// Markets returns USD market data for a CoinGecko coin id, including the
// 24h price change
func (c *Client) Markets(ctx context.Context, id string) ([]Coin, error) {
	var response []Coin

	// Request -> Response
	request := url.Values{}
	request.Set("vs_currency", "usd")
	request.Set("ids", id)
	request.Set("price_change_percentage", "24h")
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("coins", "markets"), client.OptQuery(request)); err != nil {
		return nil, err
	}

	// Return success
	return response, nil
}
