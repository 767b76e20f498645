/*
homeassistant implements an API client for the Home Assistant REST API,
used to read entity states and fetch weather forecasts
https://developers.home-assistant.io/docs/api/rest/
*/
package homeassistant

import (
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

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The endpoint is the API root of the instance,
// e.g. http://homeassistant.local:8123/api
func New(endPoint, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	if endPoint == "" {
		return nil, ErrBadParameter.With("missing endpoint")
	}
	if apiKey == "" {
		return nil, ErrBadParameter.With("missing API key")
	}

	// Create client
	opts = append(opts,
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  apiKey,
		}),
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
