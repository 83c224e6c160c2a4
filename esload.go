package esload

import (
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/thalesfsp/customerror"
)

//////
// Const, vars, and types.
//////

// Client wraps the Elasticsearch client. The connection is stateless between
// runs; pass it explicitly instead of holding a singleton.
type Client struct {
	es *elasticsearch.Client
}

//////
// Exported functionalities.
//////

// DocumentCount returns the number of documents currently in the index.
func (c *Client) DocumentCount(ctx context.Context, index string) (int64, error) {
	res, err := c.es.Count(
		c.es.Count.WithContext(ctx),
		c.es.Count.WithIndex(index),
	)
	if err != nil {
		return 0, ErrorCatalog.
			MustGet(ErrFailedToCountDocuments).
			NewFailedToError(customerror.WithError(err))
	}

	defer res.Body.Close()

	if err := checkResponse(res); err != nil {
		return 0, ErrorCatalog.
			MustGet(ErrFailedToCountDocuments).
			NewFailedToError(customerror.WithError(err))
	}

	var countResp CountResponse

	if err := json.NewDecoder(res.Body).Decode(&countResp); err != nil {
		return 0, ErrorCatalog.
			MustGet(ErrFailedToCountDocuments).
			NewFailedToError(customerror.WithError(err))
	}

	return countResp.Count, nil
}

//////
// Factory.
//////

// New returns a new Client and verifies connectivity with a ping.
func New(
	ctx context.Context,
	esConfig elasticsearch.Config,
) (*Client, error) {
	// Create the client.
	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToCreateClient).
			NewFailedToError(customerror.WithError(err))
	}

	// Test the connection.
	res, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToPing).
			NewFailedToError(customerror.WithError(err))
	}

	defer res.Body.Close()

	return &Client{
		es: client,
	}, nil
}
