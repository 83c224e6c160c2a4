package esload

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/thalesfsp/customerror"
)

//////
// Exported functionalities.
//////

// RecreateIndex deletes the named index if present and creates it again from
// the given configuration body (settings/mappings). Deleting a missing index
// is not an error. Prior index contents are destroyed, that is the point.
func (c *Client) RecreateIndex(
	ctx context.Context,
	index string,
	config json.RawMessage,
) error {
	if err := c.deleteIndex(ctx, index); err != nil {
		return err
	}

	return c.createIndex(ctx, index, config)
}

//////
// Internal functionalities.
//////

// deleteIndex deletes the index, ignoring "index not found".
func (c *Client) deleteIndex(ctx context.Context, index string) error {
	res, err := c.es.Indices.Delete(
		[]string{index},
		c.es.Indices.Delete.WithContext(ctx),
		c.es.Indices.Delete.WithIgnoreUnavailable(true),
	)
	if err != nil {
		return ErrorCatalog.
			MustGet(ErrFailedToDeleteIndex).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("index", index),
			)
	}

	defer res.Body.Close()

	if err := checkResponse(res); err != nil {
		return ErrorCatalog.
			MustGet(ErrFailedToDeleteIndex).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("index", index),
			)
	}

	return nil
}

// createIndex creates the index with the raw configuration body.
func (c *Client) createIndex(ctx context.Context, index string, config json.RawMessage) error {
	opts := []func(*esapi.IndicesCreateRequest){
		c.es.Indices.Create.WithContext(ctx),
	}

	if config != nil {
		opts = append(opts, c.es.Indices.Create.WithBody(bytes.NewReader(config)))
	}

	res, err := c.es.Indices.Create(index, opts...)
	if err != nil {
		return ErrorCatalog.
			MustGet(ErrFailedToCreateIndex).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("index", index),
			)
	}

	defer res.Body.Close()

	if err := checkResponse(res); err != nil {
		return ErrorCatalog.
			MustGet(ErrFailedToCreateIndex).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("index", index),
			)
	}

	var ack AcknowledgedResponse

	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return ErrorCatalog.
			MustGet(ErrFailedToCreateIndex).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("index", index),
			)
	}

	if !ack.Acknowledged {
		return ErrorCatalog.
			MustGet(ErrFailedToCreateIndex).
			NewFailedToError(customerror.WithField("index", index))
	}

	return nil
}
