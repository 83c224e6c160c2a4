package esload

import (
	"bytes"
	"context"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/thalesfsp/customerror"
)

//////
// Const, vars, and types.
//////

// fallbackActionSize is used to size flushes when the first action has no
// body (e.g. a delete).
const fallbackActionSize = 256

// LoadReport summarizes a bulk load.
type LoadReport struct {
	// ActionsRead is the number of actions consumed from the source.
	ActionsRead int64 `json:"actionsRead"`

	// Succeeded and Failed are per-document outcomes reported by the engine.
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`

	// FailedItems carries the failure detail for every rejected document.
	FailedItems []FailedItem `json:"failedItems"`

	// Duration is the wall-clock time of the whole submission phase.
	Duration time.Duration `json:"duration"`
}

//////
// Exported functionalities.
//////

// BulkLoad streams actions from src and submits them through the client's
// parallel bulk indexer, tagging every action with opts.Index. Per-document
// failures are recorded in the report (and forwarded to errorCh when set)
// without stopping the run. Transport-level failures and malformed action
// lines abort the load.
//
//nolint:gocognit
func (c *Client) BulkLoad(
	ctx context.Context,
	src *ActionScanner,
	opts *BulkOptions,
	// For async errors, optional.
	errorCh chan<- error,
) (*LoadReport, error) {
	//////
	// Internal helper.
	//////

	// Helper function to send async errors.
	asyncErrorHandler := func(err error) {
		if errorCh != nil {
			errorCh <- err
		}
	}

	//////
	// Metrics initialization.
	//////

	metrics, err := NewLoadMetrics()
	if err != nil {
		return nil, err
	}

	//////
	// Final index name definition.
	//////

	// Modify the index name if a function is provided.
	if opts.IndexNameFunc != nil {
		opts.Index = opts.IndexNameFunc(opts.Index)
	}

	start := time.Now()

	// The indexer is created lazily: the first action's body size converts
	// the count-based chunk size into the indexer's byte-based flush budget.
	var bi esutil.BulkIndexer

	for src.Scan() {
		// Breaks the loop if the context errored by any reason.
		if err := ctx.Err(); err != nil {
			if bi != nil {
				bi.Close(context.WithoutCancel(ctx))
			}

			return nil, err
		}

		action := src.Action()

		if bi == nil {
			bi, err = c.newBulkIndexer(opts, len(action.Body), metrics, asyncErrorHandler)
			if err != nil {
				return nil, err
			}
		}

		bII := esutil.BulkIndexerItem{
			Action:     action.Op,
			DocumentID: action.ID,
			Routing:    action.Routing,

			// Every action goes to the configured index, whatever the
			// source line said.
			Index: opts.Index,

			// Document successfully indexed.
			OnSuccess: func(_ context.Context, _ esutil.BulkIndexerItem, _ esutil.BulkIndexerResponseItem) {
				metrics.IncreaseDocsSucceeded()
			},

			// Document failed to index.
			OnFailure: func(_ context.Context, _ esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				asyncErrorHandler(
					ErrorCatalog.
						MustGet(ErrFailedToIndexDocument).
						NewFailedToError(
							customerror.WithError(err),
							customerror.WithTag("bi.Add"),
							customerror.WithField("docID", res.DocumentID),
						),
				)

				metrics.IncreaseDocsFailed()

				metrics.RecordFailedItem(FailedItem{
					ID:     res.DocumentID,
					Reason: res.Error.Reason,
					Status: res.Status,
				})
			},
		}

		if len(action.Body) > 0 {
			bII.Body = bytes.NewReader(action.Body)
		}

		// Should allow to override the document ID.
		if opts.DocumentIDFunc != nil {
			bII.DocumentID = opts.DocumentIDFunc(action)
		}

		if err := bi.Add(ctx, bII); err != nil {
			bi.Close(context.WithoutCancel(ctx))

			return nil, ErrorCatalog.
				MustGet(ErrFailedToAddActionToBulkIndexer).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithTag("bi.Add"),
				)
		}

		metrics.IncreaseDocsProcessed()

		metrics.UpdateBytesProcessed(int64(len(action.Body)))
	}

	// A malformed action line aborts the run.
	if err := src.Err(); err != nil {
		if bi != nil {
			bi.Close(context.WithoutCancel(ctx))
		}

		return nil, err
	}

	if bi != nil {
		if err := bi.Close(ctx); err != nil {
			return nil, ErrorCatalog.
				MustGet(ErrIndexerError).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithTag("bi.Close"),
				)
		}
	}

	metrics.UpdateStatus(StatusDone)

	final := metrics.GetMetrics()

	return &LoadReport{
		ActionsRead: final.DocsProcessed,
		Succeeded:   final.DocsSucceeded,
		Failed:      final.DocsFailed,
		FailedItems: final.FailedItems,
		Duration:    time.Since(start),
	}, nil
}

//////
// Internal functionalities.
//////

// newBulkIndexer configures the underlying bulk indexer: the worker pool, the
// flush budget derived from the chunk size, the fixed long request timeout,
// and the refresh policy.
func (c *Client) newBulkIndexer(
	opts *BulkOptions,
	sampleSize int,
	metrics *LoadMetrics,
	asyncErrorHandler func(error),
) (esutil.BulkIndexer, error) {
	flushBytes := opts.FlushBytes

	if flushBytes <= 0 {
		if sampleSize <= 0 {
			sampleSize = fallbackActionSize
		}

		flushBytes = opts.ChunkSize * sampleSize
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:        c.es,
		Index:         opts.Index,
		NumWorkers:    opts.NumWorkers,
		FlushBytes:    flushBytes,
		FlushInterval: opts.FlushInterval,
		Timeout:       opts.Timeout,
		Refresh:       opts.RefreshPolicy,
		OnError: func(_ context.Context, err error) {
			metrics.IncrementErrorCount()

			// Send this async error to the error channel.
			asyncErrorHandler(
				ErrorCatalog.
					MustGet(ErrIndexerError).
					NewFailedToError(
						customerror.WithError(err),
						customerror.WithTag("esutil.NewBulkIndexer"),
					),
			)
		},
	})
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToCreateBulkIndexer).
			NewFailedToError(customerror.WithError(err))
	}

	return bi, nil
}
