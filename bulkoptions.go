package esload

import (
	"time"

	"github.com/thalesfsp/customerror"
)

//////
// Const, vars, and types.
//////

// RefreshPolicy defines the refresh policy for the bulk load.
type RefreshPolicy = string

const (
	// RefreshPolicyFalse is the engine default, no refresh is forced after
	// an operation.
	RefreshPolicyFalse RefreshPolicy = "false"

	// RefreshPolicyImmediate forces an immediate refresh after an operation.
	RefreshPolicyImmediate RefreshPolicy = "immediate"

	// RefreshPolicyWaitFor blocks each request until the indexed documents
	// are visible to searches.
	RefreshPolicyWaitFor RefreshPolicy = "wait_for"
)

// Defaults tuned for "always complete, never mind latency" loads.
const (
	DefaultChunkSize  = 10000
	DefaultNumWorkers = 4
	DefaultTimeout    = 600 * time.Second
)

// BulkOptions defines the options for a bulk load.
//
// NOTE: Use NewBulkOptions() to create a new BulkOptions struct!
//
//nolint:lll
type BulkOptions struct {
	// ChunkSize is the number of actions grouped per bulk request. The
	// indexer flushes by bytes, so the chunk size is converted to a byte
	// budget using the size of the first action body.
	ChunkSize  int `default:"10000" json:"chunkSize"  validate:"omitempty,gt=0"`
	NumWorkers int `default:"4"     json:"numWorkers" validate:"omitempty,gt=0"`

	// Internals related.
	FlushBytes    int           `json:"flushBytes"     validate:"omitempty,gt=0"`
	FlushInterval time.Duration `default:"30s"         json:"flushInterval" validate:"omitempty,gt=0"`
	Index         string        `json:"index"          validate:"required"`
	RefreshPolicy RefreshPolicy `default:"wait_for"    json:"refreshPolicy" validate:"omitempty,oneof=false immediate wait_for"`
	Timeout       time.Duration `default:"600s"        json:"timeout"       validate:"omitempty,gt=0"`

	//////
	// Dynamic options, they are optional.
	//////

	// DocumentIDFunc overrides in the evaluation time the document ID.
	DocumentIDFunc func(action *Action) string `json:"-"`

	// IndexNameFunc determines in the evaluation time the index name.
	IndexNameFunc func(indexName string) string `json:"-"`
}

//////
// Factory.
//////

// NewBulkOptions creates bulk load options for the given index. Zero values
// for numWorkers and chunkSize fall back to the defaults (4 and 10000), and
// an empty refresh policy falls back to wait_for.
func NewBulkOptions(
	// Index name.
	indexName string,

	// Worker pool size.
	numWorkers int,

	// Number of actions grouped per request.
	chunkSize int,

	// Refresh policy.
	refreshPolicy RefreshPolicy,
) (*BulkOptions, error) {
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers
	}

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if refreshPolicy == "" {
		refreshPolicy = RefreshPolicyWaitFor
	}

	bO := &BulkOptions{
		Index:         indexName,
		ChunkSize:     chunkSize,
		NumWorkers:    numWorkers,
		RefreshPolicy: refreshPolicy,

		FlushBytes:    0,
		FlushInterval: 30 * time.Second,
		Timeout:       DefaultTimeout,
	}

	if err := process(bO); err != nil {
		return nil, customerror.NewInvalidError("bulk options", customerror.WithError(err))
	}

	return bO, nil
}
