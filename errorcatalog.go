package esload

import (
	"github.com/thalesfsp/customerror"
	"github.com/thalesfsp/esload/internal/shared"
)

//////
// Const, vars, types.
//////

const (
	ErrFailedToAddActionToBulkIndexer = "ERR_FAILED_TO_ADD_ACTION_TO_BULK_INDEXER" // FailedTo.
	ErrFailedToCountActions           = "ERR_FAILED_TO_COUNT_ACTIONS"              // FailedTo.
	ErrFailedToCountDocuments         = "ERR_FAILED_TO_COUNT_DOCUMENTS"            // FailedTo.
	ErrFailedToCreateBulkIndexer      = "ERR_FAILED_TO_CREATE_BULK_INDEXER"        // FailedTo.
	ErrFailedToCreateClient           = "ERR_FAILED_TO_CREATE_CLIENT"              // FailedTo.
	ErrFailedToCreateIndex            = "ERR_FAILED_TO_CREATE_INDEX"               // FailedTo.
	ErrFailedToDeleteIndex            = "ERR_FAILED_TO_DELETE_INDEX"               // FailedTo.
	ErrFailedToIndexDocument          = "ERR_FAILED_TO_INDEX_DOCUMENT"             // FailedTo.
	ErrFailedToParseAction            = "ERR_FAILED_TO_PARSE_ACTION"               // FailedTo.
	ErrFailedToPing                   = "ERR_FAILED_TO_PING"                       // FailedTo.
	ErrFailedToReadActions            = "ERR_FAILED_TO_READ_ACTIONS"               // FailedTo.
	ErrFailedToReadIndexConfig        = "ERR_FAILED_TO_READ_INDEX_CONFIG"          // FailedTo.
	ErrIndexerError                   = "ERR_INDEXER_ERROR"                        // New.
	ErrInvalidBulkOptions             = "ERR_INVALID_BULK_OPTIONS"                 // Invalid.
	ErrInvalidIndexConfig             = "ERR_INVALID_INDEX_CONFIG"                 // Invalid.
)

// ErrorCatalog is the error catalog for the CLI.
var ErrorCatalog = customerror.
	MustNewCatalog(shared.Name).
	MustSet(ErrFailedToAddActionToBulkIndexer, "add action to bulk indexer").
	MustSet(ErrFailedToCountActions, "count actions").
	MustSet(ErrFailedToCountDocuments, "count documents").
	MustSet(ErrFailedToCreateBulkIndexer, "create bulk indexer").
	MustSet(ErrFailedToCreateClient, "create client").
	MustSet(ErrFailedToCreateIndex, "create index").
	MustSet(ErrFailedToDeleteIndex, "delete index").
	MustSet(ErrFailedToIndexDocument, "index document").
	MustSet(ErrFailedToParseAction, "parse action").
	MustSet(ErrFailedToPing, "ping").
	MustSet(ErrFailedToReadActions, "read actions").
	MustSet(ErrFailedToReadIndexConfig, "read index configuration").
	MustSet(ErrIndexerError, "indexer error").
	MustSet(ErrInvalidBulkOptions, "bulk options").
	MustSet(ErrInvalidIndexConfig, "index configuration")

//////
// Exported functionalities.
//////

// MustGet returns a custom error from the error catalog.
func MustGet(errorCode string, opts ...customerror.Option) *customerror.CustomError {
	return ErrorCatalog.MustGet(errorCode, opts...)
}
