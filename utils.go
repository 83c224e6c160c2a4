package esload

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/thalesfsp/configurer/util"
	"github.com/thalesfsp/customerror"
)

//////
// Options process.
//////

// process applies default tags and validates the given struct.
func process(v any) error {
	return util.Process(v)
}

//////
// Index configuration process.
//////

// ReadIndexConfig reads the index configuration file (settings/mappings) and
// validates that it is well-formed JSON. The body is passed through to the
// Create Index API unmodified.
func ReadIndexConfig(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToReadIndexConfig).
			NewFailedToError(customerror.WithError(err))
	}

	if !json.Valid(data) {
		return nil, ErrorCatalog.
			MustGet(ErrInvalidIndexConfig).
			NewInvalidError(customerror.WithField("path", path))
	}

	return json.RawMessage(data), nil
}

//////
// Response process.
//////

// checkResponse checks an Elasticsearch API response for errors, decoding the
// error envelope when possible.
func checkResponse(res *esapi.Response) error {
	if !res.IsError() {
		return nil
	}

	body, _ := io.ReadAll(res.Body)

	var errResp ErrorResponse

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		return fmt.Errorf(
			"elasticsearch error [%s]: %s: %s",
			res.Status(),
			errResp.Error.Type,
			errResp.Error.Reason,
		)
	}

	return fmt.Errorf("elasticsearch error [%s]: %s", res.Status(), string(body))
}
