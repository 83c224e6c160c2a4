package esload

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thalesfsp/customerror"
)

//////
// Const, vars, and types.
//////

// Operations accepted by the Bulk API.
const (
	OpCreate = "create"
	OpDelete = "delete"
	OpIndex  = "index"
	OpUpdate = "update"
)

// maxLineBytes caps the size of a single action line.
const maxLineBytes = 64 * 1024 * 1024

// Meta fields recognized on an action line. Everything else is document body,
// unless "_source" carries the body explicitly.
const (
	metaID      = "_id"
	metaIndex   = "_index"
	metaOpType  = "_op_type"
	metaRouting = "_routing"
	metaSource  = "_source"
)

// Action is a single document operation parsed from one NDJSON line. Any
// "_index" present on the line is discarded: the destination index is always
// set by the loader.
type Action struct {
	// ID is the document ID. Empty means engine-generated.
	ID string

	// Op is one of index, create, update, or delete. Defaults to index.
	Op string

	// Routing is the optional routing value.
	Routing string

	// Body is the document body. Nil for delete operations.
	Body json.RawMessage
}

//////
// Exported functionalities.
//////

// ParseAction parses one NDJSON line into an Action. Meta fields (_id,
// _op_type, _routing, _source) are extracted; the remaining fields form the
// document body when no _source is given.
func ParseAction(line []byte) (*Action, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToParseAction).
			NewFailedToError(customerror.WithError(err))
	}

	action := &Action{Op: OpIndex}

	if raw, ok := fields[metaID]; ok {
		var id any

		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, ErrorCatalog.
				MustGet(ErrFailedToParseAction).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithField("field", metaID),
				)
		}

		action.ID = fmt.Sprintf("%v", id)

		delete(fields, metaID)
	}

	if raw, ok := fields[metaOpType]; ok {
		if err := json.Unmarshal(raw, &action.Op); err != nil {
			return nil, ErrorCatalog.
				MustGet(ErrFailedToParseAction).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithField("field", metaOpType),
				)
		}

		delete(fields, metaOpType)
	}

	if raw, ok := fields[metaRouting]; ok {
		if err := json.Unmarshal(raw, &action.Routing); err != nil {
			return nil, ErrorCatalog.
				MustGet(ErrFailedToParseAction).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithField("field", metaRouting),
				)
		}

		delete(fields, metaRouting)
	}

	// The destination index is owned by the loader.
	delete(fields, metaIndex)

	if action.Op == OpDelete {
		return action, nil
	}

	if raw, ok := fields[metaSource]; ok {
		action.Body = raw

		return action, nil
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToParseAction).
			NewFailedToError(customerror.WithError(err))
	}

	action.Body = body

	return action, nil
}

// ActionScanner lazily streams actions from an NDJSON file, one line at a
// time. It is single-pass and forward-only; re-reading requires reopening the
// file with OpenActions.
type ActionScanner struct {
	f      *os.File
	sc     *bufio.Scanner
	action *Action
	line   int
	err    error
}

// Scan advances to the next action. It returns false at EOF or on the first
// error; Err distinguishes the two.
func (s *ActionScanner) Scan() bool {
	if s.err != nil {
		return false
	}

	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = ErrorCatalog.
				MustGet(ErrFailedToReadActions).
				NewFailedToError(
					customerror.WithError(err),
					customerror.WithField("line", s.line+1),
				)
		}

		return false
	}

	s.line++

	action, err := ParseAction(s.sc.Bytes())
	if err != nil {
		s.err = ErrorCatalog.
			MustGet(ErrFailedToReadActions).
			NewFailedToError(
				customerror.WithError(err),
				customerror.WithField("line", s.line),
			)

		return false
	}

	s.action = action

	return true
}

// Action returns the action produced by the last successful Scan.
func (s *ActionScanner) Action() *Action {
	return s.action
}

// Line returns the number of the last line read, starting at 1.
func (s *ActionScanner) Line() int {
	return s.line
}

// Err returns the first error encountered while scanning, if any.
func (s *ActionScanner) Err() error {
	return s.err
}

// Close closes the underlying file.
func (s *ActionScanner) Close() error {
	return s.f.Close()
}

// CountActions counts the newline-terminated lines of an actions file. It is
// an independent pass over the file, used for progress reporting before the
// streaming pass starts.
func CountActions(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, ErrorCatalog.
			MustGet(ErrFailedToCountActions).
			NewFailedToError(customerror.WithError(err))
	}

	defer f.Close()

	sc := bufio.NewScanner(f)

	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	total := 0

	for sc.Scan() {
		total++
	}

	if err := sc.Err(); err != nil {
		return 0, ErrorCatalog.
			MustGet(ErrFailedToCountActions).
			NewFailedToError(customerror.WithError(err))
	}

	return total, nil
}

//////
// Factory.
//////

// OpenActions opens an NDJSON actions file for lazy scanning.
func OpenActions(path string) (*ActionScanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrorCatalog.
			MustGet(ErrFailedToReadActions).
			NewFailedToError(customerror.WithError(err))
	}

	sc := bufio.NewScanner(f)

	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	return &ActionScanner{
		f:  f,
		sc: sc,
	}, nil
}
