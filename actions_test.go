package esload

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	got, err := ParseAction([]byte(`{"_index":"ignored","_id":"42","title":"hello","views":7}`))

	require.NoError(t, err)

	assert.Equal(t, "42", got.ID)
	assert.Equal(t, OpIndex, got.Op)
	assert.Empty(t, got.Routing)

	var body map[string]any

	require.NoError(t, json.Unmarshal(got.Body, &body))

	// _index belongs to the loader, never to the body.
	assert.NotContains(t, body, "_index")
	assert.Equal(t, "hello", body["title"])
	assert.Equal(t, float64(7), body["views"])
}

func TestParseAction_NumericID(t *testing.T) {
	got, err := ParseAction([]byte(`{"_id":42,"title":"hello"}`))

	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
}

func TestParseAction_OpTypeAndRouting(t *testing.T) {
	got, err := ParseAction([]byte(`{"_op_type":"create","_routing":"user-1","title":"hello"}`))

	require.NoError(t, err)

	assert.Equal(t, OpCreate, got.Op)
	assert.Equal(t, "user-1", got.Routing)

	var body map[string]any

	require.NoError(t, json.Unmarshal(got.Body, &body))

	assert.NotContains(t, body, "_op_type")
	assert.NotContains(t, body, "_routing")
}

func TestParseAction_Source(t *testing.T) {
	got, err := ParseAction([]byte(`{"_id":"1","_source":{"title":"hello"}}`))

	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"hello"}`, string(got.Body))
}

func TestParseAction_Delete(t *testing.T) {
	got, err := ParseAction([]byte(`{"_op_type":"delete","_id":"1"}`))

	require.NoError(t, err)

	assert.Equal(t, OpDelete, got.Op)
	assert.Equal(t, "1", got.ID)
	assert.Nil(t, got.Body)
}

func TestParseAction_InvalidJSON(t *testing.T) {
	_, err := ParseAction([]byte(`{not json`))

	assert.Error(t, err)
}

func TestActionScanner(t *testing.T) {
	path := writeActions(t,
		`{"_id":"1","title":"first"}`,
		`{"_id":"2","title":"second"}`,
		`{"_id":"3","title":"third"}`,
	)

	src, err := OpenActions(path)

	require.NoError(t, err)

	defer src.Close()

	var ids []string

	for src.Scan() {
		ids = append(ids, src.Action().ID)
	}

	require.NoError(t, src.Err())

	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, 3, src.Line())
}

func TestActionScanner_MalformedLineIsFatal(t *testing.T) {
	path := writeActions(t,
		`{"_id":"1","title":"first"}`,
		`not json`,
		`{"_id":"3","title":"third"}`,
	)

	src, err := OpenActions(path)

	require.NoError(t, err)

	defer src.Close()

	count := 0

	for src.Scan() {
		count++
	}

	assert.Equal(t, 1, count)
	assert.Error(t, src.Err())

	// The scanner stays stopped after the first error.
	assert.False(t, src.Scan())
}

func TestOpenActions_MissingFile(t *testing.T) {
	_, err := OpenActions(filepath.Join(t.TempDir(), "missing.ndjson"))

	assert.Error(t, err)
}

func TestCountActions(t *testing.T) {
	path := writeActions(t,
		`{"_id":"1"}`,
		`{"_id":"2"}`,
		`{"_id":"3"}`,
		`{"_id":"4"}`,
	)

	total, err := CountActions(path)

	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestCountActions_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.ndjson")

	err := os.WriteFile(path, []byte(`{"_id":"1"}`+"\n"+`{"_id":"2"}`), 0o600)

	require.NoError(t, err)

	total, err := CountActions(path)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestCountActions_MissingFile(t *testing.T) {
	_, err := CountActions(filepath.Join(t.TempDir(), "missing.ndjson"))

	assert.Error(t, err)
}

// writeActions writes one action per line to a temp file and returns its path.
func writeActions(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "actions.ndjson")

	var data []byte

	for _, line := range lines {
		data = append(data, line...)
		data = append(data, '\n')
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}
