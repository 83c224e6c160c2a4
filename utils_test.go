package esload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIndexConfig(t *testing.T) {
	got, err := ReadIndexConfig("testdata/index-config.json")

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestReadIndexConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"settings":`), 0o600))

	_, err := ReadIndexConfig(path)

	assert.Error(t, err)
}

func TestReadIndexConfig_MissingFile(t *testing.T) {
	_, err := ReadIndexConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}
