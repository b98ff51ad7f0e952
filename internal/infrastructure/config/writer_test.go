package config

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_WritesSectionsInFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(DefaultConfig(), &buf))

	out := buf.String()
	assert.Contains(t, out, "[appearance]")
	assert.Contains(t, out, "dark_mode = true")
	assert.Contains(t, out, "home_url = 'https://danielprior.dev'")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("[database]")), bytes.Index(buf.Bytes(), []byte("[editor]")))

	var decoded Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *DefaultConfig(), decoded)
}

func TestEncode_NilConfig(t *testing.T) {
	assert.Error(t, Encode(nil, &bytes.Buffer{}))
}

func TestWriteConfig_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteConfig(DefaultConfig(), path))
	assert.FileExists(t, path)
}

func TestSchema_DescribesSections(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "mockbrowse configuration", doc["title"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	for _, section := range []string{"database", "logging", "appearance", "browser", "editor"} {
		assert.Contains(t, props, section)
	}
}
