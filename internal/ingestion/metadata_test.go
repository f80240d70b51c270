package ingestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	meta := NewMetadata("hello", "cv.txt")
	assert.Equal(t, "cv.txt", meta.Source)
	assert.Equal(t, 5, meta.Chars)
	assert.Equal(t, 1, meta.Lines)
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		meta.Hash)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("one"))
	assert.Equal(t, 3, countLines("a\nb\nc"))
}

func TestMetadataToJSON(t *testing.T) {
	meta := NewMetadata("hello", "cv.txt")
	data, err := meta.ToJSON()
	require.NoError(t, err)

	var decoded Metadata
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Equal(t, meta.Chars, decoded.Chars)
}
