package agent

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlob_RoundTrip(t *testing.T) {
	raw := []byte(`{"turns":[{"role":"user","content":"add /health"}]}`)

	compressed, err := CompressBlob(raw)
	require.NoError(t, err)
	assert.NotEqual(t, raw, compressed)

	back, err := DecompressBlob(compressed)
	require.NoError(t, err)
	assert.Equal(t, raw, back)
}

func TestDecompressBlob_RejectsGarbage(t *testing.T) {
	_, err := DecompressBlob([]byte("not gzip"))
	assert.Error(t, err)
}

func TestDecompressBlob_EnforcesSizeBound(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	chunk := bytes.Repeat([]byte("a"), 1<<20)
	for i := 0; i < 9; i++ {
		_, err := zw.Write(chunk)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	_, err := DecompressBlob(buf.Bytes())
	assert.ErrorContains(t, err, "exceeds")
}
