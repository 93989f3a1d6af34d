package agent

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// maxBlobSize bounds a decompressed session blob. Larger payloads indicate
// a runaway session and are refused rather than stored.
const maxBlobSize = 8 << 20 // 8 MiB

// CompressBlob gzips a raw session payload for storage.
func CompressBlob(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress session blob: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize session blob: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressBlob reverses CompressBlob, enforcing the size bound.
func DecompressBlob(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("invalid session blob: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, maxBlobSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress session blob: %w", err)
	}
	if len(raw) > maxBlobSize {
		return nil, fmt.Errorf("session blob exceeds %d bytes decompressed", maxBlobSize)
	}
	return raw, nil
}
