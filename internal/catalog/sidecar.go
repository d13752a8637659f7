package catalog

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// ErrSidecarTruncated indicates a side-car blob too short to carry the
// length prefix.
var ErrSidecarTruncated = errors.New("sidecar blob truncated")

// DecompressSidecar unpacks the Adobe_AdditionalMetadata.xmp blob: a
// 4-byte big-endian uncompressed length followed by a zlib stream. The
// declared length is advisory; Lightroom occasionally writes a stale value,
// so a mismatch does not fail the decode.
func DecompressSidecar(blob []byte) ([]byte, error) {
	if len(blob) < 4 {
		return nil, ErrSidecarTruncated
	}

	reader, err := zlib.NewReader(bytes.NewReader(blob[4:]))
	if err != nil {
		return nil, fmt.Errorf("open sidecar zlib stream: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompress sidecar: %w", err)
	}

	return data, nil
}
