package catalog

import (
	"time"

	"photoaudit/internal/xmp"
)

// Photo is a read-only snapshot of one catalog image published to Flickr.
// The audit engine never mutates it; only Repoint touches the underlying
// record.
type Photo struct {
	// ID is Adobe_images.id_local, the catalog-internal integer key.
	ID int64
	// GlobalID is Adobe_images.id_global, a UUID stable across catalog
	// rewrites.
	GlobalID string
	// RemoteID is the Flickr photo ID currently stored for this image,
	// or empty when the image was never linked.
	RemoteID string
	// CaptureTime is the original capture timestamp, nil when the catalog
	// has none recorded.
	CaptureTime *time.Time
	// FileName is the base file name on disk (AgLibraryFile.idx_filename).
	FileName string
	// Sidecar is the parsed XMP tree, nil unless side-car loading was
	// requested and the blob decompressed and parsed cleanly.
	Sidecar *xmp.Node
}

// DocumentID returns the embedded XMP document identifier, or empty when
// the side-car is absent or lacks one.
func (p *Photo) DocumentID() string {
	return xmp.DocumentID(p.Sidecar)
}

// Set identifies a Flickr set (photoset) the catalog publishes to.
type Set struct {
	ID         string `json:"id"`
	PhotoCount int    `json:"photo_count"`
}
