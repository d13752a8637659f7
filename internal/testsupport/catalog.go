package testsupport

import (
	"bytes"
	"compress/zlib"
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"

	"photoaudit/internal/catalog"
	"photoaudit/internal/config"
)

// catalogSchema is the subset of the Lightroom schema the audit touches.
const catalogSchema = `
CREATE TABLE Adobe_images (
	id_local INTEGER PRIMARY KEY,
	id_global TEXT NOT NULL,
	captureTime TEXT,
	rootFile INTEGER NOT NULL
);
CREATE TABLE AgLibraryFile (
	id_local INTEGER PRIMARY KEY,
	idx_filename TEXT NOT NULL
);
CREATE TABLE AgRemotePhoto (
	id_local INTEGER PRIMARY KEY,
	photo INTEGER NOT NULL,
	remoteId TEXT,
	url TEXT NOT NULL,
	photoNeedsUpdating INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE Adobe_AdditionalMetadata (
	id_local INTEGER PRIMARY KEY,
	image INTEGER NOT NULL,
	xmp BLOB
);
`

// PhotoSeed describes one synthetic published photo.
type PhotoSeed struct {
	ID          int64
	GlobalID    string
	FileName    string
	CaptureTime string // Lightroom shape, e.g. "2020-09-13T12:26:40"
	RemoteID    string
	SetID       string
	DocumentID  string // when set, a compressed side-car carrying it is written
	RawSidecar  []byte // overrides DocumentID with a raw (pre-compression) blob
}

// CreateCatalog writes an empty synthetic Lightroom catalog at the config's
// catalog path.
func CreateCatalog(t testing.TB, cfg *config.Config) {
	t.Helper()

	db := openSeedDB(t, cfg)
	if _, err := db.Exec(catalogSchema); err != nil {
		t.Fatalf("create catalog schema: %v", err)
	}
}

// InsertPhoto adds one published photo to the synthetic catalog.
func InsertPhoto(t testing.TB, cfg *config.Config, seed PhotoSeed) {
	t.Helper()

	if seed.GlobalID == "" {
		seed.GlobalID = fmt.Sprintf("global-%d", seed.ID)
	}
	if seed.SetID == "" {
		seed.SetID = "72157600000000001"
	}

	db := openSeedDB(t, cfg)

	var capture any
	if seed.CaptureTime != "" {
		capture = seed.CaptureTime
	}
	if _, err := db.Exec(
		"INSERT INTO Adobe_images (id_local, id_global, captureTime, rootFile) VALUES (?, ?, ?, ?)",
		seed.ID, seed.GlobalID, capture, seed.ID); err != nil {
		t.Fatalf("insert image: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO AgLibraryFile (id_local, idx_filename) VALUES (?, ?)",
		seed.ID, seed.FileName); err != nil {
		t.Fatalf("insert library file: %v", err)
	}

	remoteSegment := seed.RemoteID
	if remoteSegment == "" {
		remoteSegment = fmt.Sprintf("pending-%d", seed.ID)
	}
	url := fmt.Sprintf("https://www.flickr.com/photos/tester/%s/in/set-%s", remoteSegment, seed.SetID)
	var remoteID any
	if seed.RemoteID != "" {
		remoteID = seed.RemoteID
	}
	if _, err := db.Exec(
		"INSERT INTO AgRemotePhoto (id_local, photo, remoteId, url) VALUES (?, ?, ?, ?)",
		seed.ID, seed.ID, remoteID, url); err != nil {
		t.Fatalf("insert remote photo: %v", err)
	}

	blob := seed.RawSidecar
	if blob == nil && seed.DocumentID != "" {
		blob = []byte(fmt.Sprintf(`<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:xmpMM="http://ns.adobe.com/xap/1.0/mm/" xmpMM:DocumentID=%q/>
 </rdf:RDF>
</x:xmpmeta>`, seed.DocumentID))
	}
	if blob != nil {
		if _, err := db.Exec(
			"INSERT INTO Adobe_AdditionalMetadata (id_local, image, xmp) VALUES (?, ?, ?)",
			seed.ID, seed.ID, CompressSidecar(blob)); err != nil {
			t.Fatalf("insert metadata: %v", err)
		}
	}
}

// CompressSidecar packs raw XMP into the catalog blob format: a 4-byte
// big-endian uncompressed length followed by a zlib stream.
func CompressSidecar(raw []byte) []byte {
	var buf bytes.Buffer
	prefix := make([]byte, 4)
	binary.BigEndian.PutUint32(prefix, uint32(len(raw)))
	buf.Write(prefix)

	writer := zlib.NewWriter(&buf)
	_, _ = writer.Write(raw)
	_ = writer.Close()
	return buf.Bytes()
}

// MustOpenCatalog opens the synthetic catalog through the production Store
// and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(context.Background(), cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func openSeedDB(t testing.TB, cfg *config.Config) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
