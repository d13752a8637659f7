package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"photoaudit/internal/xmp"
)

// captureTimeLayouts covers the timestamp shapes observed in
// Adobe_images.captureTime across catalog versions. All are read as UTC;
// the catalog stores no zone information.
var captureTimeLayouts = []string{
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Sets lists the Flickr sets this catalog publishes to, with the number of
// published photos per set.
func (s *Store) Sets(ctx context.Context) ([]Set, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT url FROM AgRemotePhoto WHERE url LIKE '%flickr.com%' AND url LIKE '%/in/set-%'`)
	if err != nil {
		return nil, fmt.Errorf("query remote photo urls: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scan remote photo url: %w", err)
		}
		if id := setIDFromURL(url); id != "" {
			counts[id]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate remote photo urls: %w", err)
	}

	sets := make([]Set, 0, len(counts))
	for id, count := range counts {
		sets = append(sets, Set{ID: id, PhotoCount: count})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })
	return sets, nil
}

// setIDFromURL pulls the photoset ID out of a Lightroom publish URL of the
// form https://www.flickr.com/photos/<user>/<photo>/in/set-<id>.
func setIDFromURL(url string) string {
	_, after, found := strings.Cut(url, "/in/set-")
	if !found {
		return ""
	}
	if slash := strings.IndexByte(after, '/'); slash >= 0 {
		after = after[:slash]
	}
	return strings.TrimSpace(after)
}

// Photos materializes the snapshot of every catalog photo published to the
// given Flickr set. When withSidecar is true the compressed XMP blob is
// loaded, decompressed, and parsed; blobs that fail either step degrade to
// a nil side-car rather than an error, matching the audit contract that
// malformed metadata means absence.
func (s *Store) Photos(ctx context.Context, setID string, withSidecar bool) ([]Photo, error) {
	xmpColumn := "NULL"
	if withSidecar {
		xmpColumn = "m.xmp"
	}
	query := fmt.Sprintf(`
		SELECT i.id_local, i.id_global, i.captureTime, f.idx_filename, r.remoteId, %s
		FROM Adobe_images i
		JOIN AgLibraryFile f ON i.rootFile = f.id_local
		JOIN AgRemotePhoto r ON i.id_local = r.photo
		LEFT JOIN Adobe_AdditionalMetadata m ON i.id_local = m.image
		WHERE r.url LIKE '%%flickr.com%%' AND r.url LIKE ?
		ORDER BY i.id_local`, xmpColumn)

	rows, err := s.db.QueryContext(ctx, query, "%/in/set-"+setID+"%")
	if err != nil {
		return nil, fmt.Errorf("query photos for set %s: %w", setID, err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var (
			photo       Photo
			captureTime sql.NullString
			remoteID    sql.NullString
			blob        []byte
		)
		if err := rows.Scan(&photo.ID, &photo.GlobalID, &captureTime, &photo.FileName, &remoteID, &blob); err != nil {
			return nil, fmt.Errorf("scan photo row: %w", err)
		}
		photo.RemoteID = strings.TrimSpace(remoteID.String)
		photo.CaptureTime = parseCaptureTime(captureTime)
		if withSidecar && len(blob) > 0 {
			photo.Sidecar = parseSidecarBlob(blob)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos for set %s: %w", setID, err)
	}
	return photos, nil
}

func parseCaptureTime(value sql.NullString) *time.Time {
	if !value.Valid {
		return nil
	}
	text := strings.TrimSpace(value.String)
	if text == "" {
		return nil
	}
	for _, layout := range captureTimeLayouts {
		if ts, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return &ts
		}
	}
	return nil
}

func parseSidecarBlob(blob []byte) *xmp.Node {
	data, err := DecompressSidecar(blob)
	if err != nil {
		return nil
	}
	node, err := xmp.Parse(data)
	if err != nil {
		return nil
	}
	return node
}
