package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotCatalog indicates the file opened is not a Lightroom catalog.
var ErrNotCatalog = errors.New("not a lightroom catalog")

// Store provides access to one Lightroom catalog database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to an existing Lightroom catalog and verifies its shape.
// The catalog is never created or migrated; it belongs to Lightroom.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	// No WAL pragma here: the journal mode is Lightroom's to manage.
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply busy_timeout pragma: %w", err)
	}

	store := &Store{db: db, path: path}
	if err := store.verifySchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the catalog file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) verifySchema(ctx context.Context) error {
	required := []string{"Adobe_images", "AgLibraryFile", "AgRemotePhoto", "Adobe_AdditionalMetadata"}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(required)), ",")
	args := make([]any, len(required))
	for i, name := range required {
		args[i] = name
	}

	var count int
	query := "SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name IN (" + placeholders + ")"
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("inspect catalog schema: %w", err)
	}
	if count != len(required) {
		return fmt.Errorf("%w: %s is missing expected Lightroom tables", ErrNotCatalog, s.path)
	}
	return nil
}
