package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates no published photo carries the given remote ID.
var ErrNotFound = errors.New("remote id not found in catalog")

// ErrAlreadyApplied indicates the repoint was applied by a previous run:
// the old remote ID is gone and the new one is already stored.
var ErrAlreadyApplied = errors.New("repoint already applied")

// Repoint retargets the stored Flickr ID of one published photo from oldID
// to newID, rewriting the publish URL to match and flagging the photo for
// republish. The whole update runs in one transaction and fails unless at
// least one row changed.
//
// Reapplying a pair that already succeeded returns ErrAlreadyApplied so
// callers can treat it as a no-op instead of a conflict.
func (s *Store) Repoint(ctx context.Context, oldID, newID string) error {
	oldID = strings.TrimSpace(oldID)
	newID = strings.TrimSpace(newID)
	if oldID == "" || newID == "" {
		return errors.New("repoint requires both old and new remote ids")
	}
	if oldID == newID {
		return fmt.Errorf("repoint %s: old and new remote ids are identical", oldID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin repoint tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var probe int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM AgRemotePhoto WHERE remoteId = ?", oldID).Scan(&probe)
	if errors.Is(err, sql.ErrNoRows) {
		var applied int
		if countErr := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM AgRemotePhoto WHERE remoteId = ?", newID).Scan(&applied); countErr != nil {
			return fmt.Errorf("check repoint target: %w", countErr)
		}
		if applied > 0 {
			return fmt.Errorf("repoint %s -> %s: %w", oldID, newID, ErrAlreadyApplied)
		}
		return fmt.Errorf("repoint %s: %w", oldID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("look up remote id %s: %w", oldID, err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE AgRemotePhoto
		SET remoteId = ?, url = REPLACE(url, ?, ?), photoNeedsUpdating = 1
		WHERE remoteId = ?`,
		newID, oldID, newID, oldID)
	if err != nil {
		return fmt.Errorf("update remote id %s: %w", oldID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repoint rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("repoint %s -> %s: no rows updated", oldID, newID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit repoint: %w", err)
	}
	return nil
}
