package catalog_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"photoaudit/internal/catalog"
	"photoaudit/internal/config"
	"photoaudit/internal/testsupport"
)

func seedRepointCatalog(t *testing.T) (*config.Config, *catalog.Store) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	testsupport.CreateCatalog(t, cfg)
	testsupport.InsertPhoto(t, cfg, testsupport.PhotoSeed{ID: 1, FileName: "a.jpg", RemoteID: "100", SetID: "111"})
	return cfg, testsupport.MustOpenCatalog(t, cfg)
}

func remoteRow(t *testing.T, cfg *config.Config, photoID int64) (remoteID, url string, needsUpdating int) {
	t.Helper()

	db, err := sql.Open("sqlite", cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer db.Close()

	err = db.QueryRow(
		"SELECT remoteId, url, photoNeedsUpdating FROM AgRemotePhoto WHERE photo = ?", photoID).
		Scan(&remoteID, &url, &needsUpdating)
	if err != nil {
		t.Fatalf("read remote row: %v", err)
	}
	return remoteID, url, needsUpdating
}

func TestRepointRetargetsRemoteRow(t *testing.T) {
	cfg, store := seedRepointCatalog(t)

	if err := store.Repoint(context.Background(), "100", "900"); err != nil {
		t.Fatalf("Repoint failed: %v", err)
	}

	remoteID, url, needsUpdating := remoteRow(t, cfg, 1)
	if remoteID != "900" {
		t.Fatalf("expected remote id 900, got %q", remoteID)
	}
	if !strings.Contains(url, "/900/") || strings.Contains(url, "/100/") {
		t.Fatalf("url not rewritten: %q", url)
	}
	if needsUpdating != 1 {
		t.Fatal("expected photoNeedsUpdating flag set")
	}
}

func TestRepointSecondApplyIsCleanNoop(t *testing.T) {
	_, store := seedRepointCatalog(t)

	if err := store.Repoint(context.Background(), "100", "900"); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	err := store.Repoint(context.Background(), "100", "900")
	if !errors.Is(err, catalog.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestRepointUnknownOldID(t *testing.T) {
	_, store := seedRepointCatalog(t)

	err := store.Repoint(context.Background(), "404", "900")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepointRejectsDegenerateIDs(t *testing.T) {
	_, store := seedRepointCatalog(t)

	if err := store.Repoint(context.Background(), "100", "100"); err == nil {
		t.Fatal("expected error for identical ids")
	}
	if err := store.Repoint(context.Background(), " ", "900"); err == nil {
		t.Fatal("expected error for blank old id")
	}
	if err := store.Repoint(context.Background(), "100", ""); err == nil {
		t.Fatal("expected error for blank new id")
	}
}

func TestAcquireWriteLockBlocksSecondHolder(t *testing.T) {
	_, store := seedRepointCatalog(t)

	release, err := store.AcquireWriteLock(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("first lock failed: %v", err)
	}
	defer release()

	if _, err := store.AcquireWriteLock(context.Background(), 100*time.Millisecond); err == nil {
		t.Fatal("expected second lock attempt to fail while held")
	}

	release()
	release() // safe to call twice

	again, err := store.AcquireWriteLock(context.Background(), time.Second)
	if err != nil {
		t.Fatalf("relock after release failed: %v", err)
	}
	again()
}
