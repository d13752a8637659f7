package main

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"photoaudit/internal/testsupport"
)

func TestSetsCommandListsPublishedSets(t *testing.T) {
	env := setupCLITestEnv(t, nil)
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 1, FileName: "a.jpg", RemoteID: "100", SetID: "111"})
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 2, FileName: "b.jpg", RemoteID: "200", SetID: "111"})
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 3, FileName: "c.jpg", RemoteID: "300", SetID: "222"})

	out, _, err := runCLI(t, []string{"sets"}, env.configPath)
	if err != nil {
		t.Fatalf("sets: %v", err)
	}
	requireContains(t, out, "111")
	requireContains(t, out, "222")
	requireContains(t, out, "2 sets, 3 published photos")
}

func TestSetsCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t, nil)
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 1, FileName: "a.jpg", RemoteID: "100", SetID: "111"})

	out, _, err := runCLI(t, []string{"sets", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sets --json: %v", err)
	}
	requireContains(t, out, `"id": "111"`)
	requireContains(t, out, `"photo_count": 1`)
}

func TestAuditReportsLinkedAndMatches(t *testing.T) {
	env := setupCLITestEnv(t, []remoteSeed{
		{ID: "100", Title: "Kept", DateUpload: "1500000000"},
		{ID: "900", Title: "Survivor", DateUpload: "1600000000"},
	})
	// Still linked: stored remote ID resolves.
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{
		ID: 1, FileName: "kept.jpg", RemoteID: "100", SetID: "111",
	})
	// Stale link, but capture time matches the survivor's upload time.
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{
		ID: 2, FileName: "stale.jpg", CaptureTime: "2020-09-13T12:26:40", RemoteID: "555", SetID: "111",
	})
	// Orphan: nothing on the account matches.
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{
		ID: 3, FileName: "orphan.jpg", RemoteID: "666", SetID: "111",
	})

	out, _, err := runCLI(t, []string{"audit"}, env.configPath)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	requireContains(t, out, "Set 111")
	requireContains(t, out, "stale.jpg")
	requireContains(t, out, "900 (Survivor)")
	requireContains(t, out, "orphan.jpg")
}

func TestAuditBriefOmitsDetail(t *testing.T) {
	env := setupCLITestEnv(t, []remoteSeed{
		{ID: "900", Title: "Survivor", DateUpload: "1600000000"},
	})
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{
		ID: 1, FileName: "stale.jpg", CaptureTime: "2020-09-13T12:26:40", RemoteID: "555", SetID: "111",
	})

	out, _, err := runCLI(t, []string{"audit", "--brief"}, env.configPath)
	if err != nil {
		t.Fatalf("audit --brief: %v", err)
	}
	requireContains(t, out, "Set 111")
	if strings.Contains(out, "stale.jpg") {
		t.Fatalf("brief output must omit per-photo detail, got:\n%s", out)
	}
}

func TestAuditUnknownSet(t *testing.T) {
	env := setupCLITestEnv(t, nil)
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 1, FileName: "a.jpg", RemoteID: "100", SetID: "111"})

	_, _, err := runCLI(t, []string{"audit", "--set", "999"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown set")
	}
}

func TestAuditFixSinglesRepointsCatalog(t *testing.T) {
	env := setupCLITestEnv(t, []remoteSeed{
		{ID: "900", Title: "Survivor", DateUpload: "1600000000"},
	})
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{
		ID: 1, FileName: "stale.jpg", CaptureTime: "2020-09-13T12:26:40", RemoteID: "555", SetID: "111",
	})

	out, _, err := runCLI(t, []string{"audit", "--fix-singles"}, env.configPath)
	if err != nil {
		t.Fatalf("audit --fix-singles: %v", err)
	}
	requireContains(t, out, "1 applied")

	db, err := sql.Open("sqlite", env.cfg.Catalog.Path)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer db.Close()
	var remoteID string
	var needsUpdating int
	if err := db.QueryRow(
		"SELECT remoteId, photoNeedsUpdating FROM AgRemotePhoto WHERE photo = 1").
		Scan(&remoteID, &needsUpdating); err != nil {
		t.Fatalf("read remote row: %v", err)
	}
	if remoteID != "900" || needsUpdating != 1 {
		t.Fatalf("expected repoint to 900 with republish flag, got %q/%d", remoteID, needsUpdating)
	}

	// A second pass sees the photo as linked.
	out, _, err = runCLI(t, []string{"audit"}, env.configPath)
	if err != nil {
		t.Fatalf("second audit: %v", err)
	}
	requireContains(t, out, "Set 111")
}

func TestAuditWarnsAboutQuotedTitles(t *testing.T) {
	env := setupCLITestEnv(t, []remoteSeed{
		{ID: "100", Title: `My "Best" Shot`, DateUpload: "1500000000"},
	})
	testsupport.InsertPhoto(t, env.cfg, testsupport.PhotoSeed{ID: 1, FileName: "a.jpg", RemoteID: "100", SetID: "111"})

	out, _, err := runCLI(t, []string{"audit"}, env.configPath)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	requireContains(t, out, "double quotes")
	requireContains(t, out, `My "Best" Shot`)
}

func TestDoctorPasses(t *testing.T) {
	env := setupCLITestEnv(t, nil)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "All checks passed.")
}

func TestDoctorFailsWhenAPIKeyRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"stat":"fail","code":100,"message":"Invalid API Key"}`))
	}))
	defer srv.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithFlickrBaseURL(srv.URL))
	testsupport.CreateCatalog(t, cfg)
	configPath := writeTestConfig(t, cfg)

	out, _, err := runCLI(t, []string{"doctor"}, configPath)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, out, "[ERROR]")
}
