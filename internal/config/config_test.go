package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"photoaudit/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := writeConfig(t, `
[catalog]
path = "~/Pictures/Catalog.lrcat"

[flickr]
api_key = "key-123"
user_id = "12345678@N00"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if want := filepath.Join(tempHome, "Pictures", "Catalog.lrcat"); cfg.Catalog.Path != want {
		t.Fatalf("unexpected catalog path: got %q want %q", cfg.Catalog.Path, want)
	}
	if cfg.Flickr.BaseURL != config.Default().Flickr.BaseURL {
		t.Fatalf("unexpected base url: %q", cfg.Flickr.BaseURL)
	}
	if cfg.Flickr.PageSize != 500 {
		t.Fatalf("unexpected page size: %d", cfg.Flickr.PageSize)
	}
	if !cfg.Audit.DeepScan {
		t.Fatal("expected deep scan enabled by default")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Logging.LogDir == "" || strings.HasPrefix(cfg.Logging.LogDir, "~") {
		t.Fatalf("expected expanded log dir, got %q", cfg.Logging.LogDir)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
}

func TestLoadUsesEnvCredentialFallbacks(t *testing.T) {
	t.Setenv("FLICKR_API_KEY", "env-key")
	t.Setenv("FLICKR_API_SECRET", "env-secret")

	path := writeConfig(t, `
[catalog]
path = "/photos/Catalog.lrcat"

[flickr]
user_id = "12345678@N00"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Flickr.APIKey != "env-key" {
		t.Fatalf("expected API key from env, got %q", cfg.Flickr.APIKey)
	}
	if cfg.Flickr.APISecret != "env-secret" {
		t.Fatalf("expected API secret from env, got %q", cfg.Flickr.APISecret)
	}
}

func TestLoadRejectsMissingCatalogPath(t *testing.T) {
	t.Setenv("PHOTOAUDIT_CATALOG", "")
	path := writeConfig(t, `
[flickr]
api_key = "key"
user_id = "12345678@N00"
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for missing catalog path")
	} else if !strings.Contains(err.Error(), "catalog.path") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsNonCatalogPath(t *testing.T) {
	path := writeConfig(t, `
[catalog]
path = "/photos/catalog.db"

[flickr]
api_key = "key"
user_id = "12345678@N00"
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for non-lrcat path")
	}
}

func TestLoadRejectsOversizedPage(t *testing.T) {
	path := writeConfig(t, `
[catalog]
path = "/photos/Catalog.lrcat"

[flickr]
api_key = "key"
user_id = "12345678@N00"
page_size = 600
`)

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for page_size above API maximum")
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[flickr]") {
		t.Fatal("sample config missing [flickr] section")
	}
}
