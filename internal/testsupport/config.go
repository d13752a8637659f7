package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"photoaudit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp directory per test.
// The catalog path points inside the temp directory but the file is not
// created; use CreateCatalog for that.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(base, "Catalog.lrcat")
	cfg.Flickr.APIKey = "test-key"
	cfg.Flickr.APISecret = "test-secret"
	cfg.Flickr.UserID = "12345678@N00"
	cfg.Logging.LogDir = filepath.Join(base, "logs")
	if err := os.MkdirAll(cfg.Logging.LogDir, 0o755); err != nil {
		t.Fatalf("create log dir: %v", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDeepScan toggles the deep scan default on the test config.
func WithDeepScan(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Audit.DeepScan = enabled
	}
}

// WithFlickrBaseURL points the Flickr client at a test server.
func WithFlickrBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Flickr.BaseURL = baseURL
	}
}
