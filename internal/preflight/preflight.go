package preflight

import (
	"context"
	"log/slog"

	"photoaudit/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable readiness check for the given config.
// The Flickr API round-trip only runs once the cheaper local checks agree
// there is something to call with.
func RunAll(ctx context.Context, cfg *config.Config, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckCatalogAccess(cfg.Catalog.Path))

	if cfg.Logging.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Logging.LogDir))
	}

	credentials := CheckFlickrCredentials(cfg)
	results = append(results, credentials)
	if credentials.Passed {
		results = append(results, CheckFlickrAPI(ctx, cfg, logger))
	}

	return results
}

// AllPassed reports whether every check in the slice passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
