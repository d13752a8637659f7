package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"photoaudit/internal/config"
	"photoaudit/internal/testsupport"
)

// remoteSeed describes one photo the fake Flickr endpoint serves.
type remoteSeed struct {
	ID             string
	Title          string
	DateUpload     string
	OriginalFormat string
}

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	server     *httptest.Server
}

func setupCLITestEnv(t *testing.T, remotes []remoteSeed) *cliTestEnv {
	t.Helper()

	server := newFlickrServer(t, remotes)
	t.Cleanup(server.Close)

	cfg := testsupport.NewConfig(t, testsupport.WithFlickrBaseURL(server.URL))
	testsupport.CreateCatalog(t, cfg)

	configPath := writeTestConfig(t, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath, server: server}
}

// newFlickrServer serves flickr.test.echo and a single-page
// flickr.people.getPhotos response built from the seeds.
func newFlickrServer(t *testing.T, remotes []remoteSeed) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("method") {
		case "flickr.test.echo":
			_, _ = w.Write([]byte(`{"stat":"ok"}`))
		case "flickr.people.getPhotos":
			type wirePhoto struct {
				ID             string `json:"id"`
				Title          string `json:"title"`
				DateUpload     string `json:"dateupload"`
				OriginalFormat string `json:"originalformat"`
			}
			photos := make([]wirePhoto, 0, len(remotes))
			for _, seed := range remotes {
				photos = append(photos, wirePhoto{
					ID:             seed.ID,
					Title:          seed.Title,
					DateUpload:     seed.DateUpload,
					OriginalFormat: seed.OriginalFormat,
				})
			}
			envelope := map[string]any{
				"stat": "ok",
				"photos": map[string]any{
					"page":  1,
					"pages": 1,
					"photo": photos,
				},
			}
			if err := json.NewEncoder(w).Encode(envelope); err != nil {
				t.Errorf("encode photos response: %v", err)
			}
		default:
			_, _ = w.Write([]byte(`{"stat":"fail","code":112,"message":"Method not found"}`))
		}
	}))
}

func writeTestConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := cfg.Catalog.Path + ".config.toml"
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
