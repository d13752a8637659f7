package flickr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"photoaudit/internal/config"
	"photoaudit/internal/logging"
)

// HTTPDoer describes the HTTP client used by the Flickr service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Flickr REST endpoint for one account.
type Client struct {
	baseURL  string
	apiKey   string
	userID   string
	pageSize int
	client   HTTPDoer
	logger   *slog.Logger
}

// NewClient constructs a Flickr client from configuration. A nil doer
// falls back to a timeout-bounded http.Client.
func NewClient(cfg *config.Config, doer HTTPDoer, logger *slog.Logger) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: time.Duration(cfg.Flickr.RequestTimeout) * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimSpace(cfg.Flickr.BaseURL),
		apiKey:   cfg.Flickr.APIKey,
		userID:   cfg.Flickr.UserID,
		pageSize: cfg.Flickr.PageSize,
		client:   doer,
		logger:   logging.NewComponentLogger(logger, "flickr"),
	}
}

type wirePhoto struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	DateUpload     string `json:"dateupload"`
	OriginalFormat string `json:"originalformat"`
}

type photosEnvelope struct {
	Photos struct {
		Page  int         `json:"page"`
		Pages int         `json:"pages"`
		Photo []wirePhoto `json:"photo"`
	} `json:"photos"`
	Stat    string `json:"stat"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AllPhotos pages through flickr.people.getPhotos and returns every photo
// reachable under the configured account.
func (c *Client) AllPhotos(ctx context.Context) ([]Photo, error) {
	var photos []Photo
	page := 1
	for {
		envelope, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, wire := range envelope.Photos.Photo {
			photos = append(photos, wire.toPhoto())
		}
		c.logger.Debug("fetched photo page",
			logging.Int("page", page),
			logging.Int("pages", envelope.Photos.Pages),
			logging.Int("photos", len(envelope.Photos.Photo)),
		)
		if page >= envelope.Photos.Pages || len(envelope.Photos.Photo) == 0 {
			return photos, nil
		}
		page++
	}
}

// Ping issues a flickr.test.echo call to verify the endpoint and API key.
func (c *Client) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("method", "flickr.test.echo")
	_, err := c.call(ctx, query)
	return err
}

func (c *Client) fetchPage(ctx context.Context, page int) (*photosEnvelope, error) {
	query := url.Values{}
	query.Set("method", "flickr.people.getPhotos")
	query.Set("user_id", c.userID)
	query.Set("extras", "date_upload,original_format")
	query.Set("per_page", strconv.Itoa(c.pageSize))
	query.Set("page", strconv.Itoa(page))
	return c.call(ctx, query)
}

func (c *Client) call(ctx context.Context, query url.Values) (*photosEnvelope, error) {
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")
	query.Set("nojsoncallback", "1")

	endpoint := c.baseURL + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build flickr request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call flickr api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flickr api returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("read flickr response: %w", err)
	}

	var envelope photosEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode flickr response: %w", err)
	}
	if envelope.Stat != "ok" {
		return nil, fmt.Errorf("flickr api error %d: %s", envelope.Code, envelope.Message)
	}
	return &envelope, nil
}

func (w wirePhoto) toPhoto() Photo {
	photo := Photo{
		ID:       w.ID,
		Title:    w.Title,
		FileName: synthesizeFileName(w.Title, w.OriginalFormat),
	}
	if seconds, err := strconv.ParseInt(strings.TrimSpace(w.DateUpload), 10, 64); err == nil && seconds > 0 {
		photo.Uploaded = time.Unix(seconds, 0).UTC()
	}
	return photo
}
