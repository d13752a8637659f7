package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	if err := c.normalizeFlickr(); err != nil {
		return err
	}
	c.normalizeRepoint()
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	if c.Catalog.Path == "" {
		if value, ok := os.LookupEnv("PHOTOAUDIT_CATALOG"); ok {
			c.Catalog.Path = strings.TrimSpace(value)
		}
	}
	if c.Catalog.Path == "" {
		return nil
	}
	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeFlickr() error {
	c.Flickr.APIKey = strings.TrimSpace(c.Flickr.APIKey)
	if c.Flickr.APIKey == "" {
		if value, ok := os.LookupEnv("FLICKR_API_KEY"); ok {
			c.Flickr.APIKey = strings.TrimSpace(value)
		}
	}
	c.Flickr.APISecret = strings.TrimSpace(c.Flickr.APISecret)
	if c.Flickr.APISecret == "" {
		if value, ok := os.LookupEnv("FLICKR_API_SECRET"); ok {
			c.Flickr.APISecret = strings.TrimSpace(value)
		}
	}
	c.Flickr.UserID = strings.TrimSpace(c.Flickr.UserID)
	c.Flickr.BaseURL = strings.TrimSpace(c.Flickr.BaseURL)
	if c.Flickr.BaseURL == "" {
		c.Flickr.BaseURL = defaultFlickrBaseURL
	}
	if c.Flickr.RequestTimeout <= 0 {
		c.Flickr.RequestTimeout = defaultFlickrRequestTimeout
	}
	if c.Flickr.PageSize <= 0 {
		c.Flickr.PageSize = defaultFlickrPageSize
	}
	return nil
}

func (c *Config) normalizeRepoint() {
	if c.Repoint.LockTimeout <= 0 {
		c.Repoint.LockTimeout = defaultRepointLockTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.LogDir) == "" {
		c.Logging.LogDir = defaultLogDir
	}
	var err error
	if c.Logging.LogDir, err = expandPath(c.Logging.LogDir); err != nil {
		return fmt.Errorf("logging.log_dir: %w", err)
	}
	return nil
}
