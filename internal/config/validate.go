package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateFlickr(); err != nil {
		return err
	}
	return c.validateRepoint()
}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/photoaudit/config.toml"
		}
		return fmt.Errorf("catalog.path is required. Set PHOTOAUDIT_CATALOG or edit %s (create with 'photoaudit config init')", defaultPath)
	}
	if !strings.HasSuffix(strings.ToLower(c.Catalog.Path), ".lrcat") {
		return fmt.Errorf("catalog.path %q does not look like a Lightroom catalog (.lrcat)", c.Catalog.Path)
	}
	return nil
}

func (c *Config) validateFlickr() error {
	if c.Flickr.APIKey == "" {
		return errors.New("flickr.api_key is required. Set FLICKR_API_KEY env var or add it to the config file")
	}
	if c.Flickr.UserID == "" {
		return errors.New("flickr.user_id must be set to the account NSID being audited")
	}
	if c.Flickr.PageSize > 500 {
		return errors.New("flickr.page_size must not exceed 500 (API maximum)")
	}
	if c.Flickr.RequestTimeout <= 0 {
		return errors.New("flickr.request_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateRepoint() error {
	if c.Repoint.LockTimeout <= 0 {
		return errors.New("repoint.lock_timeout must be positive (seconds)")
	}
	return nil
}
