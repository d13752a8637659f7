package config

const (
	defaultFlickrBaseURL        = "https://api.flickr.com/services/rest/"
	defaultFlickrRequestTimeout = 30
	defaultFlickrPageSize       = 500
	defaultRepointLockTimeout   = 30
	defaultLogDir               = "~/.local/share/photoaudit/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Flickr: Flickr{
			BaseURL:        defaultFlickrBaseURL,
			RequestTimeout: defaultFlickrRequestTimeout,
			PageSize:       defaultFlickrPageSize,
		},
		Audit: Audit{
			DeepScan: true,
		},
		Repoint: Repoint{
			LockTimeout: defaultRepointLockTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			LogDir: defaultLogDir,
		},
	}
}
