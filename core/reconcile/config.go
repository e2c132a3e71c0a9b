package reconcile

import "strings"

// Config holds configuration for gallery reconciliation.
type Config struct {
	// Enabled is the master switch for all gallery features below.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// PassURL allows entries to reference remote URLs that are fetched on import.
	PassURL bool `mapstructure:"pass_url" default:"false"`
	// PassPath allows entries to reference files in the import directory.
	PassPath bool `mapstructure:"pass_path" default:"false"`
	// SkipUnchanged reuses stored files when the submitted bytes are identical.
	SkipUnchanged bool `mapstructure:"skip_unchanged" default:"false"`
	// RootPath is the application root the base path is relative to.
	RootPath string `mapstructure:"root_path" default:"."`
	// BasePath is the import directory, relative to RootPath.
	BasePath string `mapstructure:"base_path" default:"pub/media/import"`
	// MediaBackend selects where gallery files live (filesystem, storage).
	MediaBackend string `mapstructure:"media_backend" default:"filesystem"`
	// MediaPath is the directory (filesystem) or key prefix (storage) of gallery files.
	MediaPath string `mapstructure:"media_path" default:"pub/media/catalog/product"`
	// FetchConcurrency is the maximum number of parallel fetches per request.
	FetchConcurrency int `mapstructure:"fetch_concurrency" default:"4"`
	// FetchTimeoutSeconds is the timeout of a single remote fetch.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"30"`
	// MaxImageBytes caps the size of a fetched image.
	MaxImageBytes int64 `mapstructure:"max_image_bytes" default:"20971520"`
}

const (
	MediaBackendFilesystem = "filesystem"
	MediaBackendStorage    = "storage"
)

// Flags returns the feature toggles described by the configuration.
func (c Config) Flags() Flags {
	return Flags{
		Enabled:       c.Enabled,
		PassURL:       c.PassURL,
		PassPath:      c.PassPath,
		SkipUnchanged: c.SkipUnchanged,
	}
}

// ImportDir returns the directory relative path references resolve against.
func (c Config) ImportDir() string {
	path := c.BasePath
	if strings.TrimSpace(path) == "" {
		path = "pub/media/import"
	}
	root := c.RootPath
	if root == "" {
		root = "."
	}
	return JoinBase(root, path)
}

// IsValidMediaBackend checks if the configured media backend is known.
func (c Config) IsValidMediaBackend() bool {
	switch c.MediaBackend {
	case MediaBackendFilesystem, MediaBackendStorage:
		return true
	default:
		return false
	}
}
