package storage

import "time"

// DefaultTimeout applies when TimeoutSeconds is unset or not positive.
const DefaultTimeout = 30 * time.Second

// Config describes the S3-compatible bucket gallery media is kept in when
// gallery.media_backend is "storage".
type Config struct {
	// Endpoint is host:port of the object store; an http(s):// scheme is tolerated.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the dispersion tree of gallery files. It is created on startup.
	Bucket string `mapstructure:"bucket" default:"gallery"`
	// Region is used when the bucket has to be created.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the startup bucket check.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the configured timeout, falling back to DefaultTimeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
