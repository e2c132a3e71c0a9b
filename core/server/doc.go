// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key protecting every route,
// the request body limit and whether generic 5xx errors carry sanitized details.
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start to configure Fiber and the error masking handler.
package server
