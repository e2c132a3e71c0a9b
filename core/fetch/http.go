package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"media-gallery/core/reconcile"
)

// HTTPClient fetches remote images over HTTP(S).
type HTTPClient struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPClient creates a client with the timeout and size cap of cfg.
func NewHTTPClient(cfg reconcile.Config) *HTTPClient {
	timeout := cfg.FetchTimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPClient{
		client:   &http.Client{Timeout: timeoutDuration, Transport: transport},
		maxBytes: cfg.MaxImageBytes,
	}
}

// Get performs a GET request and returns the status, headers and body.
// Non-2xx responses are returned as-is; only transport failures are errors.
func (c *HTTPClient) Get(ctx context.Context, url string) (*reconcile.RemoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if c.maxBytes > 0 {
		body = io.LimitReader(resp.Body, c.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if c.maxBytes > 0 && int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.maxBytes)
	}

	headers := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		headers[key] = resp.Header.Get(key)
	}

	return &reconcile.RemoteResponse{
		Status:  resp.StatusCode,
		Headers: headers,
		Body:    data,
	}, nil
}
