package unhcrmcp

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Server using the functional options pattern.
type Option func(*serverOptions)

// serverOptions holds the server's construction parameters.
type serverOptions struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// applyOptions applies functional options to a serverOptions struct.
func applyOptions(opts []Option) *serverOptions {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *serverOptions) {
		o.logger = logger
	}
}

// WithBaseURL overrides the UNHCR demographics endpoint.
// Tests point this at a mock upstream.
func WithBaseURL(baseURL string) Option {
	return func(o *serverOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient substitutes the HTTP client used for upstream calls.
// When set, WithTimeout is ignored; configure the timeout on the
// client instead.
func WithHTTPClient(client *http.Client) Option {
	return func(o *serverOptions) {
		o.httpClient = client
	}
}

// WithTimeout bounds each upstream request. Defaults to 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *serverOptions) {
		o.timeout = timeout
	}
}
