// Package unhcr implements the HTTP client for the UNHCR population API.
//
// The client issues a single GET per query against the demographics
// endpoint and returns the response body verbatim. It performs no
// caching, no pagination, and no retries; every failure is reported
// once, immediately, as an UpstreamError.
package unhcr

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

	"github.com/wagiedev/unhcr-demographics-mcp/internal/errors"
)

const (
	// DefaultBaseURL is the UNHCR population statistics demographics endpoint.
	DefaultBaseURL = "https://api.unhcr.org/population/v1/demographics/"

	// DefaultTimeout bounds each upstream request. The upstream API has no
	// SLA; without a deadline a stuck connection would block the tool call
	// indefinitely.
	DefaultTimeout = 10 * time.Second
)

// Query carries the validated parameters for one demographics request.
// Zero-value COO/COA mean "not filtered" and are omitted from the
// outgoing query string.
type Query struct {
	Year  int
	COO   string
	COA   string
	Limit int
}

// Values encodes the query as URL parameters. Country codes are
// uppercased, matching what the UNHCR API expects for ISO3 codes.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("year", strconv.Itoa(q.Year))

	if q.COO != "" {
		v.Set("coo", strings.ToUpper(q.COO))
	}

	if q.COA != "" {
		v.Set("coa", strings.ToUpper(q.COA))
	}

	v.Set("limit", strconv.Itoa(q.Limit))

	return v
}

// Client fetches demographic statistics from the UNHCR API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// Config holds the client's construction parameters. All fields are
// optional; zero values fall back to the package defaults.
type Config struct {
	// HTTPClient substitutes the underlying HTTP client. Used by tests
	// and by callers that need custom transport settings.
	HTTPClient *http.Client

	// BaseURL overrides the UNHCR demographics endpoint.
	BaseURL string

	// Timeout bounds each request. Ignored when HTTPClient is set.
	Timeout time.Duration

	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger
}

// NewClient creates a UNHCR API client from the given config.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		log:        log,
	}
}

// Fetch issues one GET for the given query and returns the raw JSON
// body. The body is not parsed into a typed structure; the caller
// relays it unmodified.
func (c *Client) Fetch(ctx context.Context, q Query) (json.RawMessage, error) {
	reqURL := c.baseURL + "?" + q.Values().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	c.log.Debug("Fetching demographics", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &errors.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // draining for connection reuse
		return nil, &errors.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if len(body) > 0 && !json.Valid(body) {
		return nil, &errors.UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response is not valid JSON"),
		}
	}

	c.log.Debug("Fetched demographics", "status", resp.StatusCode, "bytes", len(body))

	return json.RawMessage(body), nil
}
