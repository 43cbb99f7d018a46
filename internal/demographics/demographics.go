// Package demographics defines the get_demographics tool.
//
// The tool forwards validated query parameters to the UNHCR population
// API and relays the JSON response to the caller verbatim. Argument
// validation happens here, before any network call: the year must fall
// inside the range the UNHCR dataset covers, and the result limit
// defaults to 100 when the caller does not set one.
package demographics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/unhcr-demographics-mcp/internal/errors"
	"github.com/wagiedev/unhcr-demographics-mcp/internal/registry"
	"github.com/wagiedev/unhcr-demographics-mcp/internal/unhcr"
)

const (
	// ToolName is the name the tool is registered and invoked under.
	ToolName = "get_demographics"

	// MinYear and MaxYear bound the year argument. The UNHCR dataset
	// starts in 1950.
	MinYear = 1950
	MaxYear = 2025

	// DefaultLimit is applied when the caller omits the limit argument.
	DefaultLimit = 100
)

// Fetcher fetches demographic statistics for a validated query.
// *unhcr.Client is the production implementation; tests substitute
// their own.
type Fetcher interface {
	Fetch(ctx context.Context, q unhcr.Query) (json.RawMessage, error)
}

// Tool returns the get_demographics tool definition.
func Tool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolName,
		Description: "Fetch refugee demographic statistics from UNHCR API",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"year": {
					Type:        "integer",
					Description: "Year of data to fetch",
					Minimum:     floatPtr(MinYear),
					Maximum:     floatPtr(MaxYear),
				},
				"coo": {
					Type:        "string",
					Description: "Country of Origin ISO3 code",
				},
				"coa": {
					Type:        "string",
					Description: "Country of Asylum ISO3 code",
				},
				"limit": {
					Type:        "integer",
					Description: "Max results",
					Default:     json.RawMessage("100"),
				},
			},
			Required: []string{"year"},
		},
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
		},
	}
}

// Handler executes get_demographics invocations.
type Handler struct {
	fetcher Fetcher
	log     *slog.Logger
}

// NewHandler creates a handler backed by the given fetcher.
func NewHandler(fetcher Fetcher, log *slog.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		log:     log,
	}
}

// Handle validates the request arguments, fetches from the UNHCR API,
// and relays the response. Validation and upstream failures are
// reported inside the result envelope, never as a Go error, so a bad
// call can never take down the server.
func (h *Handler) Handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invocationID := ulid.Make().String()

	args, err := registry.ParseArguments(req)
	if err != nil {
		h.log.Warn("Malformed tool arguments", "invocation_id", invocationID, "error", err)

		return registry.ErrorResult((&errors.InvalidArgumentError{
			Field:  "arguments",
			Reason: err.Error(),
		}).Error()), nil
	}

	query, argErr := parseQuery(args)
	if argErr != nil {
		h.log.Warn("Invalid tool arguments", "invocation_id", invocationID, "error", argErr)

		return registry.ErrorResult(argErr.Error()), nil
	}

	h.log.Debug("Calling UNHCR API",
		"invocation_id", invocationID,
		"year", query.Year,
		"coo", query.COO,
		"coa", query.COA,
		"limit", query.Limit,
	)

	body, err := h.fetcher.Fetch(ctx, query)
	if err != nil {
		h.log.Warn("UNHCR API call failed", "invocation_id", invocationID, "error", err)

		return registry.ErrorResult(err.Error()), nil
	}

	if len(body) == 0 {
		return registry.TextResult("No data available"), nil
	}

	return registry.TextResult(string(body)), nil
}

// parseQuery validates the raw argument map and builds the upstream
// query, applying the default limit.
func parseQuery(args map[string]any) (unhcr.Query, *errors.InvalidArgumentError) {
	year, err := intArg(args, "year")
	if err != nil {
		return unhcr.Query{}, err
	}

	if year == nil {
		return unhcr.Query{}, &errors.InvalidArgumentError{
			Field:  "year",
			Reason: "required",
		}
	}

	if *year < MinYear || *year > MaxYear {
		return unhcr.Query{}, &errors.InvalidArgumentError{
			Field:  "year",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinYear, MaxYear, *year),
		}
	}

	coo, err := stringArg(args, "coo")
	if err != nil {
		return unhcr.Query{}, err
	}

	coa, err := stringArg(args, "coa")
	if err != nil {
		return unhcr.Query{}, err
	}

	limit, err := intArg(args, "limit")
	if err != nil {
		return unhcr.Query{}, err
	}

	q := unhcr.Query{
		Year:  *year,
		COO:   coo,
		COA:   coa,
		Limit: DefaultLimit,
	}
	if limit != nil {
		q.Limit = *limit
	}

	return q, nil
}

// intArg extracts an optional integer argument. JSON numbers arrive as
// float64; fractional values are rejected rather than truncated.
func intArg(args map[string]any, name string) (*int, *errors.InvalidArgumentError) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}

	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, &errors.InvalidArgumentError{
			Field:  name,
			Reason: fmt.Sprintf("must be an integer, got %v", raw),
		}
	}

	v := int(f)

	return &v, nil
}

// stringArg extracts an optional string argument.
func stringArg(args map[string]any, name string) (string, *errors.InvalidArgumentError) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", &errors.InvalidArgumentError{
			Field:  name,
			Reason: fmt.Sprintf("must be a string, got %v", raw),
		}
	}

	return s, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
