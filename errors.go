package unhcrmcp

import "github.com/wagiedev/unhcr-demographics-mcp/internal/errors"

// Re-export error types from internal package

// InvalidArgumentError indicates a tool argument failed validation.
type InvalidArgumentError = errors.InvalidArgumentError

// UnknownToolError indicates a call named a tool that is not registered.
type UnknownToolError = errors.UnknownToolError

// UpstreamError indicates the UNHCR API request failed.
type UpstreamError = errors.UpstreamError

// ServerError is the base interface for all errors produced by the server.
type ServerError = errors.ServerError
