package errors

import "fmt"

// ServerError is the base interface for all errors produced by the server.
type ServerError interface {
	error
	IsServerError() bool
}

// Compile-time verification that all error types implement ServerError.
var (
	_ ServerError = (*InvalidArgumentError)(nil)
	_ ServerError = (*UnknownToolError)(nil)
	_ ServerError = (*UpstreamError)(nil)
)

// InvalidArgumentError indicates a tool argument failed validation.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// IsServerError implements ServerError.
func (e *InvalidArgumentError) IsServerError() bool { return true }

// UnknownToolError indicates a tool call named a tool that is not registered.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// IsServerError implements ServerError.
func (e *UnknownToolError) IsServerError() bool { return true }

// UpstreamError indicates the UNHCR API request failed, either with a
// non-2xx status or a transport-level error. StatusCode is zero when the
// request never produced a response.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("UNHCR API error: %v", e.Err)
	}

	return fmt.Sprintf("UNHCR API error: unexpected status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsServerError implements ServerError.
func (e *UpstreamError) IsServerError() bool { return true }
