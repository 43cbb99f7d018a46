// Package errors defines error types for the demographics server.
//
// This package provides structured error types for the three failure
// scenarios the server distinguishes: invalid tool arguments, calls to
// unregistered tools, and UNHCR API failures. All error types support
// error unwrapping and can be checked using errors.Is and errors.As.
package errors
