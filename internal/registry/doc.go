// Package registry implements the server's tool table.
//
// The registry is an explicit object constructed at process start and
// passed to the protocol layer, rather than a process-wide global.
// Tools are registered once during construction; after that the
// registry is read-only and safe for concurrent invocations.
package registry
