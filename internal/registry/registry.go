package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/unhcr-demographics-mcp/internal/errors"
)

// Registry holds the server's registered tools.
//
// It supports two invocation paths: Attach hands every tool to the
// official MCP SDK server so the transport layer handles tools/list and
// tools/call, while Tools and Call allow direct programmatic dispatch
// without a transport, which is what the tests use.
type Registry struct {
	name    string
	version string
	mu      sync.RWMutex
	tools   map[string]*registeredTool
}

// registeredTool pairs a tool definition with its handler.
type registeredTool struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// New creates an empty registry for a server with the given identity.
func New(name, version string) *Registry {
	return &Registry{
		name:    name,
		version: version,
		tools:   make(map[string]*registeredTool, 1),
	}
}

// Name returns the server name.
func (r *Registry) Name() string {
	return r.name
}

// Version returns the server version.
func (r *Registry) Version() string {
	return r.version
}

// Add registers a tool. Registering the same name twice replaces the
// earlier definition.
func (r *Registry) Add(tool *mcp.Tool, handler mcp.ToolHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[tool.Name] = &registeredTool{
		tool:    tool,
		handler: handler,
	}
}

// Tools returns the definitions of all registered tools.
func (r *Registry) Tools() []*mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*mcp.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		result = append(result, t.tool)
	}

	return result
}

// Call executes a tool by name with the given arguments. An
// unrecognized name fails with UnknownToolError; handler failures are
// reported inside the result, not as a Go error.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	r.mu.RLock()
	t, exists := r.tools[name]
	r.mu.RUnlock()

	if !exists {
		return nil, &errors.UnknownToolError{Name: name}
	}

	argBytes, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal arguments: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      name,
			Arguments: argBytes,
		},
	}

	result, err := t.handler(ctx, req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	return result, nil
}

// Attach registers every tool on the given MCP SDK server.
func (r *Registry) Attach(srv *mcp.Server) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tools {
		srv.AddTool(t.tool, t.handler)
	}
}

// TextResult creates a CallToolResult with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
		IsError: true,
	}
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil {
		return make(map[string]any), nil
	}

	if len(req.Params.Arguments) == 0 {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return args, nil
}
