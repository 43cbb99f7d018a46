package unhcrmcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/unhcr-demographics-mcp/internal/demographics"
	"github.com/wagiedev/unhcr-demographics-mcp/internal/registry"
	"github.com/wagiedev/unhcr-demographics-mcp/internal/unhcr"
)

const (
	// ServerName identifies this server to MCP clients.
	ServerName = "unhcr-demographics"

	// Version is the server version reported during initialization.
	Version = "0.1.0"
)

// Server is an MCP server exposing the get_demographics tool.
//
// The tool table is built once at construction and is immutable
// afterwards, so concurrent invocations need no coordination: each
// call performs exactly one upstream request and shares no state with
// any other call.
type Server struct {
	log      *slog.Logger
	registry *registry.Registry
}

// NewServer creates a demographics server. All construction parameters
// are optional; by default the server talks to the public UNHCR API
// with a 10 second request timeout and logging disabled.
func NewServer(opts ...Option) *Server {
	options := applyOptions(opts)

	log := options.logger
	if log == nil {
		log = NopLogger()
	}

	client := unhcr.NewClient(&unhcr.Config{
		HTTPClient: options.httpClient,
		BaseURL:    options.baseURL,
		Timeout:    options.timeout,
		Logger:     log,
	})

	handler := demographics.NewHandler(client, log)

	reg := registry.New(ServerName, Version)
	reg.Add(demographics.Tool(), handler.Handle)

	return &Server{
		log:      log,
		registry: reg,
	}
}

// Run serves MCP over stdio until ctx is cancelled or the peer
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs the server over the given transport. Tests use this with
// in-memory transports.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    s.registry.Name(),
		Version: s.registry.Version(),
	}, &mcp.ServerOptions{HasTools: true})

	s.registry.Attach(srv)

	s.log.Info("UNHCR demographics MCP server running")

	return srv.Run(ctx, transport)
}
