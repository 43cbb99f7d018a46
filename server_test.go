package unhcrmcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// startSession wires the server to an MCP client over in-memory
// transports and returns the connected client session. The server
// goroutine is shut down and checked during cleanup.
func startSession(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.Serve(egCtx, serverTransport)
	})

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close() //nolint:errcheck
		cancel()

		if err := eg.Wait(); err != nil && ctx.Err() == nil {
			t.Errorf("server exited with error: %v", err)
		}
	})

	return session
}

func TestServer_ListTools(t *testing.T) {
	server := NewServer()
	session := startSession(t, server)

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})

	require.NoError(t, err)
	require.Len(t, res.Tools, 1)
	require.Equal(t, "get_demographics", res.Tools[0].Name)
	require.Equal(t, "Fetch refugee demographic statistics from UNHCR API", res.Tools[0].Description)
	require.NotNil(t, res.Tools[0].InputSchema)
}

func TestServer_CallTool_RoundTrip(t *testing.T) {
	const payload = `{"data":[{"year":2023,"coo":"SYR","coa":"TUR","total":3241475}]}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2023", r.URL.Query().Get("year"))
		require.Equal(t, "SYR", r.URL.Query().Get("coo"))
		require.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(payload)) //nolint:errcheck
	}))
	defer upstream.Close()

	server := NewServer(WithBaseURL(upstream.URL))
	session := startSession(t, server)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_demographics",
		Arguments: map[string]any{"year": 2023, "coo": "SYR"},
	})

	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Equal(t, payload, text.Text)
}

func TestServer_CallTool_InvalidYear(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("no upstream call expected for invalid arguments")
	}))
	defer upstream.Close()

	server := NewServer(WithBaseURL(upstream.URL))
	session := startSession(t, server)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_demographics",
		Arguments: map[string]any{"year": 1802},
	})

	// The year bounds are declared in the input schema, so the protocol
	// layer may reject the call before the handler runs. Either way the
	// caller sees a failure and the upstream is never contacted.
	if err == nil {
		require.True(t, res.IsError)
	}
}

func TestServer_CallTool_UpstreamFailureDoesNotCrash(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	server := NewServer(WithBaseURL(upstream.URL))
	session := startSession(t, server)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_demographics",
		Arguments: map[string]any{"year": 2023},
	})

	require.NoError(t, err)
	require.True(t, res.IsError)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Contains(t, text.Text, "UNHCR API error")

	// The session survives the failed call.
	list, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, list.Tools, 1)
}

func TestServer_CallTool_UnknownTool(t *testing.T) {
	server := NewServer()
	session := startSession(t, server)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_populations",
		Arguments: map[string]any{"year": 2023},
	})

	require.Error(t, err)
}
