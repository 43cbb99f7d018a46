// Package unhcrmcp implements a Model Context Protocol server for UNHCR
// refugee demographic statistics.
//
// The server exposes a single tool, get_demographics, which forwards
// filtered query parameters (year, country of origin, country of
// asylum, result limit) to the UNHCR population API and relays the JSON
// response to the calling agent unmodified.
//
// # Usage
//
// Construct a server and run it over stdio:
//
//	ctx := context.Background()
//	server := unhcrmcp.NewServer(
//	    unhcrmcp.WithLogger(slog.Default()),
//	)
//	if err := server.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The upstream endpoint and HTTP client are injectable for testing:
//
//	server := unhcrmcp.NewServer(
//	    unhcrmcp.WithBaseURL(mockUpstream.URL),
//	    unhcrmcp.WithTimeout(5*time.Second),
//	)
//
// # Error Handling
//
// The server distinguishes three failure conditions: invalid arguments
// (year missing or outside 1950–2025), unknown tool names, and upstream
// API failures. All three surface to the caller inside the tool result
// envelope; none are retried.
package unhcrmcp
