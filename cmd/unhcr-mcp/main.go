// Command unhcr-mcp runs the UNHCR demographics MCP server over stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	unhcrmcp "github.com/wagiedev/unhcr-demographics-mcp"
)

// Set via ldflags at build time.
var version = unhcrmcp.Version

var (
	flagBaseURL string
	flagTimeout time.Duration
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "unhcr-mcp",
	Short: "MCP server for UNHCR refugee demographic statistics",
	Long: "unhcr-mcp — a Model Context Protocol server exposing the get_demographics tool,\n" +
		"which queries the UNHCR population API for refugee demographics by year,\n" +
		"country of origin, and country of asylum.",
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Override the UNHCR demographics endpoint")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Upstream request timeout (default 10s)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("unhcr-mcp version %s\n", version))
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}

	// stdout carries the protocol; all logging goes to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []unhcrmcp.Option{unhcrmcp.WithLogger(log)}
	if flagBaseURL != "" {
		opts = append(opts, unhcrmcp.WithBaseURL(flagBaseURL))
	}

	if flagTimeout > 0 {
		opts = append(opts, unhcrmcp.WithTimeout(flagTimeout))
	}

	server := unhcrmcp.NewServer(opts...)

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server exited with error", "error", err)

		return err
	}

	log.Info("Shutting down UNHCR demographics MCP server")

	return nil
}
