// Command mcp-openapi-schema-explorer serves one or more OpenAPI
// specifications as MCP resources under the openapi:// URI scheme.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	explorer "github.com/domaspe/mcp-openapi-schema-explorer"
	"github.com/domaspe/mcp-openapi-schema-explorer/internal/mcpserver"
	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
	"github.com/domaspe/mcp-openapi-schema-explorer/registry"
)

var (
	outputFormat string
	transport    string
	httpAddr     string
)

var rootCmd = &cobra.Command{
	Use:   "mcp-openapi-schema-explorer <spec-path-or-url> [spec-path-or-url...]",
	Short: "MCP server for exploring OpenAPI specifications",
	Long: `mcp-openapi-schema-explorer loads OpenAPI 3.x specifications from local
files or URLs and serves them read-only as MCP resources. Clients start at
openapi://specs and drill down into paths, operations, and components
without ever holding the full document in context.`,
	Args:          cobra.MinimumNArgs(1),
	Version:       explorer.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&outputFormat, "output-format", mcpserver.DefaultOutputFormat(),
		"detail output format: json, yaml, or json-minified")
	rootCmd.Flags().StringVar(&transport, "transport", "stdio",
		"MCP transport: stdio or http")
	rootCmd.Flags().StringVar(&httpAddr, "http-addr", mcpserver.DefaultHTTPAddr(),
		"listen address for the http transport")
}

func run(cmd *cobra.Command, args []string) error {
	// Stdout belongs to the stdio transport; all logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: mcpserver.LogLevel(),
	})))

	results := make([]*parser.LoadResult, 0, len(args))
	for _, source := range args {
		result, err := parser.Load(source)
		if err != nil {
			slog.Error("skipping specification that failed to load", "source", source, "error", err)
			continue
		}
		results = append(results, result)
	}
	if len(results) == 0 {
		return fmt.Errorf("none of the %d given specifications could be loaded", len(args))
	}

	reg := registry.New(results...)
	srv, err := mcpserver.New(reg, mcpserver.Options{OutputFormat: outputFormat})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch transport {
	case "stdio":
		slog.Info("serving MCP over stdio", "specs", reg.Len())
		return srv.Run(ctx)
	case "http":
		slog.Info("serving MCP over http", "addr", httpAddr, "specs", reg.Len())
		return srv.RunHTTP(ctx, httpAddr)
	default:
		return fmt.Errorf("unknown transport %q; valid transports: stdio, http", transport)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
