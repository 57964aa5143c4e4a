// Package mcpserver exposes a registry of OpenAPI documents as MCP
// resources under the openapi:// URI scheme, over stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	explorer "github.com/domaspe/mcp-openapi-schema-explorer"
	"github.com/domaspe/mcp-openapi-schema-explorer/completer"
	"github.com/domaspe/mcp-openapi-schema-explorer/navigator"
	"github.com/domaspe/mcp-openapi-schema-explorer/registry"
)

const serverInstructions = `mcp-openapi-schema-explorer — read-only MCP resource access to loaded OpenAPI specifications.

Start at openapi://specs to list the loaded specifications, then drill down:
- openapi://{specId}/{field} — a top-level field (info, servers, tags, ...); 'paths' and 'components' return navigable listings instead of the raw object
- openapi://{specId}/paths/{path} — methods declared on a path (URL-encode the path, e.g. users%2F%7Bid%7D)
- openapi://{specId}/paths/{path}/{method} — operation detail; comma-separate methods to fetch several at once
- openapi://{specId}/components/{type} — names within a component category
- openapi://{specId}/components/{type}/{name} — component detail; comma-separate names to fetch several at once

Listings are plain text with a hint line; detail responses use the configured output format.

Configuration: defaults are configurable via OPENAPI_EXPLORER_* environment variables set in your MCP client config.
- OPENAPI_EXPLORER_OUTPUT_FORMAT (default: json) — json, yaml, or json-minified
- OPENAPI_EXPLORER_HTTP_ADDR (default: 127.0.0.1:8080) — listen address for the http transport
- OPENAPI_EXPLORER_LOG_LEVEL (default: info) — debug, info, warn, or error`

// Options configures a Server beyond its registry. Zero values fall back to
// the environment-derived defaults.
type Options struct {
	// OutputFormat is the detail serialization: json, yaml, or json-minified.
	OutputFormat string
}

// Server wires a spec registry into an MCP server: resource templates for
// reading, a completion handler for discovering valid path segments.
type Server struct {
	reg    *registry.Registry
	nav    *navigator.Engine
	comp   *completer.Completer
	format outputFormat
	server *mcp.Server
}

// New creates a server over a registry. The registry is immutable for the
// server's lifetime; all reads are safe for concurrent sessions.
func New(reg *registry.Registry, opts Options) (*Server, error) {
	format := cfg.OutputFormat
	if opts.OutputFormat != "" {
		f, err := parseFormat(opts.OutputFormat)
		if err != nil {
			return nil, err
		}
		format = f
	}

	s := &Server{
		reg:    reg,
		nav:    navigator.New(reg),
		comp:   completer.New(reg),
		format: format,
	}
	s.server = mcp.NewServer(
		&mcp.Implementation{Name: "mcp-openapi-schema-explorer", Version: explorer.Version()},
		&mcp.ServerOptions{
			Instructions:      serverInstructions,
			CompletionHandler: s.handleComplete,
		},
	)
	s.registerResources()
	return s, nil
}

// Run starts the server over stdio and blocks until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the server over streamable HTTP on addr and blocks until
// the context is cancelled or the listener fails.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
