package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/domaspe/mcp-openapi-schema-explorer/address"
	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
	"github.com/domaspe/mcp-openapi-schema-explorer/renderer"
)

// registerResources registers the static specs listing plus one resource
// template per spec-scoped address shape. All of them share one read
// handler; the address parser dispatches on the URI shape, not on which
// template matched.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         address.Scheme + address.SpecsName,
		Name:        "specs",
		Description: "List of loaded OpenAPI specifications",
		MIMEType:    listMIMEType,
	}, s.handleRead)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: address.TemplateField,
		Name:        "spec-field",
		Description: "A top-level field of a specification (info, servers, tags, ...); 'paths' and 'components' return navigable listings",
		MIMEType:    s.format.mimeType(),
	}, s.handleRead)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: address.TemplatePathItem,
		Name:        "path-methods",
		Description: "Methods declared on a path (path URL-encoded)",
		MIMEType:    listMIMEType,
	}, s.handleRead)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: address.TemplateOperation,
		Name:        "operation-detail",
		Description: "Operation detail for one or more comma-separated methods on a path",
		MIMEType:    s.format.mimeType(),
	}, s.handleRead)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: address.TemplateComponentType,
		Name:        "component-names",
		Description: "Names defined within a component category",
		MIMEType:    listMIMEType,
	}, s.handleRead)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: address.TemplateComponent,
		Name:        "component-detail",
		Description: "Component detail for one or more comma-separated names within a category",
		MIMEType:    s.format.mimeType(),
	}, s.handleRead)
}

// handleRead serves every resource read. A URI that does not parse as any
// address shape is a protocol-level not-found; a URI that parses but fails
// to resolve returns a readable error message as the resource content, so
// clients see what was wrong and which alternatives exist.
func (s *Server) handleRead(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	addr, err := address.Parse(req.Params.URI)
	if err != nil {
		// An empty selector is an addressable-shape request gone wrong, so
		// the caller gets a readable message; anything else never names a
		// resource at all.
		var emptySel *naverrors.EmptySelectorError
		if errors.As(err, &emptySel) {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: listMIMEType,
					Text:     err.Error(),
				}},
			}, nil
		}
		slog.Debug("unparseable resource uri", "uri", req.Params.URI, "error", err)
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var items []renderer.ResultItem
	res, err := s.nav.Resolve(addr)
	if err != nil {
		slog.Debug("resolution failed", "uri", req.Params.URI, "error", err)
		items = []renderer.ResultItem{renderer.ProjectError(addr, err)}
	} else {
		items = renderer.Project(res)
	}

	contents := make([]*mcp.ResourceContents, 0, len(items))
	for _, item := range items {
		c, err := s.renderItem(item)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", item.URI(), err)
		}
		contents = append(contents, c)
	}
	return &mcp.ReadResourceResult{Contents: contents}, nil
}

// renderItem serializes one result item. Listings and errors are plain
// text; detail payloads use the configured output format.
func (s *Server) renderItem(item renderer.ResultItem) (*mcp.ResourceContents, error) {
	if item.IsError {
		return &mcp.ResourceContents{
			URI:      item.URI(),
			MIMEType: listMIMEType,
			Text:     item.ErrorText,
		}, nil
	}
	if item.RenderAsList {
		text, ok := item.Payload.(string)
		if !ok {
			return nil, fmt.Errorf("list payload is %T, not string", item.Payload)
		}
		return &mcp.ResourceContents{
			URI:      item.URI(),
			MIMEType: listMIMEType,
			Text:     text,
		}, nil
	}
	text, err := s.format.marshal(item.Payload)
	if err != nil {
		return nil, err
	}
	return &mcp.ResourceContents{
		URI:      item.URI(),
		MIMEType: s.format.mimeType(),
		Text:     text,
	}, nil
}
