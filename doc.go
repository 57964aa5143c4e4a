// Package explorer is the root of mcp-openapi-schema-explorer, an MCP server
// that exposes parsed OpenAPI v3 documents as an addressable, hierarchical
// resource space under the openapi:// URI scheme.
//
// Callers navigate from the whole document down to a single operation or
// schema by constructing URIs; each URI resolves to either a structured
// detail payload or a human-readable list with navigation hints.
//
// # Packages
//
//   - parser: load, format-detect, and dereference OpenAPI documents
//   - registry: hold dereferenced documents keyed by a stable slug
//   - address: parse and build the openapi:// URI grammar
//   - navigator: resolve parsed addresses against a document
//   - renderer: project resolved nodes into result items
//   - completer: propose valid next path segments for URI templates
//
// # URI grammar
//
// Six address shapes are recognised:
//
//	openapi://specs
//	openapi://{specId}/{field}
//	openapi://{specId}/paths/{encodedPath}
//	openapi://{specId}/paths/{encodedPath}/{method}[,{method}...]
//	openapi://{specId}/components/{type}
//	openapi://{specId}/components/{type}/{name}[,{name}...]
//
// The root package itself only carries build metadata; see the package list
// above for functionality.
package explorer
