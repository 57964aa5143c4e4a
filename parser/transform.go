package parser

import (
	"fmt"
	"strings"

	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

// SourceKind names a source specification format with a registered
// transformer. The set is closed: formats are fixed at compile time, not
// extensible at runtime.
type SourceKind string

// SourceKindOpenAPI is the OpenAPI v3 transformer, currently the only one.
const SourceKindOpenAPI SourceKind = "openapi"

// TransformFunc converts a raw parsed document into its fully dereferenced
// form, mutating raw in place. It must leave the document reference-free on
// success.
type TransformFunc func(raw map[string]any, source string) error

// transformers is the per-format lookup table of pure transform functions.
var transformers = map[SourceKind]TransformFunc{
	SourceKindOpenAPI: transformOpenAPI,
}

// Transform dereferences a raw document using the transformer registered for
// kind. An unregistered kind fails with a TransformError.
func Transform(kind SourceKind, raw map[string]any, source string) error {
	fn, ok := transformers[kind]
	if !ok {
		return &naverrors.TransformError{
			Source:  source,
			Message: fmt.Sprintf("no transformer registered for source kind %q", kind),
		}
	}
	return fn(raw, source)
}

// IsOpenAPI3 reports whether the raw document declares an OpenAPI 3.x
// version. This is the single type guard the rest of the system relies on:
// past this point every consumer operates on typed data.
func IsOpenAPI3(raw map[string]any) bool {
	v, ok := raw["openapi"].(string)
	return ok && strings.HasPrefix(v, "3.")
}

// transformOpenAPI validates the OpenAPI version marker and inlines every
// internal $ref.
func transformOpenAPI(raw map[string]any, source string) error {
	if !IsOpenAPI3(raw) {
		return &naverrors.TransformError{
			Source:  source,
			Message: "not an OpenAPI 3.x document (missing or unsupported 'openapi' version field)",
		}
	}
	return NewRefResolver(source).InlineAll(raw)
}
