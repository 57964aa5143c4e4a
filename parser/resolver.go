package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

// MaxRefDepth is the maximum depth allowed for nested $ref resolution.
// This prevents stack overflow from deeply nested (but non-circular) references.
const MaxRefDepth = 100

// RefResolver inlines internal $ref pointers in a raw document tree so that
// every downstream consumer can treat the document as reference-free.
//
// Only local references (#/...) are supported: a document handed to this
// server must be self-contained. External file and HTTP references fail the
// transform for that document.
type RefResolver struct {
	// resolving tracks refs currently being resolved in the recursion stack
	resolving map[string]bool
	// hasCircularRefs is set when a circular reference chain is detected;
	// the offending $ref is left in place rather than expanded infinitely
	hasCircularRefs bool
	// source identifies the document for error messages
	source string
}

// NewRefResolver creates a reference resolver for the named source document.
func NewRefResolver(source string) *RefResolver {
	return &RefResolver{
		resolving: make(map[string]bool),
		source:    source,
	}
}

// InlineAll walks the entire document and replaces every internal $ref with a
// deep copy of its target value. A dangling pointer or an external reference
// fails with a TransformError, fatal for this document's load.
func (r *RefResolver) InlineAll(doc map[string]any) error {
	r.hasCircularRefs = false
	return r.inlineRecursive(doc, doc, 0)
}

// HasCircularRefs reports whether circular reference chains were detected.
// Circular refs are left in place as $ref objects; expanding them would
// produce an infinite tree.
func (r *RefResolver) HasCircularRefs() bool {
	return r.hasCircularRefs
}

// resolveLocal resolves a local reference in the format #/path/to/component
// by traversing the document per RFC 6901 (JSON Pointer).
func (r *RefResolver) resolveLocal(doc map[string]any, ref string) (any, error) {
	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" || pointer == "/" {
		return doc, nil
	}

	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	current := any(doc)
	for i, part := range parts {
		part = unescapeJSONPointer(part)

		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("reference not found: #/%s (missing key: %s)", strings.Join(parts[:i+1], "/"), part)
			}
			current = next

		case []any:
			index, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid array index %q in reference: #/%s", part, strings.Join(parts[:i+1], "/"))
			}
			if index < 0 || index >= len(v) {
				return nil, fmt.Errorf("array index %d out of bounds (length %d) in reference: #/%s", index, len(v), strings.Join(parts[:i+1], "/"))
			}
			current = v[index]

		default:
			return nil, fmt.Errorf("cannot traverse into type %T at #/%s", v, strings.Join(parts[:i], "/"))
		}
	}

	return current, nil
}

// inlineRecursive walks the document structure and inlines each $ref in place.
func (r *RefResolver) inlineRecursive(root map[string]any, current any, depth int) error {
	if depth > MaxRefDepth {
		return &naverrors.TransformError{
			Source:  r.source,
			Message: fmt.Sprintf("structure exceeds maximum reference depth of %d", MaxRefDepth),
		}
	}

	switch v := current.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok {
			if !strings.HasPrefix(ref, "#") {
				return &naverrors.TransformError{
					Source:  r.source,
					Ref:     ref,
					Message: "external references are not supported; provide a self-contained document",
				}
			}

			// A $ref to the document root is always circular.
			if ref == "#" || ref == "#/" {
				r.hasCircularRefs = true
				return nil
			}

			// Circular chain: leave the $ref in place rather than trying to
			// expand it infinitely.
			if r.resolving[ref] {
				r.hasCircularRefs = true
				return nil
			}

			// The ref must stay marked until the resolved content has been
			// fully processed, so a schema referencing itself is caught.
			r.resolving[ref] = true

			resolved, err := r.resolveLocal(root, ref)
			if err != nil {
				delete(r.resolving, ref)
				return &naverrors.TransformError{Source: r.source, Ref: ref, Cause: err}
			}
			resolvedMap, ok := resolved.(map[string]any)
			if !ok {
				delete(r.resolving, ref)
				return &naverrors.TransformError{
					Source:  r.source,
					Ref:     ref,
					Message: fmt.Sprintf("resolved target is not an object (got %T)", resolved),
				}
			}

			// Replace the $ref node with a deep copy of its target. Copying
			// prevents A -> B -> A chains from creating actual circular Go
			// pointer structures that would never serialize.
			for k := range v {
				if k != "$ref" {
					delete(v, k)
				}
			}
			for k, val := range resolvedMap {
				v[k] = deepCopyValue(val)
			}
			delete(v, "$ref")

			err = r.inlineRecursive(root, v, depth+1)
			delete(r.resolving, ref)
			return err
		}

		for _, val := range v {
			if err := r.inlineRecursive(root, val, depth+1); err != nil {
				return err
			}
		}

	case []any:
		for _, item := range v {
			if err := r.inlineRecursive(root, item, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// unescapeJSONPointer unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// deepCopyValue copies a JSON-like value tree of maps, slices, and scalars.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
