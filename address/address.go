// Package address parses and builds the openapi:// URI grammar.
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
// Parsing and building are exact inverses: building an address from
// structured fields reproduces byte-identical URIs to what the parser
// consumes, including method lower-casing and path encoding. That symmetry
// is a correctness invariant, not a convenience.
package address

import (
	"fmt"
	"strings"

	"github.com/domaspe/mcp-openapi-schema-explorer/internal/httputil"
	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
)

// Scheme is the URI scheme prefix for every address.
const Scheme = "openapi://"

// SpecsName is the registry-listing pseudo-address path.
const SpecsName = "specs"

// RFC 6570 URI templates for the five spec-scoped shapes, used for MCP
// resource template registration and completion routing. The trailing
// method and name variables are exploded: they accept comma-separated lists.
const (
	TemplateField         = Scheme + "{specId}/{field}"
	TemplatePathItem      = Scheme + "{specId}/paths/{path}"
	TemplateOperation     = Scheme + "{specId}/paths/{path}/{method*}"
	TemplateComponentType = Scheme + "{specId}/components/{type}"
	TemplateComponent     = Scheme + "{specId}/components/{type}/{name*}"
)

// Address is a parsed request target: one of the six URI shapes.
type Address interface {
	// URI returns the canonical wire form of the address.
	URI() string
	// Suffix returns the wire form without the scheme prefix.
	Suffix() string

	isAddress()
}

// SpecsList addresses the registry listing, openapi://specs.
type SpecsList struct{}

func (SpecsList) isAddress()     {}
func (SpecsList) URI() string    { return Scheme + SpecsName }
func (SpecsList) Suffix() string { return SpecsName }

// TopLevelField addresses a top-level document field, openapi://{specId}/{field}.
type TopLevelField struct {
	Spec  string
	Field string
}

func (TopLevelField) isAddress() {}

// URI returns the canonical wire form.
func (a TopLevelField) URI() string { return Scheme + a.Suffix() }

// Suffix returns the wire form without the scheme.
func (a TopLevelField) Suffix() string { return a.Spec + "/" + a.Field }

// PathItemList addresses the method listing of one path,
// openapi://{specId}/paths/{encodedPath}. Path is stored decoded with a
// leading slash.
type PathItemList struct {
	Spec string
	Path string
}

func (PathItemList) isAddress() {}

// URI returns the canonical wire form.
func (a PathItemList) URI() string { return Scheme + a.Suffix() }

// Suffix returns the wire form without the scheme.
func (a PathItemList) Suffix() string {
	return a.Spec + "/paths/" + EncodePath(a.Path)
}

// OperationDetail addresses one or more operations on a path,
// openapi://{specId}/paths/{encodedPath}/{method}[,{method}...].
type OperationDetail struct {
	Spec string
	Path string
	// Methods holds the requested methods in request order, lowercase.
	Methods []string
}

func (OperationDetail) isAddress() {}

// URI returns the canonical wire form.
func (a OperationDetail) URI() string { return Scheme + a.Suffix() }

// Suffix returns the wire form without the scheme.
func (a OperationDetail) Suffix() string {
	methods := make([]string, len(a.Methods))
	for i, m := range a.Methods {
		methods[i] = httputil.NormalizeMethod(m)
	}
	return a.Spec + "/paths/" + EncodePath(a.Path) + "/" + strings.Join(methods, ",")
}

// ComponentList addresses the name listing of one component type,
// openapi://{specId}/components/{type}.
type ComponentList struct {
	Spec string
	Type string
}

func (ComponentList) isAddress() {}

// URI returns the canonical wire form.
func (a ComponentList) URI() string { return Scheme + a.Suffix() }

// Suffix returns the wire form without the scheme.
func (a ComponentList) Suffix() string {
	return a.Spec + "/components/" + a.Type
}

// ComponentDetail addresses one or more named components,
// openapi://{specId}/components/{type}/{name}[,{name}...].
type ComponentDetail struct {
	Spec string
	Type string
	// Names holds the requested component names in request order. Names are
	// case-sensitive and never re-cased.
	Names []string
}

func (ComponentDetail) isAddress() {}

// URI returns the canonical wire form.
func (a ComponentDetail) URI() string { return Scheme + a.Suffix() }

// Suffix returns the wire form without the scheme.
func (a ComponentDetail) Suffix() string {
	return a.Spec + "/components/" + a.Type + "/" + strings.Join(a.Names, ",")
}

// Parse parses a request URI into its address variant.
func Parse(uri string) (Address, error) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return nil, fmt.Errorf("%w: URI %q does not use the %s scheme", naverrors.ErrAddress, uri, Scheme)
	}
	if rest == SpecsName {
		return SpecsList{}, nil
	}

	segments := strings.Split(rest, "/")
	if len(segments) < 2 || segments[0] == "" {
		return nil, fmt.Errorf("%w: URI %q does not match any address shape", naverrors.ErrAddress, uri)
	}
	spec := segments[0]

	switch segments[1] {
	case "paths":
		switch len(segments) {
		case 2:
			// openapi://{spec}/paths: the top-level field listing.
			return TopLevelField{Spec: spec, Field: "paths"}, nil
		case 3:
			path, err := DecodePath(segments[2])
			if err != nil {
				return nil, err
			}
			return PathItemList{Spec: spec, Path: path}, nil
		case 4:
			path, err := DecodePath(segments[2])
			if err != nil {
				return nil, err
			}
			methods, err := splitSelector(segments[3], "method", true)
			if err != nil {
				return nil, err
			}
			return OperationDetail{Spec: spec, Path: path, Methods: methods}, nil
		}

	case "components":
		switch len(segments) {
		case 2:
			return TopLevelField{Spec: spec, Field: "components"}, nil
		case 3:
			return ComponentList{Spec: spec, Type: segments[2]}, nil
		case 4:
			names, err := splitSelector(segments[3], "name", false)
			if err != nil {
				return nil, err
			}
			return ComponentDetail{Spec: spec, Type: segments[2], Names: names}, nil
		}

	default:
		if len(segments) == 2 && segments[1] != "" {
			return TopLevelField{Spec: spec, Field: segments[1]}, nil
		}
	}

	return nil, fmt.Errorf("%w: URI %q does not match any address shape", naverrors.ErrAddress, uri)
}

// splitSelector parses an exploded trailing segment: a comma-separated list
// whose elements are independently trimmed and, for methods, lower-cased.
// Zero non-empty elements after trimming is an EmptySelectorError.
func splitSelector(raw, kind string, lowercase bool) ([]string, error) {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lowercase {
			part = strings.ToLower(part)
		}
		values = append(values, part)
	}
	if len(values) == 0 {
		return nil, &naverrors.EmptySelectorError{Kind: kind}
	}
	return values, nil
}
