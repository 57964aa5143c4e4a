// Package completer computes candidate values for partially-bound URI
// template variables, taking sibling bindings into account.
//
// Every completion is a fresh, finite computation over the immutable
// registry; there is no cached cursor and nothing to restart.
package completer

import (
	"github.com/domaspe/mcp-openapi-schema-explorer/address"
	"github.com/domaspe/mcp-openapi-schema-explorer/internal/httputil"
	"github.com/domaspe/mcp-openapi-schema-explorer/navigator"
	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
	"github.com/domaspe/mcp-openapi-schema-explorer/registry"
)

// fieldCompletions is the fixed top-level field enumeration, offered
// regardless of document content.
var fieldCompletions = []string{"info", "servers", "paths", "components", "tags", "externalDocs"}

// Completer proposes valid next path segments for the openapi:// templates.
type Completer struct {
	reg *registry.Registry
}

// New creates a completer over a registry.
func New(reg *registry.Registry) *Completer {
	return &Completer{reg: reg}
}

// Complete returns the ordered candidate set for one template variable.
// bindings carries sibling variables already bound in the same template
// (notably specId). An unknown variable completes to nothing.
func (c *Completer) Complete(variable string, bindings map[string]string) []string {
	switch variable {
	case "specId":
		return c.reg.Slugs()
	case "field":
		return fieldCompletions
	case "path":
		return c.pathCompletions(bindings)
	case "method":
		return httputil.CanonicalMethods
	case "type", "componentType":
		return c.typeCompletions(bindings)
	case "name":
		return c.nameCompletions(bindings)
	default:
		return nil
	}
}

// boundDocument returns the document bound via bindings["specId"], falling
// back to the first registered spec.
func (c *Completer) boundDocument(bindings map[string]string) *parser.Document {
	slug := bindings["specId"]
	if slug == "" {
		slugs := c.reg.Slugs()
		if len(slugs) == 0 {
			return nil
		}
		slug = slugs[0]
	}
	doc, err := c.reg.Get(slug)
	if err != nil {
		return nil
	}
	return doc
}

func (c *Completer) pathCompletions(bindings map[string]string) []string {
	doc := c.boundDocument(bindings)
	if doc == nil {
		return nil
	}
	paths := doc.Paths.Keys()
	encoded := make([]string, len(paths))
	for i, p := range paths {
		encoded[i] = address.EncodePath(p)
	}
	return encoded
}

// typeCompletions returns the component categories actually present and
// non-empty in the bound spec, in the fixed category order.
func (c *Completer) typeCompletions(bindings map[string]string) []string {
	doc := c.boundDocument(bindings)
	if doc == nil {
		return nil
	}
	var types []string
	for _, typ := range navigator.ComponentTypes {
		if group, ok := doc.Components.Group(typ); ok && group.Len() > 0 {
			types = append(types, typ)
		}
	}
	return types
}

// nameCompletions is only offered when the bound spec has exactly one
// non-empty component category; with zero or several categories the name
// variable is ambiguous and the result is empty. This is a deliberate
// ambiguity-avoidance rule.
func (c *Completer) nameCompletions(bindings map[string]string) []string {
	doc := c.boundDocument(bindings)
	if doc == nil {
		return nil
	}
	var only *parser.ComponentGroup
	for _, typ := range doc.Components.Types() {
		group, ok := doc.Components.Group(typ)
		if !ok || group.Len() == 0 {
			continue
		}
		if only != nil {
			return nil
		}
		only = group
	}
	if only == nil {
		return nil
	}
	return only.Names()
}
