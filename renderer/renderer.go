// Package renderer turns resolved nodes into an ordered sequence of abstract
// result items, independent of the final text encoding.
//
// Two modes exist per resolved node: list mode, a plain-text summary of a
// collection of children with a navigation hint, and detail mode, the
// resolved object passed through unmodified for serialization. A multi-value
// request always produces one detail item per valid key, each independently
// addressable by its own full URI.
package renderer

import (
	"fmt"
	"strings"

	"github.com/domaspe/mcp-openapi-schema-explorer/address"
	"github.com/domaspe/mcp-openapi-schema-explorer/navigator"
	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
)

// ResultItem is the node the formatter consumes. It carries no knowledge of
// JSON or YAML text shape.
type ResultItem struct {
	// URISuffix is the item's address without the scheme prefix.
	URISuffix string
	// Payload is the item's content: a prebuilt plain-text string in list
	// mode, the resolved object itself in detail mode, nil for errors.
	Payload any
	// IsError marks a failed resolution rendered as a single list-mode item.
	IsError bool
	// ErrorText is the plain-text message when IsError is set.
	ErrorText string
	// RenderAsList selects list mode (text/plain) over detail mode.
	RenderAsList bool
}

// URI returns the item's fully qualified address.
func (item ResultItem) URI() string {
	return address.Scheme + item.URISuffix
}

// Project turns a resolution into its result items. List kinds yield exactly
// one item; multi-value detail kinds yield one item per valid key.
func Project(res *navigator.Resolution) []ResultItem {
	switch res.Kind {
	case navigator.KindSpecsList:
		return []ResultItem{projectSpecsList(res)}
	case navigator.KindFieldValue:
		return []ResultItem{{
			URISuffix: res.Addr.Suffix(),
			Payload:   res.Value,
		}}
	case navigator.KindPathsList:
		return []ResultItem{projectPathsList(res)}
	case navigator.KindComponentsList:
		return []ResultItem{projectComponentsList(res)}
	case navigator.KindPathItem:
		return []ResultItem{projectPathItem(res)}
	case navigator.KindOperations:
		items := make([]ResultItem, 0, len(res.Valid))
		for _, entry := range res.Valid {
			detail := address.OperationDetail{
				Spec:    specOf(res.Addr),
				Path:    res.Path,
				Methods: []string{entry.Key},
			}
			items = append(items, ResultItem{URISuffix: detail.Suffix(), Payload: entry.Value})
		}
		return items
	case navigator.KindComponentNames:
		return []ResultItem{projectComponentNames(res)}
	case navigator.KindComponents:
		items := make([]ResultItem, 0, len(res.Valid))
		for _, entry := range res.Valid {
			detail := address.ComponentDetail{
				Spec:  specOf(res.Addr),
				Type:  res.ComponentType,
				Names: []string{entry.Key},
			}
			items = append(items, ResultItem{URISuffix: detail.Suffix(), Payload: entry.Value})
		}
		return items
	default:
		return []ResultItem{ProjectError(res.Addr, fmt.Errorf("unrenderable resolution kind %d", res.Kind))}
	}
}

// ProjectError converts any resolution failure into a single list-mode error
// item addressed at the best-available URI suffix for the failed request,
// including any requested-but-unresolved selector values.
func ProjectError(addr address.Address, err error) ResultItem {
	suffix := address.SpecsName
	if addr != nil {
		suffix = addr.Suffix()
	}
	return ResultItem{
		URISuffix:    suffix,
		IsError:      true,
		ErrorText:    err.Error(),
		RenderAsList: true,
	}
}

func projectSpecsList(res *navigator.Resolution) ResultItem {
	var b strings.Builder
	b.WriteString("Available specifications:\n")
	for _, entry := range res.Specs {
		fmt.Fprintf(&b, "- %s: %s (version %s, %d paths)\n", entry.Slug, entry.Title, entry.Version, entry.PathCount)
	}

	example := ""
	if len(res.Specs) > 0 {
		example = address.TopLevelField{Spec: res.Specs[0].Slug, Field: "info"}.URI()
	}
	writeHint(&b, "openapi://{specId}/{field}", "explore a specification", example)

	return ResultItem{
		URISuffix:    address.SpecsName,
		Payload:      b.String(),
		RenderAsList: true,
	}
}

func projectPathsList(res *navigator.Resolution) ResultItem {
	spec := specOf(res.Addr)

	var b strings.Builder
	for _, path := range res.Doc.Paths.Keys() {
		item, _ := res.Doc.Paths.Get(path)
		methods := item.DeclaredMethods()
		upper := make([]string, len(methods))
		for i, m := range methods {
			upper[i] = strings.ToUpper(m)
		}
		fmt.Fprintf(&b, "%s %s\n", strings.Join(upper, " "), path)
	}

	example := ""
	if keys := res.Doc.Paths.Keys(); len(keys) > 0 {
		example = address.PathItemList{Spec: spec, Path: keys[0]}.URI()
	}
	writeHint(&b, "openapi://{specId}/paths/{encodedPath}", "list the operations on a path", example)

	return ResultItem{
		URISuffix:    res.Addr.Suffix(),
		Payload:      b.String(),
		RenderAsList: true,
	}
}

func projectComponentsList(res *navigator.Resolution) ResultItem {
	spec := specOf(res.Addr)

	var b strings.Builder
	for _, typ := range res.Doc.Components.Types() {
		group, _ := res.Doc.Components.Group(typ)
		fmt.Fprintf(&b, "- %s (%d)\n", typ, group.Len())
	}

	example := ""
	if types := res.Doc.Components.Types(); len(types) > 0 {
		example = address.ComponentList{Spec: spec, Type: types[0]}.URI()
	}
	writeHint(&b, "openapi://{specId}/components/{type}", "list the components of a type", example)

	return ResultItem{
		URISuffix:    res.Addr.Suffix(),
		Payload:      b.String(),
		RenderAsList: true,
	}
}

func projectPathItem(res *navigator.Resolution) ResultItem {
	spec := specOf(res.Addr)
	methods := res.Item.DeclaredMethods()

	var b strings.Builder
	for _, method := range methods {
		op, _ := res.Item.Operation(method)
		if label := parser.OperationLabel(op); label != "" {
			fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(method), label)
		} else {
			fmt.Fprintf(&b, "%s\n", strings.ToUpper(method))
		}
	}

	encoded := address.EncodePath(res.Path)
	pattern := fmt.Sprintf("openapi://%s/paths/%s/{method}", spec, encoded)
	example := ""
	if len(methods) > 0 {
		example = address.OperationDetail{Spec: spec, Path: res.Path, Methods: methods[:1]}.URI()
	}
	writeHint(&b, pattern, "view operation details", example)

	return ResultItem{
		URISuffix:    res.Addr.Suffix(),
		Payload:      b.String(),
		RenderAsList: true,
	}
}

func projectComponentNames(res *navigator.Resolution) ResultItem {
	spec := specOf(res.Addr)
	names := res.Group.Names()

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	pattern := fmt.Sprintf("openapi://%s/components/%s/{name}", spec, res.ComponentType)
	example := ""
	if len(names) > 0 {
		example = address.ComponentDetail{Spec: spec, Type: res.ComponentType, Names: names[:1]}.URI()
	}
	writeHint(&b, pattern, "view component details", example)

	return ResultItem{
		URISuffix:    res.Addr.Suffix(),
		Payload:      b.String(),
		RenderAsList: true,
	}
}

// writeHint appends the deterministic next-level hint line: the URI pattern
// and, when the list is non-empty, a concrete example from its first item.
func writeHint(b *strings.Builder, pattern, action, example string) {
	fmt.Fprintf(b, "\nHint: Use '%s' to %s.", pattern, action)
	if example != "" {
		fmt.Fprintf(b, " Example: %s", example)
	}
	b.WriteString("\n")
}

// specOf extracts the spec slug from any spec-scoped address.
func specOf(addr address.Address) string {
	switch a := addr.(type) {
	case address.TopLevelField:
		return a.Spec
	case address.PathItemList:
		return a.Spec
	case address.OperationDetail:
		return a.Spec
	case address.ComponentList:
		return a.Spec
	case address.ComponentDetail:
		return a.Spec
	default:
		return ""
	}
}
