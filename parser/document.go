package parser

import (
	"go.yaml.in/yaml/v4"

	"github.com/domaspe/mcp-openapi-schema-explorer/internal/httputil"
	"github.com/domaspe/mcp-openapi-schema-explorer/internal/maputil"
)

// Document is a dereferenced OpenAPI v3 document. The navigational skeleton
// (paths, components, declared methods) is typed and order-preserving;
// operation and component payloads remain raw JSON-like subtrees so detail
// rendering passes them through unmodified.
//
// Documents are immutable after construction.
type Document struct {
	// OpenAPI is the declared specification version, e.g. "3.1.0".
	OpenAPI string
	// Info carries the identification fields used for registry entries.
	Info Info
	// Paths holds the declared path items in document order.
	Paths *PathMap
	// Components holds the declared component categories in document order.
	Components *ComponentMap

	raw map[string]any
}

// Info is the identification subset of a document's info object.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Field looks up a top-level document key case-sensitively and returns its
// raw value.
func (d *Document) Field(name string) (any, bool) {
	v, ok := d.raw[name]
	return v, ok
}

// PathMap is an order-preserving mapping from path string to PathItem.
type PathMap struct {
	keys  []string
	items map[string]*PathItem
}

// Len returns the number of declared paths.
func (m *PathMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the declared paths in document order.
func (m *PathMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Get returns the path item for a decoded, slash-prefixed path.
func (m *PathMap) Get(path string) (*PathItem, bool) {
	if m == nil {
		return nil, false
	}
	item, ok := m.items[path]
	return item, ok
}

// PathItem holds the operations declared on a single path, keyed by
// lowercase HTTP method. Keys outside the canonical method set (summary,
// parameters, extensions, ...) are not operations and are ignored.
type PathItem struct {
	ops map[string]map[string]any
	raw map[string]any
}

// DeclaredMethods returns the intersection of the path item's keys with the
// canonical method set, in canonical order. Source document ordering never
// leaks into listings or validation.
func (pi *PathItem) DeclaredMethods() []string {
	methods := make([]string, 0, len(pi.ops))
	for _, method := range httputil.CanonicalMethods {
		if _, ok := pi.ops[method]; ok {
			methods = append(methods, method)
		}
	}
	return methods
}

// Operation returns the raw operation object for a lowercase method name.
func (pi *PathItem) Operation(method string) (map[string]any, bool) {
	op, ok := pi.ops[method]
	return op, ok
}

// Raw returns the underlying path item object including non-operation keys.
func (pi *PathItem) Raw() map[string]any {
	return pi.raw
}

// ComponentMap is an order-preserving mapping from component category name
// to its named component objects.
type ComponentMap struct {
	keys   []string
	groups map[string]*ComponentGroup
}

// Types returns the component categories the document declares, in document
// order, including empty ones.
func (m *ComponentMap) Types() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Group returns the named components for a category.
func (m *ComponentMap) Group(componentType string) (*ComponentGroup, bool) {
	if m == nil {
		return nil, false
	}
	g, ok := m.groups[componentType]
	return g, ok
}

// ComponentGroup is an order-preserving mapping from component name to its
// raw component object.
type ComponentGroup struct {
	keys []string
	objs map[string]any
}

// Len returns the number of named components in the group.
func (g *ComponentGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Names returns the component names in document order.
func (g *ComponentGroup) Names() []string {
	if g == nil {
		return nil
	}
	return g.keys
}

// Get returns the raw component object for a name, case-sensitively.
func (g *ComponentGroup) Get(name string) (any, bool) {
	if g == nil {
		return nil, false
	}
	obj, ok := g.objs[name]
	return obj, ok
}

// OperationLabel returns a short human label for an operation: its summary,
// falling back to its operationId, falling back to nothing.
func OperationLabel(op map[string]any) string {
	if s, ok := op["summary"].(string); ok && s != "" {
		return s
	}
	if s, ok := op["operationId"].(string); ok && s != "" {
		return s
	}
	return ""
}

// docOrder records source key ordering for the two levels where document
// order is observable: the paths object and each components category.
type docOrder struct {
	paths          []string
	componentTypes []string
	componentNames map[string][]string
}

// scanKeyOrder extracts key ordering from the original document bytes via a
// yaml.Node parse. Dereferencing mutates plain maps, which do not preserve
// order, so ordering has to come from a second scan of the source bytes.
func scanKeyOrder(data []byte) *docOrder {
	order := &docOrder{componentNames: make(map[string][]string)}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return order
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return order
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return order
	}

	for key, val := range mappingPairs(top) {
		switch key {
		case "paths":
			order.paths = mappingKeys(val)
		case "components":
			for typ, group := range mappingPairs(val) {
				order.componentTypes = append(order.componentTypes, typ)
				order.componentNames[typ] = mappingKeys(group)
			}
		}
	}
	return order
}

// mappingPairs iterates a mapping node's key/value pairs in source order.
func mappingPairs(node *yaml.Node) func(yield func(string, *yaml.Node) bool) {
	return func(yield func(string, *yaml.Node) bool) {
		if node == nil || node.Kind != yaml.MappingNode {
			return
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if !yield(node.Content[i].Value, node.Content[i+1]) {
				return
			}
		}
	}
}

// mappingKeys returns a mapping node's keys in source order.
func mappingKeys(node *yaml.Node) []string {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return keys
}

// buildDocument assembles the typed document from a dereferenced raw tree and
// the key order scanned from the source bytes.
func buildDocument(raw map[string]any, order *docOrder) *Document {
	doc := &Document{raw: raw}
	doc.OpenAPI, _ = raw["openapi"].(string)

	if info, ok := raw["info"].(map[string]any); ok {
		doc.Info.Title, _ = info["title"].(string)
		doc.Info.Version, _ = info["version"].(string)
		doc.Info.Description, _ = info["description"].(string)
	}

	if paths, ok := raw["paths"].(map[string]any); ok {
		doc.Paths = buildPathMap(paths, order.paths)
	}
	if components, ok := raw["components"].(map[string]any); ok {
		doc.Components = buildComponentMap(components, order)
	}
	return doc
}

func buildPathMap(paths map[string]any, keyOrder []string) *PathMap {
	m := &PathMap{items: make(map[string]*PathItem, len(paths))}
	for _, path := range orderedKeys(paths, keyOrder) {
		rawItem, ok := paths[path].(map[string]any)
		if !ok {
			continue
		}
		item := &PathItem{ops: make(map[string]map[string]any), raw: rawItem}
		for key, val := range rawItem {
			if !httputil.IsCanonicalMethod(key) {
				continue
			}
			if op, ok := val.(map[string]any); ok {
				item.ops[key] = op
			}
		}
		m.keys = append(m.keys, path)
		m.items[path] = item
	}
	return m
}

func buildComponentMap(components map[string]any, order *docOrder) *ComponentMap {
	m := &ComponentMap{groups: make(map[string]*ComponentGroup, len(components))}
	for _, typ := range orderedKeys(components, order.componentTypes) {
		rawGroup, ok := components[typ].(map[string]any)
		if !ok {
			continue
		}
		group := &ComponentGroup{objs: make(map[string]any, len(rawGroup))}
		for _, name := range orderedKeys(rawGroup, order.componentNames[typ]) {
			group.keys = append(group.keys, name)
			group.objs[name] = rawGroup[name]
		}
		m.keys = append(m.keys, typ)
		m.groups[typ] = group
	}
	return m
}

// orderedKeys returns m's keys following keyOrder where possible. Keys the
// order scan missed are appended sorted so iteration stays deterministic.
func orderedKeys(m map[string]any, keyOrder []string) []string {
	keys := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range keyOrder {
		if _, ok := m[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	if len(keys) < len(m) {
		for _, k := range maputil.SortedKeys(m) {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
