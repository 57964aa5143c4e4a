// Package navigator resolves parsed addresses against registered documents.
//
// Resolution is a single synchronous, read-only pass over an immutable
// document tree: it validates each selector against what the document
// declares and partitions multi-value requests into valid and invalid keys.
// The same address resolved against the same document always yields the same
// result.
package navigator

import (
	"github.com/domaspe/mcp-openapi-schema-explorer/address"
	"github.com/domaspe/mcp-openapi-schema-explorer/internal/httputil"
	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
	"github.com/domaspe/mcp-openapi-schema-explorer/registry"
)

// ComponentTypes is the fixed allow-list of OpenAPI component categories.
// The set is closed by the OpenAPI specification, not extensible at runtime.
var ComponentTypes = []string{
	"schemas",
	"responses",
	"parameters",
	"examples",
	"requestBodies",
	"headers",
	"securitySchemes",
	"links",
	"callbacks",
}

var componentTypeSet = func() map[string]bool {
	m := make(map[string]bool, len(ComponentTypes))
	for _, t := range ComponentTypes {
		m[t] = true
	}
	return m
}()

// IsComponentType reports whether name is a member of the fixed component
// category set. The check is case-sensitive.
func IsComponentType(name string) bool {
	return componentTypeSet[name]
}

// Kind discriminates the resolution result variants.
type Kind int

const (
	// KindSpecsList is the registry listing.
	KindSpecsList Kind = iota
	// KindFieldValue is a raw top-level field value.
	KindFieldValue
	// KindPathsList is the listing of all declared paths.
	KindPathsList
	// KindComponentsList is the listing of declared component categories.
	KindComponentsList
	// KindPathItem is the method listing of one path.
	KindPathItem
	// KindOperations is one or more resolved operations.
	KindOperations
	// KindComponentNames is the name listing of one component category.
	KindComponentNames
	// KindComponents is one or more resolved named components.
	KindComponents
)

// Entry is one valid (key, resolvedObject) pair from a multi-value request,
// in request order.
type Entry struct {
	Key   string
	Value any
}

// Resolution is a successfully resolved address. Which fields are populated
// depends on Kind.
type Resolution struct {
	Kind Kind
	// Addr is the address that was resolved.
	Addr address.Address

	// Specs holds the registry entries for KindSpecsList.
	Specs []registry.Entry
	// Doc is the resolved document for every spec-scoped kind.
	Doc *parser.Document
	// Value is the raw field value for KindFieldValue.
	Value any
	// Path and Item are set for KindPathItem and KindOperations.
	Path string
	Item *parser.PathItem
	// ComponentType and Group are set for KindComponentNames and KindComponents.
	ComponentType string
	Group         *parser.ComponentGroup
	// Valid holds the partitioned valid entries for KindOperations and
	// KindComponents, in request order. Requested keys that matched nothing
	// are silently dropped when at least one key was valid.
	Valid []Entry
}

// Engine resolves addresses against a registry. It holds no mutable state;
// one engine serves concurrent resolutions.
type Engine struct {
	reg *registry.Registry
}

// New creates an engine over a registry.
func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// Resolve walks the document graph for the given address. Every failure is a
// deterministic function of the input, typed for rendering.
func (e *Engine) Resolve(addr address.Address) (*Resolution, error) {
	switch a := addr.(type) {
	case address.SpecsList:
		return &Resolution{Kind: KindSpecsList, Addr: a, Specs: e.reg.List()}, nil
	case address.TopLevelField:
		return e.resolveField(a)
	case address.PathItemList:
		return e.resolvePathItem(a)
	case address.OperationDetail:
		return e.resolveOperations(a)
	case address.ComponentList:
		return e.resolveComponentNames(a)
	case address.ComponentDetail:
		return e.resolveComponents(a)
	default:
		return nil, &naverrors.FieldNotFoundError{Field: addr.Suffix()}
	}
}

func (e *Engine) resolveField(a address.TopLevelField) (*Resolution, error) {
	doc, err := e.reg.Get(a.Spec)
	if err != nil {
		return nil, err
	}

	// paths and components route to list projections instead of raw values.
	switch a.Field {
	case "paths":
		return &Resolution{Kind: KindPathsList, Addr: a, Doc: doc}, nil
	case "components":
		return &Resolution{Kind: KindComponentsList, Addr: a, Doc: doc}, nil
	}

	value, ok := doc.Field(a.Field)
	if !ok {
		return nil, &naverrors.FieldNotFoundError{Field: a.Field}
	}
	return &Resolution{Kind: KindFieldValue, Addr: a, Doc: doc, Value: value}, nil
}

func (e *Engine) resolvePathItem(a address.PathItemList) (*Resolution, error) {
	doc, item, err := e.lookupPath(a.Spec, a.Path)
	if err != nil {
		return nil, err
	}
	return &Resolution{Kind: KindPathItem, Addr: a, Doc: doc, Path: a.Path, Item: item}, nil
}

func (e *Engine) resolveOperations(a address.OperationDetail) (*Resolution, error) {
	doc, item, err := e.lookupPath(a.Spec, a.Path)
	if err != nil {
		return nil, err
	}

	valid := make([]Entry, 0, len(a.Methods))
	for _, method := range a.Methods {
		if op, ok := item.Operation(method); ok && httputil.IsCanonicalMethod(method) {
			valid = append(valid, Entry{Key: method, Value: op})
		}
	}
	if len(valid) == 0 {
		return nil, &naverrors.NoValidMethodsError{
			Path:      a.Path,
			Requested: a.Methods,
			Available: item.DeclaredMethods(),
		}
	}
	return &Resolution{Kind: KindOperations, Addr: a, Doc: doc, Path: a.Path, Item: item, Valid: valid}, nil
}

func (e *Engine) resolveComponentNames(a address.ComponentList) (*Resolution, error) {
	doc, group, err := e.lookupComponentGroup(a.Spec, a.Type)
	if err != nil {
		return nil, err
	}
	return &Resolution{Kind: KindComponentNames, Addr: a, Doc: doc, ComponentType: a.Type, Group: group}, nil
}

func (e *Engine) resolveComponents(a address.ComponentDetail) (*Resolution, error) {
	doc, group, err := e.lookupComponentGroup(a.Spec, a.Type)
	if err != nil {
		return nil, err
	}

	valid := make([]Entry, 0, len(a.Names))
	for _, name := range a.Names {
		if obj, ok := group.Get(name); ok {
			valid = append(valid, Entry{Key: name, Value: obj})
		}
	}
	if len(valid) == 0 {
		return nil, &naverrors.NoValidNamesError{
			Type:      a.Type,
			Requested: a.Names,
			Available: group.Names(),
		}
	}
	return &Resolution{Kind: KindComponents, Addr: a, Doc: doc, ComponentType: a.Type, Group: group, Valid: valid}, nil
}

func (e *Engine) lookupPath(spec, path string) (*parser.Document, *parser.PathItem, error) {
	doc, err := e.reg.Get(spec)
	if err != nil {
		return nil, nil, err
	}
	item, ok := doc.Paths.Get(address.NormalizePath(path))
	if !ok {
		return nil, nil, &naverrors.PathNotFoundError{Path: path}
	}
	return doc, item, nil
}

// lookupComponentGroup validates the component type before touching the
// registry: an invalid type never loads a document.
func (e *Engine) lookupComponentGroup(spec, componentType string) (*parser.Document, *parser.ComponentGroup, error) {
	if !IsComponentType(componentType) {
		return nil, nil, &naverrors.InvalidComponentTypeError{Type: componentType, Valid: ComponentTypes}
	}

	doc, err := e.reg.Get(spec)
	if err != nil {
		return nil, nil, err
	}

	group, ok := doc.Components.Group(componentType)
	if !ok {
		return nil, nil, &naverrors.ComponentTypeNotFoundError{
			Type:      componentType,
			Available: doc.Components.Types(),
		}
	}
	if group.Len() == 0 {
		return nil, nil, &naverrors.NoComponentsOfTypeError{Type: componentType}
	}
	return doc, group, nil
}
