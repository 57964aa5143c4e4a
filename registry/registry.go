// Package registry holds dereferenced specification documents keyed by a
// stable slug derived from each document's title.
//
// A Registry is built once during startup load and is immutable afterwards;
// request handlers only read from it, so concurrent resolutions need no
// locking.
package registry

import (
	"log/slog"

	"github.com/domaspe/mcp-openapi-schema-explorer/internal/naming"
	"github.com/domaspe/mcp-openapi-schema-explorer/naverrors"
	"github.com/domaspe/mcp-openapi-schema-explorer/parser"
)

// Entry describes one registered specification.
type Entry struct {
	// Slug is the registry key, derived from the document title.
	Slug string
	// Title, Version, and Description come from the document's info object.
	Title       string
	Version     string
	Description string
	// PathCount is the number of declared paths.
	PathCount int
	// Document is the dereferenced document.
	Document *parser.Document
}

// Registry resolves slugs to their documents. Write-once during startup,
// read-many afterwards.
type Registry struct {
	order   []string
	entries map[string]*Entry
}

// New builds a registry from startup load results, in load order. When two
// documents slugify to the same value the first loaded wins and the later
// one is rejected with a warning.
func New(results ...*parser.LoadResult) *Registry {
	r := &Registry{entries: make(map[string]*Entry, len(results))}
	for _, result := range results {
		doc := result.Document
		slug := naming.Slug(doc.Info.Title, result.Source)

		if existing, ok := r.entries[slug]; ok {
			slog.Warn("duplicate spec slug, keeping first loaded",
				"slug", slug,
				"kept", existing.Title,
				"rejected", result.Source)
			continue
		}

		r.order = append(r.order, slug)
		r.entries[slug] = &Entry{
			Slug:        slug,
			Title:       doc.Info.Title,
			Version:     doc.Info.Version,
			Description: doc.Info.Description,
			PathCount:   doc.Paths.Len(),
			Document:    doc,
		}
	}
	return r
}

// Get resolves a slug to its document.
func (r *Registry) Get(slug string) (*parser.Document, error) {
	entry, ok := r.entries[slug]
	if !ok {
		return nil, &naverrors.NotFoundError{Slug: slug, Available: r.Slugs()}
	}
	return entry.Document, nil
}

// List returns all entries in insertion order.
func (r *Registry) List() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, slug := range r.order {
		entries = append(entries, *r.entries[slug])
	}
	return entries
}

// Slugs returns all registered slugs in insertion order.
func (r *Registry) Slugs() []string {
	slugs := make([]string, len(r.order))
	copy(slugs, r.order)
	return slugs
}

// Len returns the number of registered specs.
func (r *Registry) Len() int {
	return len(r.order)
}
