// Package naming provides slug derivation for registry keys.
//
// Two strategies exist:
//   - Title slugs: the primary registry key, derived from a document's
//     info.title with a fixed normative transformation.
//   - File slugs: the fallback when a title slugs to nothing, built on
//     gosimple/slug from the source file or URL basename.
package naming

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	goslug "github.com/gosimple/slug"
)

// DefaultSlug is the last-resort registry key when neither the title nor the
// source filename yields a usable slug.
const DefaultSlug = "spec"

var (
	separators = regexp.MustCompile(`[\s_]+`)
	nonWord    = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
)

// TitleSlug derives a registry slug from a document title: lowercase,
// whitespace and underscores collapsed to single hyphens, all other non-word
// characters stripped, leading and trailing hyphens trimmed.
//
// The transformation is deterministic; two titles that normalize to the same
// slug collide and the registry keeps the first one loaded.
func TitleSlug(title string) string {
	s := strings.ToLower(title)
	s = separators.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileSlug derives a fallback slug from a source file path or URL, using the
// basename with its extension stripped.
func FileSlug(source string) string {
	base := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" {
		base = u.Path
	}
	base = filepath.Base(base)
	base = strings.TrimSuffix(base, path.Ext(base))
	return goslug.Make(base)
}

// Slug derives the registry key for a document: the title slug when
// non-empty, otherwise the file slug, otherwise DefaultSlug.
func Slug(title, source string) string {
	if s := TitleSlug(title); s != "" {
		return s
	}
	if s := FileSlug(source); s != "" {
		return s
	}
	return DefaultSlug
}
