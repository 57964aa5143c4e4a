// Package httputil provides HTTP method constants and helpers shared by the
// address grammar, the resolution engine, and completions.
package httputil

import "strings"

// HTTP method constants, lowercase as they appear as OpenAPI path item keys.
const (
	MethodGet     = "get"
	MethodPost    = "post"
	MethodPut     = "put"
	MethodDelete  = "delete"
	MethodPatch   = "patch"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodTrace   = "trace"
)

// CanonicalMethods is the recognised HTTP method set in canonical order.
// Listings and validation report methods in this order regardless of how the
// source document orders its path item keys. Any path item key outside this
// set is ignored.
var CanonicalMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodOptions,
	MethodHead,
	MethodTrace,
}

var canonicalSet = func() map[string]bool {
	m := make(map[string]bool, len(CanonicalMethods))
	for _, method := range CanonicalMethods {
		m[method] = true
	}
	return m
}()

// IsCanonicalMethod reports whether the lowercase method name is a member of
// the canonical method set.
func IsCanonicalMethod(method string) bool {
	return canonicalSet[method]
}

// NormalizeMethod lowercases and trims a method token from the wire.
func NormalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
