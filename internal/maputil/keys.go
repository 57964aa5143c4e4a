// Package maputil provides small helpers for working with maps.
package maputil

import "sort"

// SortedKeys returns the keys of a string-keyed map in sorted order.
// Returns an empty slice (never nil) for empty or nil maps.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
