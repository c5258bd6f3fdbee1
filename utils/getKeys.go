package utils

import (
	"maps"
	"slices"
)

// GetKeys returns the keys of m in ascending order. It accepts named map
// types like http.Header.
func GetKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
