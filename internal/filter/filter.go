// Package filter implements the view-only search applied to entity tables.
package filter

import "strings"

// Match returns the subset of items with at least one extracted field
// containing the query, case-insensitively. The source slice is never
// mutated and input order is preserved; an empty query yields a fresh copy
// of the full list. Extractors may return empty strings for missing fields,
// which simply never match.
func Match[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if f == "" {
				continue
			}
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
