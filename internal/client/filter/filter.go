// Package filter derives the visible rows of a table from a search term.
package filter

import "strings"

// Searchable exposes the values a search term is matched against.
type Searchable interface {
	SearchFields() []string
}

// Apply returns the records matching term, in their original order.
// A blank term yields a positional copy of committed. Matching is a
// case-insensitive substring test against any search field.
func Apply[T Searchable](committed []T, term string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]T, len(committed))
		copy(out, committed)
		return out
	}

	out := make([]T, 0, len(committed))
	for _, r := range committed {
		if Match(r, term) {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether an already lower-cased term occurs in any field of r.
func Match[T Searchable](r T, term string) bool {
	for _, f := range r.SearchFields() {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
