// Package options filters and indexes the candidate option list for a
// select instance.
package options

import "strings"

// MatchFunc reports whether an option matches a search query.
type MatchFunc[A any] func(query string, option A) bool

// Substring returns the default match function: a case-insensitive substring
// check against the option's label.
func Substring[A any](label func(A) string) MatchFunc[A] {
	return func(query string, option A) bool {
		return strings.Contains(strings.ToLower(label(option)), strings.ToLower(query))
	}
}

// Visible returns the options that may be rendered and focused right now:
// already-selected options are removed by equality, then the match function
// is applied unless the query is empty. Positions in the returned slice are
// the dense indices that focus and element ids address; they are recomputed
// on every call and are not stable across query or selection changes.
func Visible[A comparable](all, selected []A, query string, match MatchFunc[A]) []A {
	visible := make([]A, 0, len(all))
	for _, opt := range all {
		if contains(selected, opt) {
			continue
		}
		if query != "" && match != nil && !match(query, opt) {
			continue
		}
		visible = append(visible, opt)
	}
	return visible
}

// ClampIndex clamps idx into [0, count-1]. A non-positive count yields 0;
// the caller treats the index as irrelevant when nothing is visible.
func ClampIndex(idx, count int) int {
	if count <= 0 || idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

func contains[A comparable](list []A, v A) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
