// Package form holds the local edit buffers the builder screens type
// into. A buffer seeds from a loaded entity (or defaults, for creation)
// and converts back to a create or update payload on submit.
//
// List-valued fields share two behaviors: adding trims the pending input
// and silently ignores a blank, and removal is by position, not identity,
// since duplicate values are indistinguishable.
package form

import "strings"

// appendNonBlank appends the trimmed value, or returns the list unchanged
// when the value trims to nothing.
func appendNonBlank(list []string, value string) ([]string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return list, false
	}
	return append(list, trimmed), true
}

// removeAt removes the element at i without reordering the rest. An index
// out of range is a no-op.
func removeAt[T any](list []T, i int) []T {
	if i < 0 || i >= len(list) {
		return list
	}
	return append(list[:i], list[i+1:]...)
}
