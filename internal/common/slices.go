package common

import (
	"cmp"
	"slices"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// AppendUnique appends v to s unless s already contains it.
// Reports whether v was appended.
func AppendUnique[S ~[]E, E comparable](s S, v E) (S, bool) {
	if slices.Contains(s, v) {
		return s, false
	}

	return append(s, v), true
}

// Set builds a membership set from the given values.
func Set[K comparable](values ...K) map[K]struct{} {
	set := make(map[K]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
