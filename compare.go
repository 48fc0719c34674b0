// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package alleq

// firstMismatch walks the tail in order and compares each element against
// anchor, one == check per element, never all pairs. It returns the 1-based
// position of the first element that differs and the element itself, or
// (0, zero value) when the whole tail matches.
func firstMismatch[T comparable](anchor, second T, rest []T) (int, T) {
	if anchor != second {
		return 1, second
	}
	for i, v := range rest {
		if anchor != v {
			return i + 2, v
		}
	}
	var zero T
	return 0, zero
}

// firstMismatchFunc is firstMismatch under a caller-supplied relation.
// eq always receives anchor as its first argument.
func firstMismatchFunc[T any](eq func(a, b T) bool, anchor, second T, rest []T) (int, T) {
	if !eq(anchor, second) {
		return 1, second
	}
	for i, v := range rest {
		if !eq(anchor, v) {
			return i + 2, v
		}
	}
	var zero T
	return 0, zero
}

// firstMismatchFn is firstMismatch over deferred values. Each producer is
// invoked right before its comparison, so producers past the first mismatch
// are never invoked.
func firstMismatchFn[T comparable](anchor T, second func() T, rest []func() T) (int, T) {
	if v := second(); anchor != v {
		return 1, v
	}
	for i, p := range rest {
		if v := p(); anchor != v {
			return i + 2, v
		}
	}
	var zero T
	return 0, zero
}
