// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build !release

package alleq

// Debug variants of the Equal family. Builds tagged `release` compile these
// to empty bodies, so checks that are too expensive to keep in production
// test runs can stay in place. Note that Go still evaluates plain value
// arguments at the call site even then; use DebugEqualFn when the values
// themselves are expensive to produce.

func DebugEqual[T comparable](tb TestingT, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	Equal(tb, first, second, rest...)
}

func DebugEqualf[T comparable](tb TestingT, msg Message, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	Equalf(tb, msg, first, second, rest...)
}

func DebugEqualFn[T comparable](tb TestingT, first, second func() T, rest ...func() T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	EqualFn(tb, first, second, rest...)
}

func DebugEqualFnf[T comparable](tb TestingT, msg Message, first, second func() T, rest ...func() T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	EqualFnf(tb, msg, first, second, rest...)
}
