// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

// Package alleq asserts that any number of values are all equal to each other.
//
// Equal(t, a, b, c) compares b and c against a in order and fails the test at
// the first value that differs, reporting which position diverged and from
// what. Exactly one equality check is issued per extra value, comparison
// stops at the first mismatch, and a custom failure message is rendered only
// when the assertion actually fails.
//
// With exactly two values Equal is the same as require.Equal.
package alleq

import (
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of testing.TB needed to fail a test.
// *testing.T, *testing.B and *testing.F all satisfy it.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper = interface {
	Helper()
}

// Equal asserts that all given values are equal to first.
func Equal[T comparable](tb TestingT, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	if len(rest) == 0 {
		require.Equal(tb, first, second)
		return
	}
	if pos, bad := firstMismatch(first, second, rest); pos != 0 {
		reportMismatch(tb, pos, first, bad, Message{})
	}
}

// Equalf is Equal with a custom failure message. The message is rendered
// only on the failure path, never on success.
func Equalf[T comparable](tb TestingT, msg Message, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	if len(rest) == 0 {
		require.Equal(tb, first, second, msg)
		return
	}
	if pos, bad := firstMismatch(first, second, rest); pos != 0 {
		reportMismatch(tb, pos, first, bad, msg)
	}
}

// EqualFn is Equal over deferred values. Producers are invoked left to
// right, once each; producers after the first mismatch are never invoked.
func EqualFn[T comparable](tb TestingT, first, second func() T, rest ...func() T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	anchor := first()
	if len(rest) == 0 {
		require.Equal(tb, anchor, second())
		return
	}
	if pos, bad := firstMismatchFn(anchor, second, rest); pos != 0 {
		reportMismatch(tb, pos, anchor, bad, Message{})
	}
}

// EqualFnf is EqualFn with a custom failure message.
func EqualFnf[T comparable](tb TestingT, msg Message, first, second func() T, rest ...func() T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	anchor := first()
	if len(rest) == 0 {
		require.Equal(tb, anchor, second(), msg)
		return
	}
	if pos, bad := firstMismatchFn(anchor, second, rest); pos != 0 {
		reportMismatch(tb, pos, anchor, bad, msg)
	}
}

// EqualFunc is Equal under a caller-supplied equality relation, for types
// that are not comparable or whose equality is not ==. eq is called with
// first as its first argument, exactly once per remaining value.
func EqualFunc[T any](tb TestingT, eq func(a, b T) bool, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	if pos, bad := firstMismatchFunc(eq, first, second, rest); pos != 0 {
		reportMismatch(tb, pos, first, bad, Message{})
	}
}

// EqualFuncf is EqualFunc with a custom failure message.
func EqualFuncf[T any](tb TestingT, msg Message, eq func(a, b T) bool, first, second T, rest ...T) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}
	if pos, bad := firstMismatchFunc(eq, first, second, rest); pos != 0 {
		reportMismatch(tb, pos, first, bad, msg)
	}
}
