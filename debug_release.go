// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

//go:build release

package alleq

func DebugEqual[T comparable](tb TestingT, first, second T, rest ...T)               {}
func DebugEqualf[T comparable](tb TestingT, msg Message, first, second T, rest ...T) {}

func DebugEqualFn[T comparable](tb TestingT, first, second func() T, rest ...func() T) {}
func DebugEqualFnf[T comparable](tb TestingT, msg Message, first, second func() T, rest ...func() T) {
}
