// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package alleq

import "fmt"

// Message is a failure message that is rendered only if the assertion
// actually fails. The zero value renders as no message.
type Message struct {
	fn func() string
}

// Msgf captures a Sprintf template and its arguments, deferring the
// formatting cost to the failure path.
func Msgf(format string, args ...any) Message {
	return Message{fn: func() string {
		return fmt.Sprintf(format, args...)
	}}
}

// MsgFn defers the whole message computation to the failure path.
func MsgFn(fn func() string) Message {
	return Message{fn: fn}
}

// String implements fmt.Stringer so a Message rides through testify's
// msgAndArgs unevaluated until a failure is actually reported.
func (m Message) String() string {
	if m.fn == nil {
		return ""
	}
	return m.fn()
}
