// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package alleq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// reportMismatch renders the positional diagnostic and aborts the test.
// The anchor's 0 label is right-aligned under the tail position label:
//
//	equality assertion failed at position 0 and 12
//	  0: `1`,
//	 12: `0`: optional custom message
//
// Values are rendered with %#v. Under a real *testing.T this never returns.
func reportMismatch(tb TestingT, pos int, anchor, mismatch any, msg Message) {
	if h, ok := tb.(tHelper); ok {
		h.Helper()
	}

	index := strconv.Itoa(pos)
	pad := strings.Repeat(" ", len(index))

	var sb strings.Builder
	sb.WriteString(color.RedString("equality assertion failed at position 0 and %s", index))
	fmt.Fprintf(&sb, "\n%s0: `%#v`,\n %s: `%#v`", pad, anchor, index, mismatch)
	if s := msg.String(); s != "" {
		sb.WriteString(": ")
		sb.WriteString(s)
	}

	tb.Errorf("%s", sb.String())
	tb.FailNow()
}
