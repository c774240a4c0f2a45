/**
 * Copyright (c) 2026, The Nexus Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"strings"
)

// Dedent fixes indentation of a multi-line string literal by stripping leading newlines, trailing
// spaces and tabs, and the common indent taken from the first non-empty line. It lets tests embed
// SDL fixtures at the natural source indentation.
func Dedent(s string) string {
	// Strip leading newlines.
	s = strings.TrimLeft(s, "\n")
	// Strip trailing spaces and tabs.
	s = strings.TrimRight(s, " \t")

	// The indent is the leading run of spaces and tabs on the first line.
	indent := s[:len(s)-len(strings.TrimLeft(s, " \t"))]
	if len(indent) == 0 {
		return s
	}

	s = strings.TrimPrefix(s, indent)
	return strings.ReplaceAll(s, "\n"+indent, "\n")
}
