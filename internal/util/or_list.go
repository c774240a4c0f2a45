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

// OrList transforms a string array like ["A", "B", "C"] into `A, B, or C`. If quoted is true, it
// returns `"A", "B", or "C"`. If a positive limit is provided, only up to that number of items are
// included.
func OrList(items []string, limit int, quoted bool) string {
	if len(items) == 0 {
		return ""
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	numItems := len(items)

	var buf strings.Builder
	writeItem := func(item string) {
		if quoted {
			buf.WriteString(`"`)
			buf.WriteString(item)
			buf.WriteString(`"`)
		} else {
			buf.WriteString(item)
		}
	}

	writeItem(items[0])
	for i := 1; i < numItems; i++ {
		if numItems > 2 {
			buf.WriteString(", ")
		} else {
			buf.WriteString(" ")
		}
		if i == numItems-1 {
			buf.WriteString("or ")
		}
		writeItem(items[i])
	}

	return buf.String()
}
