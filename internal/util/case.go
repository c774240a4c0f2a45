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

func isASCIIUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isASCIILower(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func toASCIIUpper(b byte) byte {
	if isASCIILower(b) {
		return b - 'a' + 'A'
	}
	return b
}

func toASCIILower(b byte) byte {
	if isASCIIUpper(b) {
		return b - 'A' + 'a'
	}
	return b
}

// CamelCase converts a string of the form "/[_A-Za-z][_0-9A-Za-z]*/" [0] into upper camel case.
// For example, it returns "CamelCase" for both "camel_case" and "camelCase". This is the mapping
// from a GraphQL field name to the exported Go struct field that backs it.
//
// [0]: https://graphql.github.io/graphql-spec/June2018/#Name
func CamelCase(s string) string {
	if len(s) == 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))

	upperNext := true
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			buf.WriteByte(toASCIIUpper(b))
			upperNext = false
		} else {
			buf.WriteByte(b)
		}
	}

	return buf.String()
}

// LowerCamelCase is like CamelCase except the first letter is lowered. It maps an exported Go
// struct field name to the GraphQL field name it produces (e.g., "CreatedAt" to "createdAt").
//
// A leading run of upper case letters is lowered as a whole so initialisms keep their shape
// ("URL" to "url", "URLPath" to "urlPath").
func LowerCamelCase(s string) string {
	s = CamelCase(s)
	if len(s) == 0 {
		return s
	}

	// Find the length of the leading upper case run.
	n := 0
	for n < len(s) && isASCIIUpper(s[n]) {
		n++
	}

	if n == 0 {
		return s
	}

	// When the run is followed by a lower case letter, the run's last letter starts the next word
	// and keeps its case ("URLPath": lower "UR", keep "Path").
	if n > 1 && n < len(s) && isASCIILower(s[n]) {
		n--
	}

	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < n; i++ {
		buf.WriteByte(toASCIILower(s[i]))
	}
	buf.WriteString(s[n:])
	return buf.String()
}

// SnakeCase converts a string of the form "/[_A-Za-z][_0-9A-Za-z]*/" into snake case. For
// example, it returns "snake_case" for "SnakeCase".
func SnakeCase(s string) string {
	sLen := len(s)
	if sLen == 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(sLen + 2)

	for i := 0; i < sLen; i++ {
		cur := s[i]
		if isASCIIUpper(cur) && i > 0 {
			prev := s[i-1]
			nextIsLower := i+1 < sLen && isASCIILower(s[i+1])
			if prev != '_' && (isASCIILower(prev) || nextIsLower) {
				buf.WriteByte('_')
			}
		}
		buf.WriteByte(toASCIILower(cur))
	}

	return buf.String()
}

// IsScreamingSnakeCase reports whether s consists solely of upper case letters, digits and
// underscores, starting with a letter (the conventional casing of GraphQL enum values).
func IsScreamingSnakeCase(s string) bool {
	if len(s) == 0 {
		return false
	}
	if !isASCIIUpper(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		b := s[i]
		if !isASCIIUpper(b) && b != '_' && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}
