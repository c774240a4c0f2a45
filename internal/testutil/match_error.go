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

package testutil

import (
	"github.com/wanxger/nexus"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// ErrorFieldsMatcher sets up fields of a nexus.Error to match.
type ErrorFieldsMatcher func(gstruct.Fields)

// MessageEqual matches the message in a nexus.Error to be the same as the specified string.
func MessageEqual(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.Equal(s)
	}
}

// MessageContainSubstring matches the message in a nexus.Error to contain the specified string.
func MessageContainSubstring(s string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Message"] = gomega.ContainSubstring(s)
	}
}

// PathEqual matches the field path in a nexus.Error against its dotted form.
func PathEqual(path string) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Path"] = gomega.WithTransform(func(p nexus.FieldPath) string {
			return p.String()
		}, gomega.Equal(path))
	}
}

// KindIs matches the kind in a nexus.Error to be the same as the given one.
func KindIs(kind nexus.ErrKind) ErrorFieldsMatcher {
	return func(fields gstruct.Fields) {
		fields["Kind"] = gomega.Equal(kind)
	}
}

// MatchNexusError matches a *nexus.Error with the given fields. Fields not named by any matcher
// are ignored:
//
//	Expect(err).Should(testutil.MatchNexusError(
//	    testutil.MessageContainSubstring("Unknown type"),
//	    testutil.KindIs(nexus.ErrKindDefinition),
//	))
func MatchNexusError(fieldsMatchers ...ErrorFieldsMatcher) types.GomegaMatcher {
	fields := gstruct.Fields{}
	for _, matcher := range fieldsMatchers {
		matcher(fields)
	}
	return gstruct.PointTo(gstruct.MatchFields(gstruct.IgnoreExtras, fields))
}
