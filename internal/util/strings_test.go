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

package util_test

import (
	"github.com/wanxger/nexus/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dedent", func() {
	It("removes the indentation taken from the first line", func() {
		Expect(util.Dedent(`
			type Query {
				hello: String
			}`)).Should(Equal("type Query {\n\thello: String\n}"))
	})

	It("leaves unindented strings alone", func() {
		Expect(util.Dedent("foo\nbar")).Should(Equal("foo\nbar"))
	})

	It("strips leading newlines and trailing spaces", func() {
		Expect(util.Dedent("\n\nfoo  \t")).Should(Equal("foo"))
	})
})

var _ = Describe("SuggestionList", func() {
	It("returns results when input is empty", func() {
		Expect(util.SuggestionList("", []string{"a"})).Should(Equal([]string{"a"}))
	})

	It("returns empty array when there are no options", func() {
		Expect(util.SuggestionList("input", nil)).Should(BeEmpty())
	})

	It("returns options sorted based on similarity", func() {
		Expect(util.SuggestionList("abc", []string{"a", "ab", "abc"})).
			Should(Equal([]string{"abc", "ab"}))
	})

	It("treats a case change as a single edit", func() {
		Expect(util.SuggestionList("verylongstring", []string{"VERYLONGSTRING"})).
			Should(Equal([]string{"VERYLONGSTRING"}))
	})
})

var _ = Describe("OrList", func() {
	It("joins items in prose form", func() {
		Expect(util.OrList([]string{"A"}, 0, false)).Should(Equal("A"))
		Expect(util.OrList([]string{"A", "B"}, 0, false)).Should(Equal("A or B"))
		Expect(util.OrList([]string{"A", "B", "C"}, 0, false)).Should(Equal("A, B, or C"))
	})

	It("quotes items on request", func() {
		Expect(util.OrList([]string{"A", "B"}, 0, true)).Should(Equal(`"A" or "B"`))
	})

	It("honors the limit", func() {
		Expect(util.OrList([]string{"A", "B", "C", "D"}, 2, false)).Should(Equal("A or B"))
	})
})
