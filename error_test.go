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

package nexus_test

import (
	"errors"

	"github.com/wanxger/nexus"
	"github.com/wanxger/nexus/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("builds from a message and typed arguments", func() {
		err := nexus.NewError("boom",
			nexus.Op("nexus.Build"),
			nexus.ErrKindDefinition,
			nexus.NewFieldPath("Query", "posts"))

		e := err.(*nexus.Error)
		Expect(e.Message).Should(Equal("boom"))
		Expect(e.Op).Should(Equal(nexus.Op("nexus.Build")))
		Expect(e.Kind).Should(Equal(nexus.ErrKindDefinition))
		Expect(e.Path.String()).Should(Equal("Query.posts"))
	})

	It("prints op, message and path", func() {
		err := nexus.NewError("boom", nexus.Op("nexus.Build"), nexus.NewFieldPath("Query", "posts"))
		Expect(err.Error()).Should(Equal("nexus.Build: boom at Query.posts"))
	})

	It("propagates path and kind from a wrapped Error", func() {
		inner := nexus.NewError("inner", nexus.ErrKindBacking, nexus.NewFieldPath("Post", "author"))
		outer := nexus.NewError("outer", inner)

		Expect(outer).Should(testutil.MatchNexusError(
			testutil.MessageEqual("outer"),
			testutil.KindIs(nexus.ErrKindBacking),
			testutil.PathEqual("Post.author"),
		))
	})

	It("unwraps for errors.Is inspection", func() {
		sentinel := errors.New("sentinel")
		err := nexus.WrapError(sentinel, "wrapped")
		Expect(errors.Is(err, sentinel)).Should(BeTrue())
	})

	It("wraps with a formatted message", func() {
		sentinel := errors.New("sentinel")
		err := nexus.WrapErrorf(sentinel, "field %s.%s failed", "Query", "posts")

		Expect(err).Should(testutil.MatchNexusError(
			testutil.MessageEqual("field Query.posts failed"),
		))
		Expect(errors.Is(err, sentinel)).Should(BeTrue())
	})

	Describe("FieldPath", func() {
		It("joins keys with dots", func() {
			path := nexus.NewFieldPath("Query", "posts", "limit")
			Expect(path.String()).Should(Equal("Query.posts.limit"))
		})

		It("extends without mutating the receiver", func() {
			base := nexus.NewFieldPath("Query")
			extended := base.With("posts")
			Expect(base.String()).Should(Equal("Query"))
			Expect(extended.String()).Should(Equal("Query.posts"))
		})

		It("serializes to a JSON array of keys", func() {
			path := nexus.NewFieldPath("Query", "posts")
			Expect(&path).Should(testutil.SerializeToJSONAs([]string{"Query", "posts"}))
		})
	})

	Describe("JSON serialization", func() {
		It("writes message, path and kind", func() {
			err := nexus.NewError("boom",
				nexus.ErrKindValidation,
				nexus.NewFieldPath("Post", "author"))
			Expect(err).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"message": "boom",
				"path":    []string{"Post", "author"},
				"kind":    nexus.ErrKindValidation.String(),
			}))
		})
	})

	Describe("Errors", func() {
		It("reports no error when empty", func() {
			errs := nexus.NoErrors()
			Expect(errs.HaveOccurred()).Should(BeFalse())
			Expect(errs.Err()).Should(BeNil())
		})

		It("returns the sole error unwrapped", func() {
			errs := nexus.ErrorsOf("only one", nexus.ErrKindValidation)
			Expect(errs.Err()).Should(Equal(errs.Errors[0]))
		})

		It("collects multiple errors", func() {
			errs := nexus.NoErrors()
			errs.Emplace("first")
			errs.Emplace("second", nexus.ErrKindValidation)
			Expect(errs.HaveOccurred()).Should(BeTrue())
			Expect(errs.Errors).Should(HaveLen(2))
			Expect(errs.Errors[1]).Should(testutil.MatchNexusError(
				testutil.MessageContainSubstring("second"),
				testutil.KindIs(nexus.ErrKindValidation),
			))
			Expect(errs.Err().Error()).Should(ContainSubstring("first"))
		})

		It("merges other collections in order", func() {
			first := nexus.ErrorsOf("first")
			second := nexus.ErrorsOf("second")

			errs := nexus.NoErrors()
			errs.AppendErrors(first, second)
			Expect(errs.Errors).Should(HaveLen(2))
			Expect(errs.Errors[0].Message).Should(Equal("first"))
			Expect(errs.Errors[1].Message).Should(Equal("second"))
		})
	})
})
