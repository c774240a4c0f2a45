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
	"github.com/wanxger/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Type system", func() {
	Describe("wrapping types", func() {
		It("renders List and NonNull notation", func() {
			list := nexus.MustNewListOfType(nexus.String())
			Expect(list.String()).Should(Equal("[String]"))

			nonNull, err := nexus.NewNonNullOfType(nexus.Int())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(nonNull.String()).Should(Equal("Int!"))
		})

		It("rejects a Non-Null of a Non-Null", func() {
			nonNull, err := nexus.NewNonNullOfType(nexus.Int())
			Expect(err).ShouldNot(HaveOccurred())

			_, err = nexus.NewNonNullOfType(nonNull)
			Expect(err).Should(HaveOccurred())
		})

		It("unwraps to the named type", func() {
			list := nexus.MustNewListOfType(nexus.String())
			nonNull, err := nexus.NewNonNullOfType(list)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(nexus.NamedTypeOf(nonNull)).Should(Equal(nexus.Type(nexus.String())))
			Expect(nexus.NullableTypeOf(nonNull)).Should(Equal(nexus.Type(list)))
		})
	})

	Describe("predicates", func() {
		It("classifies leaf and composite types", func() {
			Expect(nexus.IsLeafType(nexus.Int())).Should(BeTrue())
			Expect(nexus.IsScalarType(nexus.Int())).Should(BeTrue())
			Expect(nexus.IsCompositeType(nexus.Int())).Should(BeFalse())
		})

		It("classifies input and output types through wrappers", func() {
			list := nexus.MustNewListOfType(nexus.String())
			Expect(nexus.IsInputType(list)).Should(BeTrue())
			Expect(nexus.IsOutputType(list)).Should(BeTrue())
		})
	})

	Describe("built-in scalars", func() {
		It("exposes the five standard scalars", func() {
			Expect(nexus.Int().Name()).Should(Equal("Int"))
			Expect(nexus.Float().Name()).Should(Equal("Float"))
			Expect(nexus.String().Name()).Should(Equal("String"))
			Expect(nexus.Boolean().Name()).Should(Equal("Boolean"))
			Expect(nexus.ID().Name()).Should(Equal("ID"))
		})

		It("recognizes the reserved names", func() {
			Expect(nexus.IsBuiltInScalarName("ID")).Should(BeTrue())
			Expect(nexus.IsBuiltInScalarName("DateTime")).Should(BeFalse())
		})
	})

	Describe("Scalar definition", func() {
		It("requires a name", func() {
			_, err := nexus.NewScalar(&nexus.ScalarConfig{})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("Must provide name for Scalar"))
		})
	})

	Describe("Enum definition", func() {
		It("requires a name", func() {
			_, err := nexus.NewEnum(&nexus.EnumConfig{})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("Must provide name for Enum"))
		})

		It("sorts values by name and resolves internal values", func() {
			enum, err := nexus.NewEnum(&nexus.EnumConfig{
				Name: "Status",
				Values: nexus.EnumValueDefinitionMap{
					"PUBLISHED": {Value: 2},
					"DRAFT":     {Value: 1},
					"HIDDEN":    {Value: nexus.NilEnumInternalValue},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			values := enum.Values()
			Expect(values).Should(HaveLen(3))
			Expect(values[0].Name()).Should(Equal("DRAFT"))
			Expect(values[1].Name()).Should(Equal("HIDDEN"))
			Expect(values[2].Name()).Should(Equal("PUBLISHED"))

			// An unspecified internal value defaults to the value name; NilEnumInternalValue forces
			// nil.
			Expect(enum.Value("DRAFT").Value()).Should(Equal(1))
			Expect(enum.Value("HIDDEN").Value()).Should(BeNil())
		})
	})
})
