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

var _ = Describe("Nullability resolution", func() {
	// buildQueryField builds a one-field schema and returns the resolved type of the field.
	buildQueryField := func(config *nexus.SchemaConfig, fieldName string) nexus.Type {
		schema, err := nexus.MakeSchema(config)
		Expect(err).ShouldNot(HaveOccurred())
		return schema.Query().Fields()[fieldName].Type()
	}

	Describe("with the stock defaults", func() {
		It("makes output positions non-null", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"name": {Type: nexus.T("String")},
				}),
			}, "name")
			Expect(t.String()).Should(Equal("String!"))
		})

		It("leaves input positions nullable", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"posts": {
						Type: nexus.ListOf(nexus.T("String")),
						Args: nexus.ArgumentConfigMap{
							"limit": {Type: nexus.T("Int")},
						},
					},
				}),
			})
			Expect(err).ShouldNot(HaveOccurred())

			args := schema.Query().Fields()["posts"].Args()
			Expect(args[0].Type().String()).Should(Equal("Int"))
		})

		It("applies the ambient default to each level of a list", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"posts": {Type: nexus.ListOf(nexus.T("String"))},
				}),
			}, "posts")
			Expect(t.String()).Should(Equal("[String!]!"))
		})
	})

	Describe("field-level overrides", func() {
		It("honors an explicit Nullable", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"name": {Type: nexus.T("String"), Nullability: nexus.Nullable},
				}),
			}, "name")
			Expect(t.String()).Should(Equal("String"))
		})

		It("applies a field-level Nullable to the list, not its element", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"posts": {
						Type:        nexus.ListOf(nexus.T("String")),
						Nullability: nexus.Nullable,
					},
				}),
			}, "posts")
			Expect(t.String()).Should(Equal("[String!]"))
		})

		It("honors an explicit NonNullable on an argument", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"post": {
						Type: nexus.T("String"),
						Args: nexus.ArgumentConfigMap{
							"id": {Type: nexus.T("ID"), Nullability: nexus.NonNullable},
						},
					},
				}),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schema.Query().Fields()["post"].Args()[0].Type().String()).Should(Equal("ID!"))
		})
	})

	Describe("explicit wrappers", func() {
		It("NullableOf wins over the ambient default", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"name": {Type: nexus.NullableOf(nexus.T("String"))},
				}),
			}, "name")
			Expect(t.String()).Should(Equal("String"))
		})

		It("NullableOf inside a list controls the element only", func() {
			t := buildQueryField(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"posts": {Type: nexus.ListOf(nexus.NullableOf(nexus.T("String")))},
				}),
			}, "posts")
			Expect(t.String()).Should(Equal("[String]!"))
		})

		It("NonNullOf wins in an input position", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"post": {
						Type: nexus.T("String"),
						Args: nexus.ArgumentConfigMap{
							"id": {Type: nexus.NonNullOf(nexus.T("ID"))},
						},
					},
				}),
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(schema.Query().Fields()["post"].Args()[0].Type().String()).Should(Equal("ID!"))
		})

		It("rejects nesting NonNullOf in NonNullOf", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"name": {Type: nexus.NonNullOf(nexus.NonNullOf(nexus.T("String")))},
				}),
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(
				ContainSubstring("Cannot wrap a Non-Null type in another Non-Null type"))
		})
	})

	Describe("type-level defaults", func() {
		It("override the schema-wide policy for the type's own fields", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"post": {Type: nexus.T("Post")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ObjectConfig{
						Name:            "Post",
						NonNullDefaults: &nexus.NonNullDefaults{Output: false},
						Fields: nexus.Fields{
							"title": {Type: nexus.T("String")},
						},
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			post := schema.TypeMap().Lookup("Post").(*nexus.Object)
			Expect(post.Fields()["title"].Type().String()).Should(Equal("String"))
			// The schema-wide policy still applies outside Post.
			Expect(schema.Query().Fields()["post"].Type().String()).Should(Equal("Post!"))
		})
	})

	Describe("schema-level defaults", func() {
		It("flip the policy for both modes", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"name": {
						Type: nexus.T("String"),
						Args: nexus.ArgumentConfigMap{
							"upcase": {Type: nexus.T("Boolean")},
						},
					},
				}),
				NonNullDefaults: &nexus.NonNullDefaults{Output: false, Input: true},
			})
			Expect(err).ShouldNot(HaveOccurred())

			nameField := schema.Query().Fields()["name"]
			Expect(nameField.Type().String()).Should(Equal("String"))
			Expect(nameField.Args()[0].Type().String()).Should(Equal("Boolean!"))
		})
	})
})
