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

var _ = Describe("Schema JSON export", func() {
	var schema *nexus.Schema

	BeforeEach(func() {
		var err error
		schema, err = nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"post": {
					Type: nexus.T("Post"),
					Args: nexus.ArgumentConfigMap{
						"id": {Type: nexus.NonNullOf(nexus.T("ID"))},
					},
				},
			}),
			Types: []nexus.TypeDefinition{
				&nexus.ObjectConfig{
					Name:        "Post",
					Description: "A blog post.",
					Fields: nexus.Fields{
						"title": {Type: nexus.T("String")},
						"tags":  {Type: nexus.ListOf(nexus.T("String"))},
						"slug": {
							Type:        nexus.T("String"),
							Deprecation: &nexus.Deprecation{Reason: "Use id instead."},
						},
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("names the root operation types", func() {
		data, err := nexus.MarshalSchemaJSON(schema)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(string(data)).Should(ContainSubstring(`"queryType":{"name":"Query"}`))
		Expect(string(data)).Should(ContainSubstring(`"mutationType":null`))
	})

	It("writes wrapped types as kind/ofType chains", func() {
		data, err := nexus.MarshalSchemaJSON(schema)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(string(data)).Should(ContainSubstring(
			`"kind":"NON_NULL","ofType":{"kind":"OBJECT","name":"Post"}`))
		Expect(string(data)).Should(ContainSubstring(
			`"kind":"LIST","ofType":{"kind":"NON_NULL","ofType":{"kind":"SCALAR","name":"String"}}`))
	})

	It("writes descriptions and deprecations", func() {
		data, err := nexus.MarshalSchemaJSON(schema)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(string(data)).Should(ContainSubstring(`"description":"A blog post."`))
		Expect(string(data)).Should(ContainSubstring(
			`"isDeprecated":true,"deprecationReason":"Use id instead."`))
	})

	It("is deterministic", func() {
		first, err := nexus.MarshalSchemaJSON(schema)
		Expect(err).ShouldNot(HaveOccurred())
		second, err := nexus.MarshalSchemaJSON(schema)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(second)).Should(Equal(string(first)))
	})
})
