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
	"fmt"
	"sync"

	"github.com/wanxger/nexus"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func simpleQuery(fields nexus.Fields) *nexus.ObjectConfig {
	return &nexus.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	}
}

var _ = Describe("SchemaBuilder", func() {
	It("builds a schema from a single query type", func() {
		schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"hello": {Type: nexus.T("String")},
			}),
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(schema.Query().Name()).Should(Equal("Query"))
		Expect(schema.Query().Fields()["hello"].Type().String()).Should(Equal("String!"))
	})

	It("resolves name references registered through the config type list", func() {
		schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"post": {Type: nexus.T("Post")},
			}),
			Types: []nexus.TypeDefinition{
				&nexus.ObjectConfig{
					Name: "Post",
					Fields: nexus.Fields{
						"title": {Type: nexus.T("String")},
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		post := schema.TypeMap().Lookup("Post")
		Expect(post).ShouldNot(BeNil())
		Expect(schema.Query().Fields()["post"].Type().String()).Should(Equal("Post!"))
		Expect(schema.Query().Fields()["post"].Type().(*nexus.NonNull).InnerType()).Should(Equal(post))
	})

	It("discovers definitions referenced only inside other definitions", func() {
		schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"post": {
					Type: &nexus.ObjectConfig{
						Name: "Post",
						Fields: nexus.Fields{
							"title": {Type: nexus.T("String")},
						},
					},
				},
			}),
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.TypeMap().Lookup("Post")).ShouldNot(BeNil())
	})

	It("builds cyclic type references", func() {
		schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"me": {Type: nexus.T("User")},
			}),
			Types: []nexus.TypeDefinition{
				&nexus.ObjectConfig{
					Name: "User",
					Fields: nexus.Fields{
						"name":    {Type: nexus.T("String")},
						"friends": {Type: nexus.ListOf(nexus.T("User"))},
					},
				},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		user := schema.TypeMap().Lookup("User").(*nexus.Object)
		Expect(user.Fields()["friends"].Type().String()).Should(Equal("[User!]!"))

		// The element of the friends list is the very same User instance.
		friends := user.Fields()["friends"].Type().(*nexus.NonNull).InnerType().(*nexus.List)
		Expect(friends.ElementType().(*nexus.NonNull).InnerType()).Should(Equal(nexus.Type(user)))
	})

	It("rejects unknown type names with a suggestion", func() {
		_, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"post": {Type: nexus.T("Pots")},
			}),
			Types: []nexus.TypeDefinition{
				&nexus.ObjectConfig{
					Name: "Post",
					Fields: nexus.Fields{
						"title": {Type: nexus.T("String")},
					},
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`Unknown type "Pots".`))
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "Post"?`))
	})

	It("rejects two definitions under the same name", func() {
		builder := nexus.NewSchemaBuilder(nil)
		Expect(builder.AddTypes(&nexus.ObjectConfig{
			Name:   "Dup",
			Fields: nexus.Fields{"a": {Type: nexus.T("String")}},
		})).Should(Succeed())

		err := builder.AddTypes(&nexus.ObjectConfig{
			Name:   "Dup",
			Fields: nexus.Fields{"b": {Type: nexus.T("String")}},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`multiple types named "Dup"`))
	})

	It("accepts re-registration of the identical definition", func() {
		config := &nexus.ObjectConfig{
			Name:   "Once",
			Fields: nexus.Fields{"a": {Type: nexus.T("String")}},
		}
		builder := nexus.NewSchemaBuilder(nil)
		Expect(builder.AddTypes(config)).Should(Succeed())
		Expect(builder.AddTypes(config)).Should(Succeed())
	})

	It("accepts registrations from concurrent goroutines", func() {
		builder := nexus.NewSchemaBuilder(nil)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				builder.MustAddTypes(&nexus.ObjectConfig{
					Name: fmt.Sprintf("Widget%d", i),
					Fields: nexus.Fields{
						"name": {Type: nexus.T("String")},
					},
				})
			}(i)
		}
		wg.Wait()

		builder.MustAddTypes(simpleQuery(nexus.Fields{
			"widget": {Type: nexus.T("Widget0")},
		}))

		schema, err := builder.Build(nil)
		Expect(err).ShouldNot(HaveOccurred())
		for i := 0; i < 16; i++ {
			Expect(schema.TypeMap().Lookup(fmt.Sprintf("Widget%d", i))).ShouldNot(BeNil())
		}
	})

	It("reserves the built-in scalar names", func() {
		builder := nexus.NewSchemaBuilder(nil)
		err := builder.AddTypes(&nexus.ObjectConfig{
			Name:   "String",
			Fields: nexus.Fields{"a": {Type: nexus.T("Int")}},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring(`reserved for a built-in scalar`))
	})

	It("rejects unnamed definitions", func() {
		builder := nexus.NewSchemaBuilder(nil)
		err := builder.AddTypes(&nexus.ObjectConfig{})
		Expect(err).Should(HaveOccurred())
	})

	It("picks up root types by their conventional names", func() {
		builder := nexus.NewSchemaBuilder(nil)
		builder.MustAddTypes(
			simpleQuery(nexus.Fields{
				"ok": {Type: nexus.T("Boolean")},
			}),
			&nexus.ObjectConfig{
				Name: "Mutation",
				Fields: nexus.Fields{
					"noop": {Type: nexus.T("Boolean")},
				},
			},
		)

		schema, err := builder.Build(nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.Query()).ShouldNot(BeNil())
		Expect(schema.Mutation()).ShouldNot(BeNil())
		Expect(schema.Subscription()).Should(BeNil())
	})

	It("requires a query root", func() {
		builder := nexus.NewSchemaBuilder(nil)
		builder.MustAddTypes(&nexus.ObjectConfig{
			Name:   "Orphan",
			Fields: nexus.Fields{"a": {Type: nexus.T("String")}},
		})

		_, err := builder.Build(nil)
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Query root type must be provided"))
	})

	It("requires roots to be object types", func() {
		_, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: &nexus.EnumConfig{
				Name: "Color",
				Values: nexus.EnumValueDefinitionMap{
					"RED": {},
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Query root type must be Object type"))
	})

	It("rejects a second Build on the same builder", func() {
		builder := nexus.NewSchemaBuilder(nil)
		builder.MustAddTypes(simpleQuery(nexus.Fields{
			"ok": {Type: nexus.T("Boolean")},
		}))

		_, err := builder.Build(nil)
		Expect(err).ShouldNot(HaveOccurred())

		_, err = builder.Build(nil)
		Expect(err).Should(HaveOccurred())
	})

	Describe("union building", func() {
		It("resolves member types", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"search": {Type: nexus.T("SearchResult")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ObjectConfig{
						Name:   "Post",
						Fields: nexus.Fields{"title": {Type: nexus.T("String")}},
					},
					&nexus.ObjectConfig{
						Name:   "User",
						Fields: nexus.Fields{"name": {Type: nexus.T("String")}},
					},
					&nexus.UnionConfig{
						Name:          "SearchResult",
						PossibleTypes: []nexus.TypeDefinition{nexus.T("Post"), nexus.T("User")},
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			union := schema.TypeMap().Lookup("SearchResult").(*nexus.Union)
			Expect(union.PossibleTypes()).Should(HaveLen(2))
			Expect(schema.PossibleTypes(union)).Should(Equal(union.PossibleTypes()))
		})

		It("rejects empty unions", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"search": {Type: nexus.T("SearchResult")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.UnionConfig{Name: "SearchResult"},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("must define one or more member types"))
		})

		It("rejects non-object members", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"search": {Type: nexus.T("SearchResult")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.UnionConfig{
						Name:          "SearchResult",
						PossibleTypes: []nexus.TypeDefinition{nexus.T("String")},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("can only include Object types"))
		})
	})

	Describe("interface building", func() {
		node := func() *nexus.InterfaceConfig {
			return &nexus.InterfaceConfig{
				Name: "Node",
				Fields: nexus.Fields{
					"id": {Type: nexus.T("ID")},
				},
			}
		}

		It("links implementations and indexes them on the schema", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"node": {Type: nexus.T("Node")},
				}),
				Types: []nexus.TypeDefinition{
					node(),
					&nexus.ObjectConfig{
						Name:       "Post",
						Interfaces: []nexus.TypeDefinition{nexus.T("Node")},
						Fields: nexus.Fields{
							"id":    {Type: nexus.T("ID")},
							"title": {Type: nexus.T("String")},
						},
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			iface := schema.TypeMap().Lookup("Node").(*nexus.Interface)
			impls := schema.Implementations(iface)
			Expect(impls).Should(HaveLen(1))
			Expect(impls[0].Name()).Should(Equal("Post"))
		})

		It("rejects an implementation missing an interface field", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"node": {Type: nexus.T("Node")},
				}),
				Types: []nexus.TypeDefinition{
					node(),
					&nexus.ObjectConfig{
						Name:       "Post",
						Interfaces: []nexus.TypeDefinition{nexus.T("Node")},
						Fields: nexus.Fields{
							"title": {Type: nexus.T("String")},
						},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(
				ContainSubstring("Interface field Node.id expected but Post does not provide it"))
		})

		It("rejects an implementation with an incompatible field type", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"node": {Type: nexus.T("Node")},
				}),
				Types: []nexus.TypeDefinition{
					node(),
					&nexus.ObjectConfig{
						Name:       "Post",
						Interfaces: []nexus.TypeDefinition{nexus.T("Node")},
						Fields: nexus.Fields{
							"id": {Type: nexus.T("Int")},
						},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("Interface field Node.id expects type"))
		})

		It("rejects implementing a non-interface type", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"ok": {Type: nexus.T("Boolean")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ObjectConfig{
						Name:       "Post",
						Interfaces: []nexus.TypeDefinition{nexus.T("String")},
						Fields: nexus.Fields{
							"title": {Type: nexus.T("String")},
						},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("may only implement Interface types"))
		})
	})

	Describe("argument building", func() {
		It("builds arguments sorted by name with default values", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"posts": {
						Type: nexus.ListOf(nexus.T("String")),
						Args: nexus.ArgumentConfigMap{
							"limit":  {Type: nexus.T("Int"), DefaultValue: 10},
							"after":  {Type: nexus.T("ID")},
							"filter": {Type: nexus.T("String")},
						},
					},
				}),
			})
			Expect(err).ShouldNot(HaveOccurred())

			args := schema.Query().Fields()["posts"].Args()
			Expect(args).Should(HaveLen(3))
			Expect(args[0].Name()).Should(Equal("after"))
			Expect(args[1].Name()).Should(Equal("filter"))
			Expect(args[2].Name()).Should(Equal("limit"))

			Expect(args[2].HasDefaultValue()).Should(BeTrue())
			Expect(args[2].DefaultValue()).Should(Equal(10))
			Expect(args[0].HasDefaultValue()).Should(BeFalse())
		})

		It("rejects output types in argument position", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"post": {
						Type: nexus.T("Post"),
						Args: nexus.ArgumentConfigMap{
							"like": {Type: nexus.T("Post")},
						},
					},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ObjectConfig{
						Name:   "Post",
						Fields: nexus.Fields{"title": {Type: nexus.T("String")}},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("must be Input Type"))
		})
	})

	Describe("input object building", func() {
		It("builds input fields with input nullability defaults", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"search": {
						Type: nexus.ListOf(nexus.T("String")),
						Args: nexus.ArgumentConfigMap{
							"where": {Type: nexus.T("PostWhereInput")},
						},
					},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.InputObjectConfig{
						Name: "PostWhereInput",
						Fields: nexus.InputFields{
							"title":     {Type: nexus.T("String")},
							"published": {Type: nexus.T("Boolean"), Nullability: nexus.NonNullable},
						},
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			input := schema.TypeMap().Lookup("PostWhereInput").(*nexus.InputObject)
			Expect(input.Fields()["title"].Type().String()).Should(Equal("String"))
			Expect(input.Fields()["published"].Type().String()).Should(Equal("Boolean!"))
		})

		It("rejects object types in input field position", func() {
			_, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"ok": {Type: nexus.T("Boolean")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ObjectConfig{
						Name:   "Post",
						Fields: nexus.Fields{"title": {Type: nexus.T("String")}},
					},
					&nexus.InputObjectConfig{
						Name: "BadInput",
						Fields: nexus.InputFields{
							"post": {Type: nexus.T("Post")},
						},
					},
				},
			})
			Expect(err).Should(HaveOccurred())
			Expect(err.Error()).Should(ContainSubstring("must be Input Type"))
		})
	})

	Describe("custom scalars and enums", func() {
		It("registers and resolves a custom scalar", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"createdAt": {Type: nexus.T("DateTime")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.ScalarConfig{
						Name:        "DateTime",
						Description: "An RFC 3339 timestamp.",
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			scalar := schema.TypeMap().Lookup("DateTime").(*nexus.Scalar)
			Expect(scalar.Name()).Should(Equal("DateTime"))
			Expect(schema.Query().Fields()["createdAt"].Type().String()).Should(Equal("DateTime!"))
		})

		It("registers and resolves an enum", func() {
			schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
				Query: simpleQuery(nexus.Fields{
					"status": {Type: nexus.T("Status")},
				}),
				Types: []nexus.TypeDefinition{
					&nexus.EnumConfig{
						Name: "Status",
						Values: nexus.EnumValueDefinitionMap{
							"DRAFT":     {},
							"PUBLISHED": {Description: "Visible to everyone."},
						},
					},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			enum := schema.TypeMap().Lookup("Status").(*nexus.Enum)
			Expect(enum.Values()).Should(HaveLen(2))
			Expect(enum.Value("PUBLISHED")).ShouldNot(BeNil())
		})
	})

	It("always includes the built-in scalars in the type map", func() {
		schema, err := nexus.MakeSchema(&nexus.SchemaConfig{
			Query: simpleQuery(nexus.Fields{
				"ok": {Type: nexus.T("Boolean")},
			}),
		})
		Expect(err).ShouldNot(HaveOccurred())

		for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
			Expect(schema.TypeMap().Lookup(name)).ShouldNot(BeNil(), "missing built-in %s", name)
		}
	})
})
