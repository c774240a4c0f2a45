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

// Package nexus builds GraphQL schemas, code-first: types are declared as Go values, registered
// with a SchemaBuilder (or handed to MakeSchema), and assembled into an immutable Schema.
//
// Types reference each other by definition value or by name:
//
//	post := &nexus.ObjectConfig{
//	    Name:   "Post",
//	    Source: Post{},
//	    Fields: nexus.Fields{
//	        "id":     {Type: nexus.T("ID")},
//	        "title":  {},
//	        "author": {Type: nexus.T("User")},
//	    },
//	}
//
// A name reference like nexus.T("User") resolves when the schema is built, so definition order
// never matters and cyclic references need no forward declarations. A field config without a
// Type infers one from the object's backing Source struct.
//
// Nullability is resolved per position by a cascade: an explicit NonNullOf or
// NullableOf wrapper wins, then the field or argument's Nullability, then the NonNullDefaults of
// the enclosing type, then the schema-wide NonNullDefaults. The stock policy makes outputs
// non-null and inputs nullable.
//
// The backing package validates resolver signatures and backing struct shapes against the built
// schema; the sdl package renders a Schema to SDL text.
package nexus
