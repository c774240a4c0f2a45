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

package nexus

import (
	"reflect"
)

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces implemented by the defining Object, each given as an InterfaceConfig, a name
	// reference or a built Interface.
	Interfaces []TypeDefinition

	// Fields in the object
	Fields Fields

	// Source declares the backing Go type whose values flow through this object's resolvers,
	// given as a (possibly nil) pointer or zero value of that type, e.g. (*User)(nil). It feeds
	// field type inference and the backing validation layer.
	Source interface{}

	// NonNullDefaults overrides the schema-wide nullability policy for fields declared on this
	// object. Field-level Nullability still takes precedence.
	NonNullDefaults *NonNullDefaults
}

var _ TypeDefinition = (*ObjectConfig)(nil)

// Object Type Definition
//
// GraphQL queries are hierarchical and composed, describing a tree of information. While Scalar
// types describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	fields      FieldMap
	interfaces  []*Interface

	// sourceType is the backing Go type declared in the config, normalized to its element type
	// when a pointer was given. Nil when the object declares no backing type.
	sourceType reflect.Type
}

var (
	_ Type         = (*Object)(nil)
	_ TypeWithName = (*Object)(nil)
)

// graphqlType implements Type.
func (*Object) graphqlType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built Object used as a definition
// resolves to itself.
func (*Object) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// String implements Type.
func (o *Object) String() string {
	return o.Name()
}

// Fields returns the fields in the object.
func (o *Object) Fields() FieldMap {
	return o.fields
}

// Interfaces returns the interfaces implemented by the Object type.
func (o *Object) Interfaces() []*Interface {
	return o.interfaces
}

// SourceType returns the backing Go type declared for this object, or nil when the object
// declares none.
func (o *Object) SourceType() reflect.Type {
	return o.sourceType
}

// sourceTypeOf normalizes a Source value into the backing struct type: pointers are dereferenced
// to their element type.
func sourceTypeOf(source interface{}) reflect.Type {
	if source == nil {
		return nil
	}
	rt := reflect.TypeOf(source)
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt
}
