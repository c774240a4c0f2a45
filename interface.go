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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that need to be provided when implementing this interface
	Fields Fields

	// NonNullDefaults overrides the schema-wide nullability policy for fields declared on this
	// interface. Field-level Nullability still takes precedence.
	NonNullDefaults *NonNullDefaults
}

var _ TypeDefinition = (*InterfaceConfig)(nil)

// Interface Type Definition
//
// When a field can return one of a heterogeneous set of types, an Interface type is used to
// describe what types are possible and what fields are in common across all types.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Interfaces
type Interface struct {
	name        string
	description string
	fields      FieldMap
}

var (
	_ Type         = (*Interface)(nil)
	_ AbstractType = (*Interface)(nil)
)

// graphqlType implements Type.
func (*Interface) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Interface) graphqlAbstractType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built Interface used as a definition
// resolves to itself.
func (*Interface) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (i *Interface) Name() string {
	return i.name
}

// Description implements TypeWithDescription.
func (i *Interface) Description() string {
	return i.description
}

// String implements Type.
func (i *Interface) String() string {
	return i.Name()
}

// Fields returns the set of fields that needs to be provided when implementing this interface.
func (i *Interface) Fields() FieldMap {
	return i.fields
}
