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

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes describes which Object types can be represented by the defining union, each
	// given as an ObjectConfig, a name reference or a built Object.
	PossibleTypes []TypeDefinition
}

var _ TypeDefinition = (*UnionConfig)(nil)

// Union Type Definition
//
// When a field can return one of a heterogeneous set of types, a Union type is used to describe
// what types are possible.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Unions
type Union struct {
	name          string
	description   string
	possibleTypes []*Object
}

var (
	_ Type         = (*Union)(nil)
	_ AbstractType = (*Union)(nil)
)

// graphqlType implements Type.
func (*Union) graphqlType() {}

// graphqlAbstractType implements AbstractType.
func (*Union) graphqlAbstractType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built Union used as a definition
// resolves to itself.
func (*Union) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (u *Union) Name() string {
	return u.name
}

// Description implements TypeWithDescription.
func (u *Union) Description() string {
	return u.description
}

// String implements Type.
func (u *Union) String() string {
	return u.Name()
}

// PossibleTypes returns the members of the union type.
func (u *Union) PossibleTypes() []*Object {
	return u.possibleTypes
}
