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

// TypeDefinition describes a GraphQL type to a SchemaBuilder. Config structs (such as
// ObjectConfig and EnumConfig), name references created with T, wrapper definitions created with
// ListOf, NonNullOf and NullableOf, and already-built named types all implement it.
//
// A TypeDefinition carries no resolved state; the builder turns definitions into Type instances
// when the schema is built, which is what lets definitions reference each other by name or even
// form cycles.
type TypeDefinition interface {
	// ThisIsGraphQLTypeDefinition puts a special mark for a TypeDefinition object.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is a marker struct intended to be embedded in every TypeDefinition
// implementation.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Name reference
//===----------------------------------------------------------------------------------------====//

// typeRef refers to a named type that may not have been defined at the point of reference. The
// name is looked up in the builder's registry when the schema is built.
type typeRef struct {
	ThisIsTypeDefinition
	name string
}

// T creates a reference to the type with the given name. The type does not need to be registered
// with the builder yet; the reference is resolved when the schema is built. This is what allows
// mutually recursive type definitions.
func T(name string) TypeDefinition {
	return typeRef{name: name}
}

//===----------------------------------------------------------------------------------------====//
// Wrapper definitions
//===----------------------------------------------------------------------------------------====//

// listDef wraps an element definition into a GraphQL List.
type listDef struct {
	ThisIsTypeDefinition
	element TypeDefinition
}

// ListOf wraps the given definition into a List. Unless the element definition carries an
// explicit NonNullOf or NullableOf wrapper, element nullability follows the same cascade as the
// position the list appears in.
func ListOf(element TypeDefinition) TypeDefinition {
	return listDef{element: element}
}

// nonNullDef explicitly marks a definition as non-null, overriding the nullability cascade.
type nonNullDef struct {
	ThisIsTypeDefinition
	inner TypeDefinition
}

// NonNullOf explicitly wraps the given definition into a NonNull, overriding any nullability
// default that would otherwise apply at this position.
func NonNullOf(inner TypeDefinition) TypeDefinition {
	return nonNullDef{inner: inner}
}

// nullableDef explicitly marks a definition as nullable, overriding the nullability cascade.
type nullableDef struct {
	ThisIsTypeDefinition
	inner TypeDefinition
}

// NullableOf explicitly marks the given definition as nullable, overriding any non-null default
// that would otherwise apply at this position.
func NullableOf(inner TypeDefinition) TypeDefinition {
	return nullableDef{inner: inner}
}

//===----------------------------------------------------------------------------------------====//
// Nullability
//===----------------------------------------------------------------------------------------====//

// Nullability is a tri-state nullability override carried by field and argument configs. The zero
// value defers to the enclosing type's (and ultimately the schema's) NonNullDefaults.
type Nullability uint8

// Enumeration of Nullability
const (
	// NullabilityDefault defers to the enclosing NonNullDefaults cascade.
	NullabilityDefault Nullability = iota

	// Nullable forces the position to accept null.
	Nullable

	// NonNullable forces the position to reject null.
	NonNullable
)

// NonNullDefaults is the nullability policy applied to positions that carry no explicit override.
// Output covers object and interface fields; Input covers arguments and input object fields.
//
// The policy cascades: a schema-wide default may be overridden per type definition, and both are
// overridden by an explicit per-field or per-argument Nullability (or a NonNullOf/NullableOf
// wrapper).
type NonNullDefaults struct {
	// Output, when true, makes fields non-null unless overridden.
	Output bool

	// Input, when true, makes arguments and input object fields non-null unless overridden.
	Input bool
}

// DefaultNonNullDefaults returns the library default policy: outputs are non-null, inputs are
// nullable.
func DefaultNonNullDefaults() NonNullDefaults {
	return NonNullDefaults{
		Output: true,
		Input:  false,
	}
}

// forMode resolves the effective non-null flag for the given position mode.
func (d NonNullDefaults) forMode(mode ioMode) bool {
	if mode == inputMode {
		return d.Input
	}
	return d.Output
}

// ioMode tells the nullability cascade whether a type expression appears in an output position
// (field result) or an input position (argument or input object field).
type ioMode uint8

const (
	outputMode ioMode = iota
	inputMode
)
