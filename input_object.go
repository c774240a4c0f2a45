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

// InputFieldConfig provides definition for a field in an InputObject. It is much simpler than
// FieldConfig because an input field doesn't resolve a value nor can it have arguments.
type InputFieldConfig struct {
	// Description of the field
	Description string

	// Type of value given to the field
	Type TypeDefinition

	// Nullability overrides the NonNullDefaults cascade for this field.
	Nullability Nullability

	// DefaultValue specifies the value to be assigned to the field when no input is provided.
	DefaultValue interface{}
}

// InputFields maps input field name to its definition.
type InputFields map[string]InputFieldConfig

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the InputObject Type
	Fields InputFields

	// NonNullDefaults overrides the schema-wide nullability policy for fields declared on this
	// input object. Field-level Nullability still takes precedence.
	NonNullDefaults *NonNullDefaults
}

var _ TypeDefinition = (*InputObjectConfig)(nil)

// InputField defines a field in an InputObject.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.description
}

// Type of value given to the field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field has a default value.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the field when no input is provided.
func (f *InputField) DefaultValue() interface{} {
	// Deal with NilDefaultValue specially.
	if _, ok := f.defaultValue.(nilDefaultValueType); ok {
		return nil
	}
	return f.defaultValue
}

// InputFieldMap maps field name to the field definition in an InputObject type.
type InputFieldMap map[string]*InputField

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some constraints on the fields so it can be
// used as an input argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      InputFieldMap
}

var _ Type = (*InputObject)(nil)

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built InputObject used as a definition
// resolves to itself.
func (*InputObject) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (io *InputObject) Name() string {
	return io.name
}

// Description implements TypeWithDescription.
func (io *InputObject) Description() string {
	return io.description
}

// String implements Type.
func (io *InputObject) String() string {
	return io.Name()
}

// Fields returns the fields in the InputObject type.
func (io *InputObject) Fields() InputFieldMap {
	return io.fields
}
