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

// Fields maps field name to its definition. In general, this should be named as "FieldConfigMap".
// However, this type is used frequently so we try to make it shorter to save some typing efforts.
type Fields map[string]FieldConfig

// FieldConfig provides definition of a field when defining an object or an interface.
type FieldConfig struct {
	// Description of the defining field
	Description string

	// Type of the value yielded by the field, given as a TypeDefinition resolved at build time.
	// When omitted on an object that declares a backing Source, the type is inferred from the
	// source struct field or method matching the field name.
	Type TypeDefinition

	// Nullability overrides the NonNullDefaults cascade for this field.
	Nullability Nullability

	// Argument configuration of the field
	Args ArgumentConfigMap

	// Resolver computes the field value from the enclosing object's backing value. It must be a
	// function of the form
	//
	//	func(ctx context.Context, source S) (R, error)
	//	func(ctx context.Context, source S, args A) (R, error)
	//
	// where S is the enclosing type's backing type, A is a struct whose fields correspond to the
	// declared arguments, and R matches the declared field type. The signature is checked by the
	// backing validation layer; this library never invokes the function.
	Resolver interface{}

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// FieldMap maps field name to the Field.
type FieldMap map[string]Field

// Field represents a field in an object or an interface. It yields a value of a specific type.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Objects
type Field interface {
	// Name of the field
	Name() string

	// Description of the field
	Description() string

	// Type of value yielded by the field
	Type() Type

	// Args specifies the definitions of arguments being taken when querying this field.
	Args() []Argument

	// Resolver returns the consumer-supplied resolver function, or nil when the field is resolved
	// from its backing struct field.
	Resolver() interface{}

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation() *Deprecation
}

// field is our built-in implementation for Field.
type field struct {
	config FieldConfig
	name   string
	ttype  Type
	args   []Argument
}

var _ Field = (*field)(nil)

// Name implements Field.
func (f *field) Name() string {
	return f.name
}

// Description implements Field.
func (f *field) Description() string {
	return f.config.Description
}

// Type implements Field.
func (f *field) Type() Type {
	return f.ttype
}

// Args implements Field.
func (f *field) Args() []Argument {
	return f.args
}

// Resolver implements Field.
func (f *field) Resolver() interface{} {
	return f.config.Resolver
}

// Deprecation implements Field.
func (f *field) Deprecation() *Deprecation {
	return f.config.Deprecation
}

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// An intentionally internal type for marking a "null" as default value
type nilDefaultValueType int

// NilDefaultValue is a value that has a special meaning when it is given to the DefaultValue in
// an ArgumentConfig or an InputFieldConfig. It sets the default value to "null", while setting
// DefaultValue to "nil" or not giving it a value means there's no default value. We need this
// trick because using only "nil" cannot tell whether it's an "undefined" or a "null" default.
const NilDefaultValue nilDefaultValueType = 0

// ArgumentConfig provides definition for defining an argument in a field.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type TypeDefinition

	// Nullability overrides the NonNullDefaults cascade for this argument.
	Nullability Nullability

	// DefaultValue specifies the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}
}

// Argument is accepted in querying a field to further specify the return value.
//
// Reference: https://graphql.github.io/graphql-spec/June2018/#sec-Field-Arguments
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue specifies the value to be assigned to the argument when no value is provided.
func (arg *Argument) DefaultValue() interface{} {
	// Deal with NilDefaultValue specially.
	if _, ok := arg.defaultValue.(nilDefaultValueType); ok {
		// We have a default value which is "null".
		return nil
	}
	return arg.defaultValue
}

// IsRequiredArgument returns true if a value must be provided to the argument.
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}
