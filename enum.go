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
	"sort"
)

// An intentionally internal type for marking a "null" as the internal value of an enum value
type enumNilValueType int

// NilEnumInternalValue is a value that has a special meaning when it is given to the Value in
// EnumValueDefinition. It sets the enum value with internal value "null". While setting Value to
// "nil" or not giving it a value means the name of the enum value is used as its internal value.
// We need this trick because using only "nil" cannot tell whether it's an "undefined" or a "null"
// internal value.
const NilEnumInternalValue enumNilValueType = 0

// EnumValueDefinition provides the definition of a value in an enum.
type EnumValueDefinition struct {
	// Description of the enum value
	Description string

	// Value assigns an internal (backing) value to represent the enum value in resolver data. If
	// omitted, the name of the enum value is used.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumValueDefinitionMap maps enum value names to their definitions.
type EnumValueDefinitionMap map[string]EnumValueDefinition

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	ThisIsTypeDefinition

	// Name of the enum type
	Name string

	// Description for the enum type
	Description string

	// Values to be defined in the enum
	Values EnumValueDefinitionMap
}

var _ TypeDefinition = (*EnumConfig)(nil)

// EnumValue provides definition for a value in an enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	// Name of the enum value
	name string

	// Definition of the value
	def EnumValueDefinition
}

// Name of enum value.
func (value *EnumValue) Name() string {
	return value.name
}

// Description of the enum value
func (value *EnumValue) Description() string {
	return value.def.Description
}

// Value returns the internal value that represents the enum value in resolver data.
func (value *EnumValue) Value() interface{} {
	return value.def.Value
}

// IsDeprecated returns true if this value is deprecated.
func (value *EnumValue) IsDeprecated() bool {
	return value.def.Deprecation.Defined()
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (value *EnumValue) Deprecation() *Deprecation {
	return value.def.Deprecation
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Note: If a value is not provided in a definition, the name of the enum value will be used as
// its internal value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name        string
	description string

	// values defined in the enum type, sorted by name
	values []*EnumValue

	// nameMap maps enum name to its EnumValue.
	nameMap map[string]*EnumValue
}

var (
	_ Type     = (*Enum)(nil)
	_ LeafType = (*Enum)(nil)
)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.", ErrKindDefinition)
	}

	enum := &Enum{
		name:        config.Name,
		description: config.Description,
	}

	// Define values and build nameMap.
	values := make([]*EnumValue, 0, len(config.Values))
	nameMap := make(map[string]*EnumValue, len(config.Values))
	for name, valueDef := range config.Values {
		value := &EnumValue{
			name: name,
			def:  valueDef,
		}
		if value.def.Value == nil {
			// Use name for internal value of the enum value.
			value.def.Value = name
		} else if _, ok := value.def.Value.(enumNilValueType); ok {
			// When NilEnumInternalValue is specified, initialize internal value to nil.
			value.def.Value = nil
		}
		values = append(values, value)
		nameMap[name] = value
	}

	// Sort by name so every rendering of the enum is deterministic.
	sort.Slice(values, func(i, j int) bool {
		return values[i].name < values[j].name
	})

	enum.values = values
	enum.nameMap = nameMap
	return enum, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config *EnumConfig) *Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built Enum used as a definition
// resolves to itself.
func (*Enum) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// String implements Type.
func (e *Enum) String() string {
	return e.Name()
}

// Values returns all enum values defined in this Enum type, sorted by name.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with given name or returns nil if there's no such one.
func (e *Enum) Value(name string) *EnumValue {
	value, exists := e.nameMap[name]
	if exists {
		return value
	}
	return nil
}
