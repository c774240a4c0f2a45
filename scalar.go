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

// ScalarConfig provides specification to define a custom Scalar type.
type ScalarConfig struct {
	ThisIsTypeDefinition

	// Name of the scalar type
	Name string

	// Description for the scalar type
	Description string

	// GoType optionally names the Go type that backs the scalar in resolver signatures, given as a
	// value of that type (e.g., time.Time{}). When set, the backing validation layer requires the
	// exact type; when unset, any Go type is accepted for the scalar.
	GoType interface{}
}

var _ TypeDefinition = (*ScalarConfig)(nil)

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name. The serialization and parsing of scalar values is the concern of an
// execution engine, not of schema construction; here a scalar carries its identity and the Go
// shape it admits in backing validation.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name        string
	description string

	// goKinds lists the reflect kinds admitted for this scalar in resolver return shapes. Used by
	// the built-in scalars.
	goKinds []reflect.Kind

	// goType, when non-nil, is the exact Go type admitted for this scalar.
	goType reflect.Type
}

var (
	_ Type     = (*Scalar)(nil)
	_ LeafType = (*Scalar)(nil)
)

// NewScalar defines a custom Scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.", ErrKindDefinition)
	}

	scalar := &Scalar{
		name:        config.Name,
		description: config.Description,
	}
	if config.GoType != nil {
		scalar.goType = reflect.TypeOf(config.GoType)
	}
	return scalar, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func MustNewScalar(config *ScalarConfig) *Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// ThisIsGraphQLTypeDefinition implements TypeDefinition. A built Scalar used as a definition
// resolves to itself.
func (*Scalar) ThisIsGraphQLTypeDefinition() {}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// String implements Type.
func (s *Scalar) String() string {
	return s.Name()
}

// AcceptsGoType reports whether a value of the given Go type may back this scalar in a resolver
// return shape. A scalar with neither kinds nor an exact Go type configured accepts anything.
func (s *Scalar) AcceptsGoType(rt reflect.Type) bool {
	if s.goType != nil {
		return rt == s.goType
	}
	if len(s.goKinds) == 0 {
		return true
	}
	for _, kind := range s.goKinds {
		if rt.Kind() == kind {
			return true
		}
	}
	return false
}

//===----------------------------------------------------------------------------------------====//
// Built-in scalars
//===----------------------------------------------------------------------------------------====//

// The Go types admitted by each built-in scalar in backing validation are:
//
//	+--------------+----------------------------------+
//	| GraphQL Type | Go Types                         |
//	+--------------+----------------------------------+
//	| Int          | int, int8..int64, uint, uint8..  |
//	| Float        | float32, float64                 |
//	| String       | string                           |
//	| Boolean      | bool                             |
//	| ID           | string, int, int64               |
//	+--------------+----------------------------------+

var (
	intType = &Scalar{
		name:        "Int",
		description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
		goKinds: []reflect.Kind{
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		},
	}

	floatType = &Scalar{
		name:        "Float",
		description: "The `Float` scalar type represents signed double-precision fractional values.",
		goKinds:     []reflect.Kind{reflect.Float32, reflect.Float64},
	}

	stringType = &Scalar{
		name:        "String",
		description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
		goKinds:     []reflect.Kind{reflect.String},
	}

	booleanType = &Scalar{
		name:        "Boolean",
		description: "The `Boolean` scalar type represents `true` or `false`.",
		goKinds:     []reflect.Kind{reflect.Bool},
	}

	idType = &Scalar{
		name:        "ID",
		description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as the key for a cache.",
		goKinds:     []reflect.Kind{reflect.String, reflect.Int, reflect.Int64},
	}
)

// Int returns the built-in Int scalar type.
func Int() *Scalar {
	return intType
}

// Float returns the built-in Float scalar type.
func Float() *Scalar {
	return floatType
}

// String returns the built-in String scalar type.
func String() *Scalar {
	return stringType
}

// Boolean returns the built-in Boolean scalar type.
func Boolean() *Scalar {
	return booleanType
}

// ID returns the built-in ID scalar type.
func ID() *Scalar {
	return idType
}

// builtInScalars maps the names of the built-in scalars to their type instances. These names are
// reserved: a builder rejects user definitions that reuse them.
var builtInScalars = map[string]*Scalar{
	"Int":     intType,
	"Float":   floatType,
	"String":  stringType,
	"Boolean": booleanType,
	"ID":      idType,
}

// IsBuiltInScalarName reports whether name is one of the five built-in scalar names.
func IsBuiltInScalarName(name string) bool {
	_, ok := builtInScalars[name]
	return ok
}
