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
	"fmt"
	"sort"
)

// SchemaConfig contains everything MakeSchema needs to assemble a Schema.
type SchemaConfig struct {
	// Query, Mutation and Subscription designate the root operation types. Each may be a config
	// definition, a built type, or a name reference. A nil root falls back to the registered type
	// named "Query", "Mutation" or "Subscription" when one exists; only Query is required.
	Query        TypeDefinition
	Mutation     TypeDefinition
	Subscription TypeDefinition

	// Types lists additional definitions to include even when unreachable from the roots (e.g.,
	// object types only ever exposed through an interface field).
	Types []TypeDefinition

	// NonNullDefaults is the schema-wide nullability policy. When nil, DefaultNonNullDefaults()
	// applies.
	NonNullDefaults *NonNullDefaults
}

// TypeMap is an immutable map of all named types in a Schema, keyed by type name.
type TypeMap struct {
	types map[string]Type
}

// Lookup finds the type with the given name, or nil.
func (m TypeMap) Lookup(name string) Type {
	return m.types[name]
}

// Size returns the number of types in the map.
func (m TypeMap) Size() int {
	return len(m.types)
}

// Names returns the type names in lexicographic order.
func (m TypeMap) Names() []string {
	names := make([]string, 0, len(m.types))
	for name := range m.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range calls f on every type in the map in lexicographic name order, stopping early if f
// returns false.
func (m TypeMap) Range(f func(name string, t Type) bool) {
	for _, name := range m.Names() {
		if !f(name, m.types[name]) {
			return
		}
	}
}

// Schema is an immutable GraphQL type system: the root operation types plus every named type
// reachable from them or registered explicitly. Instances are created with MakeSchema or
// SchemaBuilder.Build and are safe for concurrent use.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object

	typeMap TypeMap

	// implementations maps interface name to the object types implementing the interface, sorted
	// by name.
	implementations map[string][]*Object

	nonNullDefaults NonNullDefaults
}

// MakeSchema builds a Schema from the given config in one shot.
func MakeSchema(config *SchemaConfig) (*Schema, error) {
	if config == nil {
		return nil, NewError("Must provide a schema config.", Op("nexus.MakeSchema"), ErrKindDefinition)
	}
	var builderConfig *SchemaBuilderConfig
	if config.NonNullDefaults != nil {
		builderConfig = &SchemaBuilderConfig{NonNullDefaults: config.NonNullDefaults}
	}
	return NewSchemaBuilder(builderConfig).Build(config)
}

// MustMakeSchema is a convenience function equivalent to MakeSchema but panics on failure
// instead of returning an error.
func MustMakeSchema(config *SchemaConfig) *Schema {
	schema, err := MakeSchema(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// newSchema finishes a Build: collects the type map, indexes interface implementations and runs
// schema-level validation.
func newSchema(query, mutation, subscription *Object, res *typeResolution, defaults NonNullDefaults) (*Schema, error) {
	if query == nil {
		return nil, NewError("Query root type must be provided.", ErrKindValidation)
	}

	typeMap := map[string]Type{}
	for name, scalar := range builtInScalars {
		typeMap[name] = scalar
	}
	for _, t := range res.built {
		if err := collectNamedTypes(t, typeMap); err != nil {
			return nil, err
		}
	}
	for _, root := range []*Object{query, mutation, subscription} {
		if root == nil {
			continue
		}
		if err := collectNamedTypes(root, typeMap); err != nil {
			return nil, err
		}
	}

	schema := &Schema{
		query:           query,
		mutation:        mutation,
		subscription:    subscription,
		typeMap:         TypeMap{types: typeMap},
		implementations: map[string][]*Object{},
		nonNullDefaults: defaults,
	}

	for _, t := range typeMap {
		object, ok := t.(*Object)
		if !ok {
			continue
		}
		for _, iface := range object.Interfaces() {
			schema.implementations[iface.Name()] =
				append(schema.implementations[iface.Name()], object)
		}
	}
	for _, objects := range schema.implementations {
		sort.Slice(objects, func(i, j int) bool {
			return objects[i].Name() < objects[j].Name()
		})
	}

	if errs := validateSchema(schema); errs.HaveOccurred() {
		return nil, errs.Err()
	}
	return schema, nil
}

// collectNamedTypes adds every named type reachable from t to typeMap, unwrapping List and
// NonNull along the way.
func collectNamedTypes(t Type, typeMap map[string]Type) error {
	t = NamedTypeOf(t)
	if t == nil {
		return nil
	}

	named, ok := t.(TypeWithName)
	if !ok {
		return NewError(fmt.Sprintf("Expected a named type, but got %T.", t), ErrKindInternal)
	}
	name := named.Name()

	if prev, found := typeMap[name]; found {
		if prev != t {
			return NewError(fmt.Sprintf(
				"Schema must contain uniquely named types but contains multiple types named %q.", name),
				ErrKindValidation)
		}
		return nil
	}
	typeMap[name] = t

	switch t := t.(type) {
	case *Object:
		for _, iface := range t.Interfaces() {
			if err := collectNamedTypes(iface, typeMap); err != nil {
				return err
			}
		}
		if err := collectFieldTypes(t.Fields(), typeMap); err != nil {
			return err
		}

	case *Interface:
		if err := collectFieldTypes(t.Fields(), typeMap); err != nil {
			return err
		}

	case *Union:
		for _, possible := range t.PossibleTypes() {
			if err := collectNamedTypes(possible, typeMap); err != nil {
				return err
			}
		}

	case *InputObject:
		for _, inputField := range t.Fields() {
			if err := collectNamedTypes(inputField.Type(), typeMap); err != nil {
				return err
			}
		}
	}

	return nil
}

func collectFieldTypes(fields FieldMap, typeMap map[string]Type) error {
	for _, f := range fields {
		if err := collectNamedTypes(f.Type(), typeMap); err != nil {
			return err
		}
		for _, arg := range f.Args() {
			if err := collectNamedTypes(arg.Type(), typeMap); err != nil {
				return err
			}
		}
	}
	return nil
}

// Query returns the type for the query root operation.
func (schema *Schema) Query() *Object {
	return schema.query
}

// Mutation returns the type for the mutation root operation, or nil.
func (schema *Schema) Mutation() *Object {
	return schema.mutation
}

// Subscription returns the type for the subscription root operation, or nil.
func (schema *Schema) Subscription() *Object {
	return schema.subscription
}

// TypeMap returns the map of all named types in the schema.
func (schema *Schema) TypeMap() TypeMap {
	return schema.typeMap
}

// NonNullDefaults returns the schema-wide nullability policy the schema was built with.
func (schema *Schema) NonNullDefaults() NonNullDefaults {
	return schema.nonNullDefaults
}

// PossibleTypes returns the object types that could concretely appear at a position typed with
// the given abstract type: the members for a Union, the implementations for an Interface.
func (schema *Schema) PossibleTypes(t AbstractType) []*Object {
	switch t := t.(type) {
	case *Union:
		return t.PossibleTypes()
	case *Interface:
		return schema.implementations[t.Name()]
	}
	return nil
}

// Implementations returns the object types implementing the given interface, sorted by name.
func (schema *Schema) Implementations(iface *Interface) []*Object {
	return schema.implementations[iface.Name()]
}

//===----------------------------------------------------------------------------------------====//
// Schema validation
//===----------------------------------------------------------------------------------------====//

// validateSchema checks the structural rules that can only be verified once every type is built:
// each object provides every field of each interface it implements, with a compatible type and
// identical arguments. Errors are collected rather than returned at the first failure so that a
// single run reports everything wrong with the schema.
func validateSchema(schema *Schema) Errors {
	errs := NoErrors()

	schema.typeMap.Range(func(name string, t Type) bool {
		object, ok := t.(*Object)
		if !ok {
			return true
		}
		for _, iface := range object.Interfaces() {
			validateObjectImplementsInterface(schema, object, iface, &errs)
		}
		return true
	})

	return errs
}

func validateObjectImplementsInterface(schema *Schema, object *Object, iface *Interface, errs *Errors) {
	objectFields := object.Fields()

	for fieldName, ifaceField := range iface.Fields() {
		path := NewFieldPath(object.Name(), fieldName)

		objectField, found := objectFields[fieldName]
		if !found {
			errs.Emplace(fmt.Sprintf(
				"Interface field %s.%s expected but %s does not provide it.",
				iface.Name(), fieldName, object.Name()), path, ErrKindValidation)
			continue
		}

		if !isTypeSubTypeOf(schema, objectField.Type(), ifaceField.Type()) {
			errs.Emplace(fmt.Sprintf(
				"Interface field %s.%s expects type %s but %s.%s is type %s.",
				iface.Name(), fieldName, ifaceField.Type(),
				object.Name(), fieldName, objectField.Type()), path, ErrKindValidation)
		}

		validateFieldArguments(iface, object, fieldName, ifaceField, objectField, errs)
	}
}

func validateFieldArguments(iface *Interface, object *Object, fieldName string, ifaceField, objectField Field, errs *Errors) {
	objectArgs := map[string]Argument{}
	for _, arg := range objectField.Args() {
		objectArgs[arg.Name()] = arg
	}

	for _, ifaceArg := range ifaceField.Args() {
		path := NewFieldPath(object.Name(), fieldName, ifaceArg.Name())

		objectArg, found := objectArgs[ifaceArg.Name()]
		if !found {
			errs.Emplace(fmt.Sprintf(
				"Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
				iface.Name(), fieldName, ifaceArg.Name(), object.Name(), fieldName),
				path, ErrKindValidation)
			continue
		}

		// Argument types must match exactly; covariance is not allowed for inputs.
		if objectArg.Type().String() != ifaceArg.Type().String() {
			errs.Emplace(fmt.Sprintf(
				"Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
				iface.Name(), fieldName, ifaceArg.Name(), ifaceArg.Type(),
				object.Name(), fieldName, objectArg.Name(), objectArg.Type()),
				path, ErrKindValidation)
		}
	}
}

// isTypeSubTypeOf reports whether maybeSubType may be used where superType is expected: equal
// types, a non-null of a valid subtype where a nullable type is expected, covariant lists, and
// an object where one of its interfaces or unions is expected.
func isTypeSubTypeOf(schema *Schema, maybeSubType, superType Type) bool {
	if maybeSubType == superType {
		return true
	}

	if superNonNull, ok := superType.(*NonNull); ok {
		if subNonNull, ok := maybeSubType.(*NonNull); ok {
			return isTypeSubTypeOf(schema, subNonNull.InnerType(), superNonNull.InnerType())
		}
		return false
	}
	if subNonNull, ok := maybeSubType.(*NonNull); ok {
		// A non-null version of the expected type is allowed.
		return isTypeSubTypeOf(schema, subNonNull.InnerType(), superType)
	}

	if superList, ok := superType.(*List); ok {
		subList, ok := maybeSubType.(*List)
		return ok && isTypeSubTypeOf(schema, subList.ElementType(), superList.ElementType())
	}
	if _, ok := maybeSubType.(*List); ok {
		return false
	}

	if superAbstract, ok := superType.(AbstractType); ok {
		if subObject, ok := maybeSubType.(*Object); ok {
			for _, possible := range schema.PossibleTypes(superAbstract) {
				if possible == subObject {
					return true
				}
			}
		}
	}

	return false
}
