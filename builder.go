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
	"reflect"
	"sort"
	"sync"

	"github.com/wanxger/nexus/internal/util"
)

// SchemaBuilderConfig contains configuration for a SchemaBuilder.
type SchemaBuilderConfig struct {
	// NonNullDefaults is the schema-wide nullability policy. When nil, DefaultNonNullDefaults()
	// applies: outputs non-null, inputs nullable.
	NonNullDefaults *NonNullDefaults
}

// SchemaBuilder accumulates type definitions and assembles them into an immutable Schema.
//
// Definitions may be registered from multiple goroutines; registration mutates only builder
// state. Build drains the accumulated definitions once; after a successful Build the builder
// rejects further use.
type SchemaBuilder struct {
	mu sync.Mutex

	// defaults is the schema-wide nullability policy.
	defaults NonNullDefaults

	// typeDefs maps type name to its registered definition.
	typeDefs map[string]TypeDefinition

	// order remembers registration order for stable error reporting.
	order []string

	// built is set once Build has completed.
	built bool
}

// NewSchemaBuilder initializes a SchemaBuilder from the given config. A nil config selects the
// default nullability policy.
func NewSchemaBuilder(config *SchemaBuilderConfig) *SchemaBuilder {
	defaults := DefaultNonNullDefaults()
	if config != nil && config.NonNullDefaults != nil {
		defaults = *config.NonNullDefaults
	}
	return &SchemaBuilder{
		defaults: defaults,
		typeDefs: map[string]TypeDefinition{},
	}
}

// AddTypes registers the given definitions with the builder. Each definition must be named (a
// config struct or a built named type); name references and wrapper definitions cannot be
// registered directly. Registering two different definitions under the same name is an error, as
// is reusing the name of a built-in scalar.
func (b *SchemaBuilder) AddTypes(defs ...TypeDefinition) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return NewError("Cannot add types to a builder whose schema has been built.", ErrKindDefinition)
	}

	for _, def := range defs {
		if err := b.addType(def); err != nil {
			return err
		}
	}
	return nil
}

// MustAddTypes is a convenience function equivalent to AddTypes but panics on failure instead of
// returning an error.
func (b *SchemaBuilder) MustAddTypes(defs ...TypeDefinition) {
	if err := b.AddTypes(defs...); err != nil {
		panic(err)
	}
}

func (b *SchemaBuilder) addType(def TypeDefinition) error {
	name, ok := definedTypeName(def)
	if !ok {
		return NewError(
			fmt.Sprintf("Cannot register type definition of type %T: only named definitions can be registered.", def),
			ErrKindDefinition)
	}
	if len(name) == 0 {
		return NewError("Cannot register a type definition without a name.", ErrKindDefinition)
	}
	return registerNamed(b.typeDefs, &b.order, name, def)
}

// definedTypeName extracts the type name from a named definition. The second return value is
// false for definitions that don't define a named type (references and wrappers).
func definedTypeName(def TypeDefinition) (string, bool) {
	switch def := def.(type) {
	case *ObjectConfig:
		return def.Name, true
	case *InterfaceConfig:
		return def.Name, true
	case *UnionConfig:
		return def.Name, true
	case *EnumConfig:
		return def.Name, true
	case *InputObjectConfig:
		return def.Name, true
	case *ScalarConfig:
		return def.Name, true
	case *Scalar:
		return def.Name(), true
	case *Enum:
		return def.Name(), true
	case *Object:
		return def.Name(), true
	case *Interface:
		return def.Name(), true
	case *Union:
		return def.Name(), true
	case *InputObject:
		return def.Name(), true
	default:
		return "", false
	}
}

// registerNamed adds def to the registry under name, enforcing unique names and reserved
// built-in scalar names. Registering the identical definition twice is a no-op.
func registerNamed(registry map[string]TypeDefinition, order *[]string, name string, def TypeDefinition) error {
	if builtin, ok := builtInScalars[name]; ok {
		if def == TypeDefinition(builtin) {
			return nil
		}
		return NewError(
			fmt.Sprintf("Type name %q is reserved for a built-in scalar.", name), ErrKindDefinition)
	}

	prev, exists := registry[name]
	if exists {
		if prev == def {
			return nil
		}
		return NewError(fmt.Sprintf(
			"Schema must contain uniquely named types but contains multiple types named %q.", name),
			ErrKindDefinition)
	}

	registry[name] = def
	if order != nil {
		*order = append(*order, name)
	}
	return nil
}

// Build assembles the registered definitions (plus any listed in config) into a Schema. See
// MakeSchema for the common one-shot entry point.
func (b *SchemaBuilder) Build(config *SchemaConfig) (*Schema, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.built {
		return nil, NewError("Schema has already been built from this builder.", Op("nexus.Build"), ErrKindDefinition)
	}

	if config != nil {
		for _, def := range config.Types {
			if err := b.addType(def); err != nil {
				return nil, err
			}
		}
	}

	// Discovery pass: walk the registered definitions and pull in every named definition they
	// reference directly, so a config mentioned only inside a field type still lands in the
	// registry before name references resolve.
	for _, name := range append([]string(nil), b.order...) {
		if err := discoverNamed(b.typeDefs, &b.order, b.typeDefs[name], map[TypeDefinition]bool{}); err != nil {
			return nil, err
		}
	}

	res := &typeResolution{
		defaults:   b.defaults,
		typeDefs:   b.typeDefs,
		sources:    map[reflect.Type]string{},
		built:      map[TypeDefinition]Type{},
		finalizing: map[TypeDefinition]Type{},
	}
	if err := res.indexSources(b.order); err != nil {
		return nil, err
	}

	// Resolve every registered definition.
	for _, name := range b.order {
		if _, err := res.resolveNamed(b.typeDefs[name], NewFieldPath(name)); err != nil {
			return nil, err
		}
	}

	// Resolve root operation types. A root left unspecified in the config picks up the registered
	// type carrying the conventional name.
	var rootDefs [3]TypeDefinition
	if config != nil {
		rootDefs = [3]TypeDefinition{config.Query, config.Mutation, config.Subscription}
	}
	rootNames := [3]string{"Query", "Mutation", "Subscription"}
	var roots [3]*Object
	for i, def := range rootDefs {
		if def == nil {
			named, ok := b.typeDefs[rootNames[i]]
			if !ok {
				continue
			}
			def = named
		}
		t, err := res.resolveNamed(def, NewFieldPath(rootNames[i]))
		if err != nil {
			return nil, err
		}
		object, ok := t.(*Object)
		if !ok {
			return nil, NewError(
				fmt.Sprintf("%s root type must be Object type, it cannot be %s.", rootNames[i], t),
				ErrKindValidation)
		}
		roots[i] = object
	}

	schema, err := newSchema(roots[0], roots[1], roots[2], res, b.defaults)
	if err != nil {
		return nil, err
	}

	b.built = true
	return schema, nil
}

// MustBuild is a convenience function equivalent to Build but panics on failure instead of
// returning an error.
func (b *SchemaBuilder) MustBuild(config *SchemaConfig) *Schema {
	schema, err := b.Build(config)
	if err != nil {
		panic(err)
	}
	return schema
}

// discoverNamed registers every named definition referenced (transitively) by def.
func discoverNamed(registry map[string]TypeDefinition, order *[]string, def TypeDefinition, visited map[TypeDefinition]bool) error {
	if def == nil || visited[def] {
		return nil
	}
	visited[def] = true

	if name, ok := definedTypeName(def); ok {
		if len(name) == 0 {
			// The error surfaces with a better message when the definition is resolved.
			return nil
		}
		if err := registerNamed(registry, order, name, def); err != nil {
			return err
		}
	}

	recurseFields := func(fields Fields) error {
		for _, fieldConfig := range fields {
			if err := discoverNamed(registry, order, fieldConfig.Type, visited); err != nil {
				return err
			}
			for _, argConfig := range fieldConfig.Args {
				if err := discoverNamed(registry, order, argConfig.Type, visited); err != nil {
					return err
				}
			}
		}
		return nil
	}

	switch def := def.(type) {
	case *ObjectConfig:
		for _, ifaceDef := range def.Interfaces {
			if err := discoverNamed(registry, order, ifaceDef, visited); err != nil {
				return err
			}
		}
		return recurseFields(def.Fields)

	case *InterfaceConfig:
		return recurseFields(def.Fields)

	case *UnionConfig:
		for _, possible := range def.PossibleTypes {
			if err := discoverNamed(registry, order, possible, visited); err != nil {
				return err
			}
		}

	case *InputObjectConfig:
		for _, fieldConfig := range def.Fields {
			if err := discoverNamed(registry, order, fieldConfig.Type, visited); err != nil {
				return err
			}
		}

	case listDef:
		return discoverNamed(registry, order, def.element, visited)
	case nonNullDef:
		return discoverNamed(registry, order, def.inner, visited)
	case nullableDef:
		return discoverNamed(registry, order, def.inner, visited)
	}

	return nil
}

//===----------------------------------------------------------------------------------------====//
// Type resolution
//===----------------------------------------------------------------------------------------====//

// typeResolution carries the state of a single Build: the name registry, the backing source
// index, and the set of created types. Definitions that are finalizing on the resolution stack
// resolve to their semi-initialized instances, which is what breaks definition cycles.
type typeResolution struct {
	defaults NonNullDefaults
	typeDefs map[string]TypeDefinition

	// sources maps a backing Go type to the name of the GraphQL type it backs.
	sources map[reflect.Type]string

	// ambiguousSources lists Go types claimed by more than one definition. Inference through such
	// a type is an error.
	ambiguousSources map[reflect.Type][]string

	built      map[TypeDefinition]Type
	finalizing map[TypeDefinition]Type
}

// indexSources records the backing Go type of every registered object and custom scalar so field
// type inference can map a Go struct back to its GraphQL type name.
func (r *typeResolution) indexSources(order []string) error {
	r.ambiguousSources = map[reflect.Type][]string{}

	add := func(rt reflect.Type, name string) {
		if rt == nil {
			return
		}
		if prev, ok := r.sources[rt]; ok && prev != name {
			r.ambiguousSources[rt] = append(r.ambiguousSources[rt], name)
			return
		}
		r.sources[rt] = name
	}

	for _, name := range order {
		switch def := r.typeDefs[name].(type) {
		case *ObjectConfig:
			add(sourceTypeOf(def.Source), name)
		case *ScalarConfig:
			if def.GoType != nil {
				add(reflect.TypeOf(def.GoType), name)
			}
		case *Scalar:
			add(def.goType, name)
		case *Object:
			add(def.sourceType, name)
		}
	}
	return nil
}

// sourceName resolves the GraphQL type name backed by the given Go type.
func (r *typeResolution) sourceName(rt reflect.Type) (string, error) {
	if others, ok := r.ambiguousSources[rt]; ok {
		names := append([]string{r.sources[rt]}, others...)
		sort.Strings(names)
		return "", NewError(fmt.Sprintf(
			"Go type %s backs multiple types (%s); inference through it is ambiguous.",
			rt, util.OrList(names, 0, true)), ErrKindBacking)
	}
	name, ok := r.sources[rt]
	if !ok {
		return "", NewError(fmt.Sprintf(
			"No registered type declares Go type %s as its backing source.", rt), ErrKindBacking)
	}
	return name, nil
}

// resolveNamed resolves a definition that must denote a named type (no wrappers).
func (r *typeResolution) resolveNamed(def TypeDefinition, path FieldPath) (Type, error) {
	switch d := def.(type) {
	case nil:
		return nil, NewError("Must provide a type definition.", path, ErrKindDefinition)

	case typeRef:
		if builtin, ok := builtInScalars[d.name]; ok {
			return builtin, nil
		}
		named, ok := r.typeDefs[d.name]
		if !ok {
			return nil, r.unknownTypeError(d.name, path)
		}
		return r.resolveNamed(named, path)

	case listDef, nonNullDef, nullableDef:
		return nil, NewError(
			"A wrapping definition cannot be used where a named type is required.", path, ErrKindDefinition)
	}

	// A built named type used as its own definition.
	if t, ok := def.(Type); ok {
		return t, nil
	}

	return r.resolveDef(def)
}

// resolveDef runs the creator protocol for a config definition: create a semi-initialized
// instance, publish it for cycle breaking, then finalize.
func (r *typeResolution) resolveDef(def TypeDefinition) (Type, error) {
	if t, ok := r.built[def]; ok {
		return t, nil
	}
	if t, ok := r.finalizing[def]; ok {
		// def is being finalized somewhere down the stack. Hand out the semi-initialized instance
		// to break the cycle.
		return t, nil
	}

	creator, err := newCreatorFor(def)
	if err != nil {
		return nil, err
	}

	t, err := creator.LoadDataAndNew()
	if err != nil {
		return nil, err
	}

	r.finalizing[def] = t
	err = creator.Finalize(t, r)
	delete(r.finalizing, def)
	if err != nil {
		return nil, err
	}

	r.built[def] = t
	return t, nil
}

func (r *typeResolution) unknownTypeError(name string, path FieldPath) error {
	options := make([]string, 0, len(r.typeDefs)+len(builtInScalars))
	for registered := range r.typeDefs {
		options = append(options, registered)
	}
	for builtin := range builtInScalars {
		options = append(options, builtin)
	}
	sort.Strings(options)

	message := fmt.Sprintf("Unknown type %q.", name)
	if suggestions := util.SuggestionList(name, options); len(suggestions) > 0 {
		message = fmt.Sprintf("%s Did you mean %s?", message, util.OrList(suggestions, 5, true))
	}
	return NewError(message, path, ErrKindDefinition)
}

// resolveTypeExpr resolves a type expression appearing at a field, argument or input field
// position, applying the nullability cascade: an explicit NonNullOf/NullableOf wrapper wins, then
// the per-position Nullability, then the ambient NonNullDefaults.
func (r *typeResolution) resolveTypeExpr(
	def TypeDefinition,
	explicit Nullability,
	mode ioMode,
	defaults NonNullDefaults,
	path FieldPath) (Type, error) {

	switch d := def.(type) {
	case nonNullDef:
		inner, err := r.resolveTypeExpr(d.inner, Nullable, mode, defaults, path)
		if err != nil {
			return nil, err
		}
		t, err := NewNonNullOfType(inner)
		if err != nil {
			return nil, NewError("Invalid Non-Null wrapper.", path, err)
		}
		return t, nil

	case nullableDef:
		return r.resolveTypeExpr(d.inner, Nullable, mode, defaults, path)

	case listDef:
		element, err := r.resolveTypeExpr(d.element, NullabilityDefault, mode, defaults, path)
		if err != nil {
			return nil, err
		}
		list, err := NewListOfType(element)
		if err != nil {
			return nil, NewError("Invalid List wrapper.", path, err)
		}
		return r.applyNullability(list, explicit, mode, defaults, path)
	}

	t, err := r.resolveNamed(def, path)
	if err != nil {
		return nil, err
	}
	return r.applyNullability(t, explicit, mode, defaults, path)
}

func (r *typeResolution) applyNullability(
	t Type,
	explicit Nullability,
	mode ioMode,
	defaults NonNullDefaults,
	path FieldPath) (Type, error) {

	nonNull := defaults.forMode(mode)
	switch explicit {
	case Nullable:
		nonNull = false
	case NonNullable:
		nonNull = true
	}

	if !nonNull {
		return t, nil
	}
	wrapped, err := NewNonNullOfType(t)
	if err != nil {
		return nil, NewError("Cannot apply non-null default.", path, err, ErrKindNullability)
	}
	return wrapped, nil
}

// buildFieldMap builds a FieldMap from the given Fields for the type named typeName. sourceType
// is the enclosing object's backing type (nil for interfaces) used to infer field types that are
// not declared explicitly.
func (r *typeResolution) buildFieldMap(
	typeName string,
	fieldConfigMap Fields,
	defaults NonNullDefaults,
	sourceType reflect.Type) (FieldMap, error) {

	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(FieldMap, numFields)
	for name, fieldConfig := range fieldConfigMap {
		path := NewFieldPath(typeName, name)

		typeDef := fieldConfig.Type
		if typeDef == nil {
			inferred, err := r.inferFieldDef(sourceType, typeName, name)
			if err != nil {
				return nil, err
			}
			typeDef = inferred
		}

		fieldType, err := r.resolveTypeExpr(typeDef, fieldConfig.Nullability, outputMode, defaults, path)
		if err != nil {
			return nil, err
		}
		if !IsOutputType(fieldType) {
			return nil, NewError(fmt.Sprintf(
				"The type of %s.%s must be Output Type but got: %s.", typeName, name, fieldType),
				path, ErrKindValidation)
		}

		args, err := r.buildArguments(fieldConfig.Args, defaults, path)
		if err != nil {
			return nil, err
		}

		fieldMap[name] = &field{
			config: fieldConfig,
			name:   name,
			ttype:  fieldType,
			args:   args,
		}
	}

	return fieldMap, nil
}

// buildArguments builds the list of Argument from an ArgumentConfigMap, sorted by name.
func (r *typeResolution) buildArguments(
	argConfigMap ArgumentConfigMap,
	defaults NonNullDefaults,
	fieldPath FieldPath) ([]Argument, error) {

	numArgs := len(argConfigMap)
	if numArgs == 0 {
		return nil, nil
	}

	names := make([]string, 0, numArgs)
	for name := range argConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]Argument, numArgs)
	for i, name := range names {
		argConfig := argConfigMap[name]
		path := fieldPath.With(name)

		argType, err := r.resolveTypeExpr(argConfig.Type, argConfig.Nullability, inputMode, defaults, path)
		if err != nil {
			return nil, err
		}
		if !IsInputType(argType) {
			return nil, NewError(fmt.Sprintf(
				"The type of argument %s must be Input Type but got: %s.", path, argType),
				path, ErrKindValidation)
		}

		args[i] = Argument{
			name:         name,
			description:  argConfig.Description,
			ttype:        argType,
			defaultValue: argConfig.DefaultValue,
		}
	}

	return args, nil
}

// buildInputFieldMap builds an InputFieldMap from the given InputFields.
func (r *typeResolution) buildInputFieldMap(
	typeName string,
	fieldConfigMap InputFields,
	defaults NonNullDefaults) (InputFieldMap, error) {

	numFields := len(fieldConfigMap)
	if numFields == 0 {
		return nil, nil
	}

	fieldMap := make(InputFieldMap, numFields)
	for name, fieldConfig := range fieldConfigMap {
		path := NewFieldPath(typeName, name)

		fieldType, err := r.resolveTypeExpr(fieldConfig.Type, fieldConfig.Nullability, inputMode, defaults, path)
		if err != nil {
			return nil, err
		}
		if !IsInputType(fieldType) {
			return nil, NewError(fmt.Sprintf(
				"The type of %s.%s must be Input Type but got: %s.", typeName, name, fieldType),
				path, ErrKindValidation)
		}

		fieldMap[name] = &InputField{
			name:         name,
			description:  fieldConfig.Description,
			ttype:        fieldType,
			defaultValue: fieldConfig.DefaultValue,
		}
	}

	return fieldMap, nil
}

//===----------------------------------------------------------------------------------------====//
// Type creators
//===----------------------------------------------------------------------------------------====//

// typeCreator defines the protocol to create a type instance from a config definition.
// LoadDataAndNew creates a "semi-initialized" instance without resolving any referenced
// definitions; any type reference resolution must be done in Finalize, otherwise definition
// cycles could not be created. Because at the point Finalize runs the instance has been published
// to the resolution state, it is safe to resolve any dependent type including the type being
// defined.
type typeCreator interface {
	LoadDataAndNew() (Type, error)
	Finalize(t Type, r *typeResolution) error
}

func newCreatorFor(def TypeDefinition) (typeCreator, error) {
	switch def := def.(type) {
	case *ObjectConfig:
		return &objectTypeCreator{def}, nil
	case *InterfaceConfig:
		return &interfaceTypeCreator{def}, nil
	case *UnionConfig:
		return &unionTypeCreator{def}, nil
	case *InputObjectConfig:
		return &inputObjectTypeCreator{def}, nil
	case *EnumConfig:
		return enumTypeCreator{def}, nil
	case *ScalarConfig:
		return scalarTypeCreator{def}, nil
	}
	return nil, NewError(
		fmt.Sprintf("Cannot build type from definition of type %T.", def), ErrKindInternal)
}

// objectTypeCreator creates an Object from an ObjectConfig.
type objectTypeCreator struct {
	config *ObjectConfig
}

var _ typeCreator = (*objectTypeCreator)(nil)

// LoadDataAndNew implements typeCreator.
func (creator *objectTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.config
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindDefinition)
	}
	return &Object{
		name:        config.Name,
		description: config.Description,
		sourceType:  sourceTypeOf(config.Source),
	}, nil
}

// Finalize implements typeCreator.
func (creator *objectTypeCreator) Finalize(t Type, r *typeResolution) error {
	object := t.(*Object)
	config := creator.config

	defaults := r.defaults
	if config.NonNullDefaults != nil {
		defaults = *config.NonNullDefaults
	}

	// Resolve interface references.
	if numInterfaces := len(config.Interfaces); numInterfaces > 0 {
		interfaces := make([]*Interface, numInterfaces)
		for i, ifaceDef := range config.Interfaces {
			iface, err := r.resolveNamed(ifaceDef, NewFieldPath(config.Name))
			if err != nil {
				return err
			}
			ifaceType, ok := iface.(*Interface)
			if !ok {
				return NewError(fmt.Sprintf(
					"%s may only implement Interface types, it cannot implement %s.", config.Name, iface),
					ErrKindValidation)
			}
			interfaces[i] = ifaceType
		}
		object.interfaces = interfaces
	}

	fields, err := r.buildFieldMap(config.Name, config.Fields, defaults, object.sourceType)
	if err != nil {
		return err
	}
	object.fields = fields
	return nil
}

// interfaceTypeCreator creates an Interface from an InterfaceConfig.
type interfaceTypeCreator struct {
	config *InterfaceConfig
}

var _ typeCreator = (*interfaceTypeCreator)(nil)

// LoadDataAndNew implements typeCreator.
func (creator *interfaceTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.config
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.", ErrKindDefinition)
	}
	return &Interface{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *interfaceTypeCreator) Finalize(t Type, r *typeResolution) error {
	iface := t.(*Interface)
	config := creator.config

	defaults := r.defaults
	if config.NonNullDefaults != nil {
		defaults = *config.NonNullDefaults
	}

	fields, err := r.buildFieldMap(config.Name, config.Fields, defaults, nil)
	if err != nil {
		return err
	}
	iface.fields = fields
	return nil
}

// unionTypeCreator creates a Union from a UnionConfig.
type unionTypeCreator struct {
	config *UnionConfig
}

var _ typeCreator = (*unionTypeCreator)(nil)

// LoadDataAndNew implements typeCreator.
func (creator *unionTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.config
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.", ErrKindDefinition)
	}
	return &Union{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *unionTypeCreator) Finalize(t Type, r *typeResolution) error {
	union := t.(*Union)
	config := creator.config

	if len(config.PossibleTypes) == 0 {
		return NewError(fmt.Sprintf(
			"Union type %s must define one or more member types.", config.Name), ErrKindValidation)
	}

	possibleTypes := make([]*Object, len(config.PossibleTypes))
	for i, possibleDef := range config.PossibleTypes {
		possible, err := r.resolveNamed(possibleDef, NewFieldPath(config.Name))
		if err != nil {
			return err
		}
		object, ok := possible.(*Object)
		if !ok {
			return NewError(fmt.Sprintf(
				"Union type %s can only include Object types, it cannot include %s.", config.Name, possible),
				ErrKindValidation)
		}
		possibleTypes[i] = object
	}
	union.possibleTypes = possibleTypes
	return nil
}

// inputObjectTypeCreator creates an InputObject from an InputObjectConfig.
type inputObjectTypeCreator struct {
	config *InputObjectConfig
}

var _ typeCreator = (*inputObjectTypeCreator)(nil)

// LoadDataAndNew implements typeCreator.
func (creator *inputObjectTypeCreator) LoadDataAndNew() (Type, error) {
	config := creator.config
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindDefinition)
	}
	return &InputObject{
		name:        config.Name,
		description: config.Description,
	}, nil
}

// Finalize implements typeCreator.
func (creator *inputObjectTypeCreator) Finalize(t Type, r *typeResolution) error {
	inputObject := t.(*InputObject)
	config := creator.config

	defaults := r.defaults
	if config.NonNullDefaults != nil {
		defaults = *config.NonNullDefaults
	}

	fields, err := r.buildInputFieldMap(config.Name, config.Fields, defaults)
	if err != nil {
		return err
	}
	inputObject.fields = fields
	return nil
}

// enumTypeCreator creates an Enum from an EnumConfig. Enums reference no other types so the
// whole creation happens in LoadDataAndNew.
type enumTypeCreator struct {
	config *EnumConfig
}

var _ typeCreator = enumTypeCreator{}

// LoadDataAndNew implements typeCreator.
func (creator enumTypeCreator) LoadDataAndNew() (Type, error) {
	enum, err := NewEnum(creator.config)
	if err != nil {
		return nil, err
	}
	return enum, nil
}

// Finalize implements typeCreator.
func (enumTypeCreator) Finalize(Type, *typeResolution) error {
	return nil
}

// scalarTypeCreator creates a Scalar from a ScalarConfig.
type scalarTypeCreator struct {
	config *ScalarConfig
}

var _ typeCreator = scalarTypeCreator{}

// LoadDataAndNew implements typeCreator.
func (creator scalarTypeCreator) LoadDataAndNew() (Type, error) {
	scalar, err := NewScalar(creator.config)
	if err != nil {
		return nil, err
	}
	return scalar, nil
}

// Finalize implements typeCreator.
func (scalarTypeCreator) Finalize(Type, *typeResolution) error {
	return nil
}
