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

// Package backing validates the Go side of a schema: that every resolver function has the
// canonical signature, that resolver parameter and return types line up with the schema's source
// structs and declared field types, and that backing struct shapes can actually produce the
// values the schema promises.
//
// Validation is a separate pass over a built Schema rather than part of schema construction, so
// a schema whose types are declared before their Go backing has settled can still be built,
// rendered and exported while the mismatches are reported in bulk:
//
//	schema := nexus.MustMakeSchema(config)
//	if errs := backing.Validate(schema); errs.HaveOccurred() {
//	    log.Fatal(errs.Err())
//	}
package backing

import (
	"context"
	"fmt"
	"reflect"

	"github.com/wanxger/nexus"
	"github.com/wanxger/nexus/internal/util"
)

var (
	contextInterfaceType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorInterfaceType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Validate checks every object type in the schema against its Go backing and collects every
// mismatch found. An empty result means all resolvers and backing structs line up with the
// schema.
func Validate(schema *nexus.Schema) nexus.Errors {
	errs := nexus.NoErrors()

	schema.TypeMap().Range(func(name string, t nexus.Type) bool {
		object, ok := t.(*nexus.Object)
		if !ok {
			return true
		}
		validateObject(schema, object, &errs)
		return true
	})

	return errs
}

func validateObject(schema *nexus.Schema, object *nexus.Object, errs *nexus.Errors) {
	sourceType := object.SourceType()

	for fieldName, field := range object.Fields() {
		path := nexus.NewFieldPath(object.Name(), fieldName)

		if resolver := field.Resolver(); resolver != nil {
			validateResolver(object, fieldName, field, resolver, errs)
			continue
		}

		// Without a resolver the field is served straight from the backing struct; check the
		// struct can produce it.
		if sourceType == nil {
			continue
		}
		goType, err := fieldGoType(sourceType, fieldName)
		if err != nil {
			// The builder rejects unmatchable fields only when it had to infer their type; an
			// explicitly typed field with no Go counterpart and no resolver surfaces here.
			errs.Append(nexus.NewError(fmt.Sprintf(
				"Field %s.%s has no resolver and no Go counterpart on %s.",
				object.Name(), fieldName, sourceType), path, err, nexus.ErrKindBacking))
			continue
		}
		checkOutputType(goType, field.Type(), path, errs)
	}
}

// fieldGoType locates the Go type that backs fieldName on sourceType: a struct field matched by
// tag or CamelCase name, or a no-argument method returning (R) or (R, error).
func fieldGoType(sourceType reflect.Type, fieldName string) (reflect.Type, error) {
	goName := util.CamelCase(fieldName)

	for i := 0; i < sourceType.NumField(); i++ {
		structField := sourceType.Field(i)
		if tag, ok := structField.Tag.Lookup(nexus.FieldTagName); ok {
			if name := tagFieldName(tag); name == fieldName {
				return structField.Type, nil
			}
		}
	}

	if structField, ok := sourceType.FieldByName(goName); ok {
		return structField.Type, nil
	}

	if method, ok := reflect.PtrTo(sourceType).MethodByName(goName); ok {
		methodType := method.Type
		if methodType.NumIn() != 1 {
			return nil, nexus.NewError(fmt.Sprintf(
				"method %s.%s takes arguments", sourceType, goName), nexus.ErrKindBacking)
		}
		switch methodType.NumOut() {
		case 1:
			return methodType.Out(0), nil
		case 2:
			if methodType.Out(1) == errorInterfaceType {
				return methodType.Out(0), nil
			}
		}
		return nil, nexus.NewError(fmt.Sprintf(
			"method %s.%s must return (R) or (R, error)", sourceType, goName), nexus.ErrKindBacking)
	}

	return nil, nexus.NewError(fmt.Sprintf(
		"no field or method %s", goName), nexus.ErrKindBacking)
}

func tagFieldName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}
	return tag
}

//===----------------------------------------------------------------------------------------====//
// Resolver signature
//===----------------------------------------------------------------------------------------====//

// validateResolver checks a resolver function against the canonical shapes
//
//	func(ctx context.Context, source S) (R, error)
//	func(ctx context.Context, source S, args A) (R, error)
//
// where S is the enclosing object's backing type, A is a struct covering the declared arguments
// and R matches the declared field type.
func validateResolver(object *nexus.Object, fieldName string, field nexus.Field, resolver interface{}, errs *nexus.Errors) {
	path := nexus.NewFieldPath(object.Name(), fieldName)
	resolverType := reflect.TypeOf(resolver)

	if resolverType.Kind() != reflect.Func {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must be a function, but got %s.",
			object.Name(), fieldName, resolverType), path, nexus.ErrKindBacking)
		return
	}

	numIn := resolverType.NumIn()
	if numIn < 2 || numIn > 3 || resolverType.IsVariadic() {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must take (ctx, source) or (ctx, source, args), but takes %d parameters.",
			object.Name(), fieldName, numIn), path, nexus.ErrKindBacking)
		return
	}

	if resolverType.In(0) != contextInterfaceType {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must take context.Context as its first parameter, but takes %s.",
			object.Name(), fieldName, resolverType.In(0)), path, nexus.ErrKindBacking)
	}

	if sourceType := object.SourceType(); sourceType != nil {
		paramType := resolverType.In(1)
		if paramType.Kind() == reflect.Ptr {
			paramType = paramType.Elem()
		}
		if paramType != sourceType {
			errs.Emplace(fmt.Sprintf(
				"Resolver for %s.%s must take the backing type %s (or a pointer to it) as its source parameter, but takes %s.",
				object.Name(), fieldName, sourceType, resolverType.In(1)), path, nexus.ErrKindBacking)
		}
	}

	if numIn == 3 {
		validateArgsParam(object, fieldName, field, resolverType.In(2), errs)
	} else if len(field.Args()) > 0 {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must take an args parameter because the field declares arguments.",
			object.Name(), fieldName), path, nexus.ErrKindBacking)
	}

	if resolverType.NumOut() != 2 || resolverType.Out(1) != errorInterfaceType {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must return (R, error).", object.Name(), fieldName),
			path, nexus.ErrKindBacking)
		return
	}

	checkOutputType(resolverType.Out(0), field.Type(), path, errs)
}

// validateArgsParam checks the args struct parameter: every declared argument must map to a
// struct field whose Go type admits the argument's input type.
func validateArgsParam(object *nexus.Object, fieldName string, field nexus.Field, argsType reflect.Type, errs *nexus.Errors) {
	path := nexus.NewFieldPath(object.Name(), fieldName)

	if argsType.Kind() == reflect.Ptr {
		argsType = argsType.Elem()
	}
	if argsType.Kind() != reflect.Struct {
		errs.Emplace(fmt.Sprintf(
			"Resolver for %s.%s must take a struct as its args parameter, but takes %s.",
			object.Name(), fieldName, argsType), path, nexus.ErrKindBacking)
		return
	}

	for _, arg := range field.Args() {
		argPath := path.With(arg.Name())
		goName := util.CamelCase(arg.Name())

		structField, ok := argsType.FieldByName(goName)
		if !ok {
			errs.Emplace(fmt.Sprintf(
				"Argument %s of %s.%s has no field %s on the resolver args struct %s.",
				arg.Name(), object.Name(), fieldName, goName, argsType),
				argPath, nexus.ErrKindBacking)
			continue
		}

		checkInputType(structField.Type, arg.Type(), argPath, errs)
	}
}

//===----------------------------------------------------------------------------------------====//
// Go/GraphQL type compatibility
//===----------------------------------------------------------------------------------------====//

// checkOutputType checks that a Go type can produce values of the given GraphQL output type.
func checkOutputType(goType reflect.Type, t nexus.Type, path nexus.FieldPath, errs *nexus.Errors) {
	checkTypeCompat(goType, t, path, true, errs)
}

// checkInputType checks that a Go type can receive values of the given GraphQL input type.
func checkInputType(goType reflect.Type, t nexus.Type, path nexus.FieldPath, errs *nexus.Errors) {
	checkTypeCompat(goType, t, path, false, errs)
}

func checkTypeCompat(goType reflect.Type, t nexus.Type, path nexus.FieldPath, output bool, errs *nexus.Errors) {
	if nonNull, ok := t.(*nexus.NonNull); ok {
		// A Non-Null position must not be backed by a pointer: the Go type system would otherwise
		// admit a nil where the schema promises a value.
		if goType.Kind() == reflect.Ptr {
			errs.Emplace(fmt.Sprintf(
				"Non-Null type %s cannot be backed by pointer type %s.", t, goType),
				path, nexus.ErrKindBacking)
			return
		}
		checkTypeCompat(goType, nonNull.InnerType(), path, output, errs)
		return
	}

	// A nullable position admits a pointer; unwrap it before checking the underlying type.
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	switch t := t.(type) {
	case *nexus.List:
		if goType.Kind() != reflect.Slice && goType.Kind() != reflect.Array {
			errs.Emplace(fmt.Sprintf(
				"List type %s must be backed by a slice or array, but got %s.", t, goType),
				path, nexus.ErrKindBacking)
			return
		}
		checkTypeCompat(goType.Elem(), t.ElementType(), path, output, errs)

	case *nexus.Scalar:
		if !t.AcceptsGoType(goType) {
			errs.Emplace(fmt.Sprintf(
				"Scalar %s cannot be backed by Go type %s.", t.Name(), goType),
				path, nexus.ErrKindBacking)
		}

	case *nexus.Enum:
		checkEnumCompat(goType, t, path, errs)

	case *nexus.Object:
		sourceType := t.SourceType()
		if sourceType == nil {
			// An object without a declared Source accepts any backing shape.
			return
		}
		if goType != sourceType {
			errs.Emplace(fmt.Sprintf(
				"Object type %s is backed by %s, but got %s.", t.Name(), sourceType, goType),
				path, nexus.ErrKindBacking)
		}

	case *nexus.InputObject:
		if goType.Kind() != reflect.Struct {
			errs.Emplace(fmt.Sprintf(
				"Input object %s must be backed by a struct, but got %s.", t.Name(), goType),
				path, nexus.ErrKindBacking)
			return
		}
		for fieldName, inputField := range t.Fields() {
			goName := util.CamelCase(fieldName)
			structField, ok := goType.FieldByName(goName)
			if !ok {
				errs.Emplace(fmt.Sprintf(
					"Input object field %s.%s has no field %s on the backing struct %s.",
					t.Name(), fieldName, goName, goType), path.With(fieldName), nexus.ErrKindBacking)
				continue
			}
			checkTypeCompat(structField.Type, inputField.Type(), path.With(fieldName), false, errs)
		}
	}

	// Interfaces and unions admit any Go shape: the concrete type varies per value.
}

// checkEnumCompat checks a Go type against the internal values of an enum. The Go type must be
// able to carry every internal value the enum defines.
func checkEnumCompat(goType reflect.Type, enum *nexus.Enum, path nexus.FieldPath, errs *nexus.Errors) {
	for _, value := range enum.Values() {
		internal := value.Value()
		if internal == nil {
			continue
		}
		internalType := reflect.TypeOf(internal)
		if !internalType.AssignableTo(goType) && !sameKindFamily(internalType.Kind(), goType.Kind()) {
			errs.Emplace(fmt.Sprintf(
				"Enum %s has internal value %v (%s) for %s which cannot be carried by Go type %s.",
				enum.Name(), internal, internalType, value.Name(), goType),
				path, nexus.ErrKindBacking)
			return
		}
	}
}

// sameKindFamily reports whether two reflect kinds carry the same family of values (any integer
// width counts as one family, as does any float width).
func sameKindFamily(a, b reflect.Kind) bool {
	family := func(k reflect.Kind) int {
		switch k {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return 1
		case reflect.Float32, reflect.Float64:
			return 2
		case reflect.String:
			return 3
		case reflect.Bool:
			return 4
		}
		return 0
	}
	fa, fb := family(a), family(b)
	return fa != 0 && fa == fb
}
