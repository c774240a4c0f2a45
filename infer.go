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
	"strings"

	"github.com/wanxger/nexus/internal/util"
)

// FieldTagName is the struct tag inspected on backing source fields. The tag value names the
// GraphQL field the Go field backs; the "id" option types the field as ID:
//
//	type Post struct {
//	    ID    string `nexus:"id,id"`
//	    Title string
//	    Web   string `nexus:"url"`
//	}
const FieldTagName = "nexus"

// sourceFieldMatch is the result of locating the Go counterpart of a GraphQL field on a backing
// source type.
type sourceFieldMatch struct {
	// goType is the Go type carrying the field data. For a method match this is the first
	// (non-error) return type.
	goType reflect.Type

	// isID indicates the field was tagged as an ID.
	isID bool
}

// inferFieldDef derives a type definition for the GraphQL field fieldName of the type named
// typeName from its backing source type. The returned definition is fully explicit about
// nullability (a Go pointer maps to a nullable position, everything else to non-null), so the
// ambient NonNullDefaults never apply to inferred fields.
func (r *typeResolution) inferFieldDef(sourceType reflect.Type, typeName string, fieldName string) (TypeDefinition, error) {
	path := NewFieldPath(typeName, fieldName)

	if sourceType == nil {
		return nil, NewError(fmt.Sprintf(
			"Field %s.%s has no type and %s declares no backing Source to infer one from.",
			typeName, fieldName, typeName), path, ErrKindBacking)
	}

	match, err := lookupSourceField(sourceType, fieldName)
	if err != nil {
		return nil, NewError(fmt.Sprintf(
			"Cannot infer type for field %s.%s.", typeName, fieldName), path, err, ErrKindBacking)
	}

	if match.isID {
		if match.goType.Kind() == reflect.Ptr {
			return NullableOf(T("ID")), nil
		}
		return NonNullOf(T("ID")), nil
	}

	def, err := r.inferTypeDef(match.goType)
	if err != nil {
		return nil, NewError(fmt.Sprintf(
			"Cannot infer type for field %s.%s.", typeName, fieldName), path, err, ErrKindBacking)
	}
	return def, nil
}

// inferTypeDef maps a Go type to a type definition with explicit nullability.
func (r *typeResolution) inferTypeDef(rt reflect.Type) (TypeDefinition, error) {
	nullable := false
	if rt.Kind() == reflect.Ptr {
		nullable = true
		rt = rt.Elem()
	}

	var base TypeDefinition
	switch rt.Kind() {
	case reflect.String:
		base = T("String")

	case reflect.Bool:
		base = T("Boolean")

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		base = T("Int")

	case reflect.Float32, reflect.Float64:
		base = T("Float")

	case reflect.Slice, reflect.Array:
		element, err := r.inferTypeDef(rt.Elem())
		if err != nil {
			return nil, err
		}
		base = ListOf(element)

	case reflect.Struct:
		name, err := r.sourceName(rt)
		if err != nil {
			return nil, err
		}
		base = T(name)

	default:
		return nil, NewError(fmt.Sprintf(
			"Go type %s does not map to a GraphQL type.", rt), ErrKindBacking)
	}

	if nullable {
		return NullableOf(base), nil
	}
	return NonNullOf(base), nil
}

// lookupSourceField locates the struct field or method on sourceType that backs the GraphQL
// field fieldName. Tagged fields are matched first, then fields and methods whose name is the
// CamelCase form of the GraphQL name. Methods match on the pointer receiver set and must take no
// arguments (besides the receiver) and return either (R) or (R, error).
func lookupSourceField(sourceType reflect.Type, fieldName string) (sourceFieldMatch, error) {
	if sourceType.Kind() != reflect.Struct {
		return sourceFieldMatch{}, NewError(fmt.Sprintf(
			"backing source must be a struct type, but got %s", sourceType), ErrKindBacking)
	}

	// Tag match
	for i := 0; i < sourceType.NumField(); i++ {
		structField := sourceType.Field(i)
		tagName, isID, tagged := parseFieldTag(structField.Tag)
		if !tagged {
			continue
		}
		if tagName == fieldName || (len(tagName) == 0 && structField.Name == util.CamelCase(fieldName)) {
			return sourceFieldMatch{goType: structField.Type, isID: isID}, nil
		}
	}

	goName := util.CamelCase(fieldName)

	if structField, ok := sourceType.FieldByName(goName); ok {
		return sourceFieldMatch{goType: structField.Type}, nil
	}

	if method, ok := reflect.PtrTo(sourceType).MethodByName(goName); ok {
		returnType, err := methodReturnType(method.Type)
		if err != nil {
			return sourceFieldMatch{}, NewError(fmt.Sprintf(
				"method %s.%s cannot back a field", sourceType, goName), err, ErrKindBacking)
		}
		return sourceFieldMatch{goType: returnType}, nil
	}

	return sourceFieldMatch{}, NewError(fmt.Sprintf(
		"backing type %s has no field or method %s", sourceType, goName), ErrKindBacking)
}

// parseFieldTag splits a `nexus:"..."` tag into the field name and the set of options. The third
// return value is false when no tag is present.
func parseFieldTag(tag reflect.StructTag) (name string, isID bool, ok bool) {
	value, ok := tag.Lookup(FieldTagName)
	if !ok {
		return "", false, false
	}
	parts := strings.Split(value, ",")
	name = parts[0]
	for _, option := range parts[1:] {
		if option == "id" {
			isID = true
		}
	}
	return name, isID, true
}

// methodReturnType extracts the data return type from a method type of shape func(recv) (R) or
// func(recv) (R, error).
func methodReturnType(methodType reflect.Type) (reflect.Type, error) {
	if methodType.NumIn() != 1 {
		return nil, NewError("it takes arguments", ErrKindBacking)
	}
	switch methodType.NumOut() {
	case 1:
		return methodType.Out(0), nil
	case 2:
		if methodType.Out(1) != errorInterfaceType {
			return nil, NewError("its second return value is not error", ErrKindBacking)
		}
		return methodType.Out(0), nil
	}
	return nil, NewError("it must return (R) or (R, error)", ErrKindBacking)
}

var errorInterfaceType = reflect.TypeOf((*error)(nil)).Elem()
