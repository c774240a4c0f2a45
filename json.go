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
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// TypeKind names the introspection kind of a type in the JSON export.
type TypeKind string

// Type kinds in the JSON export, matching the values of the __TypeKind introspection enum.
const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

// KindOf returns the introspection kind for the given type.
func KindOf(t Type) TypeKind {
	switch t.(type) {
	case *Scalar:
		return TypeKindScalar
	case *Object:
		return TypeKindObject
	case *Interface:
		return TypeKindInterface
	case *Union:
		return TypeKindUnion
	case *Enum:
		return TypeKindEnum
	case *InputObject:
		return TypeKindInputObject
	case *List:
		return TypeKindList
	case *NonNull:
		return TypeKindNonNull
	}
	return ""
}

// MarshalJSON implements json.Marshaler.
func (schema *Schema) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(schema)
}

// MarshalSchemaJSON serializes the schema in the shape of an introspection query result: the
// root operation type names plus the full description of every named type, in lexicographic
// name order. The output is deterministic for a given schema.
func MarshalSchemaJSON(schema *Schema) ([]byte, error) {
	return jsoniter.Marshal(schema)
}

// schemaMarshaller implements jsoniter.ValEncoder for Schema.
type schemaMarshaller struct{}

// IsEmpty implements jsoniter.ValEncoder.
func (schemaMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

// Encode implements jsoniter.ValEncoder.
func (schemaMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	schema := (*Schema)(ptr)

	stream.WriteObjectStart()

	stream.WriteObjectField("queryType")
	writeRootRef(stream, schema.Query())

	stream.WriteMore()
	stream.WriteObjectField("mutationType")
	writeRootRef(stream, schema.Mutation())

	stream.WriteMore()
	stream.WriteObjectField("subscriptionType")
	writeRootRef(stream, schema.Subscription())

	stream.WriteMore()
	stream.WriteObjectField("types")
	stream.WriteArrayStart()
	first := true
	schema.TypeMap().Range(func(name string, t Type) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		writeFullType(stream, t)
		return true
	})
	stream.WriteArrayEnd()

	stream.WriteObjectEnd()
}

func writeRootRef(stream *jsoniter.Stream, root *Object) {
	if root == nil {
		stream.WriteNil()
		return
	}
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(root.Name())
	stream.WriteObjectEnd()
}

// writeTypeRef writes the kind/name/ofType reference chain for a possibly wrapped type.
func writeTypeRef(stream *jsoniter.Stream, t Type) {
	stream.WriteObjectStart()
	stream.WriteObjectField("kind")
	stream.WriteString(string(KindOf(t)))

	if wrapping, ok := t.(WrappingType); ok {
		stream.WriteMore()
		stream.WriteObjectField("ofType")
		writeTypeRef(stream, wrapping.UnwrappedType())
	} else {
		stream.WriteMore()
		stream.WriteObjectField("name")
		stream.WriteString(t.(TypeWithName).Name())
	}
	stream.WriteObjectEnd()
}

func writeDescription(stream *jsoniter.Stream, description string) {
	stream.WriteMore()
	stream.WriteObjectField("description")
	if len(description) == 0 {
		stream.WriteNil()
	} else {
		stream.WriteString(description)
	}
}

func writeDeprecation(stream *jsoniter.Stream, deprecation *Deprecation) {
	stream.WriteMore()
	stream.WriteObjectField("isDeprecated")
	stream.WriteBool(deprecation.Defined())

	stream.WriteMore()
	stream.WriteObjectField("deprecationReason")
	if deprecation.Defined() && len(deprecation.Reason) > 0 {
		stream.WriteString(deprecation.Reason)
	} else {
		stream.WriteNil()
	}
}

// writeFullType writes the complete description of a named type.
func writeFullType(stream *jsoniter.Stream, t Type) {
	stream.WriteObjectStart()
	stream.WriteObjectField("kind")
	stream.WriteString(string(KindOf(t)))

	stream.WriteMore()
	stream.WriteObjectField("name")
	stream.WriteString(t.(TypeWithName).Name())

	if described, ok := t.(TypeWithDescription); ok {
		writeDescription(stream, described.Description())
	}

	switch t := t.(type) {
	case *Object:
		writeFields(stream, t.Fields())

		stream.WriteMore()
		stream.WriteObjectField("interfaces")
		stream.WriteArrayStart()
		for i, iface := range t.Interfaces() {
			if i > 0 {
				stream.WriteMore()
			}
			writeTypeRef(stream, iface)
		}
		stream.WriteArrayEnd()

	case *Interface:
		writeFields(stream, t.Fields())

	case *Union:
		stream.WriteMore()
		stream.WriteObjectField("possibleTypes")
		stream.WriteArrayStart()
		for i, possible := range t.PossibleTypes() {
			if i > 0 {
				stream.WriteMore()
			}
			writeTypeRef(stream, possible)
		}
		stream.WriteArrayEnd()

	case *Enum:
		stream.WriteMore()
		stream.WriteObjectField("enumValues")
		stream.WriteArrayStart()
		for i, value := range t.Values() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("name")
			stream.WriteString(value.Name())
			writeDescription(stream, value.Description())
			writeDeprecation(stream, value.Deprecation())
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()

	case *InputObject:
		stream.WriteMore()
		stream.WriteObjectField("inputFields")
		stream.WriteArrayStart()
		first := true
		for _, name := range sortedInputFieldNames(t.Fields()) {
			if !first {
				stream.WriteMore()
			}
			first = false
			writeInputField(stream, t.Fields()[name])
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
}

func writeFields(stream *jsoniter.Stream, fields FieldMap) {
	stream.WriteMore()
	stream.WriteObjectField("fields")
	stream.WriteArrayStart()
	first := true
	for _, name := range sortedFieldNames(fields) {
		if !first {
			stream.WriteMore()
		}
		first = false
		writeField(stream, fields[name])
	}
	stream.WriteArrayEnd()
}

func writeField(stream *jsoniter.Stream, f Field) {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(f.Name())
	writeDescription(stream, f.Description())

	stream.WriteMore()
	stream.WriteObjectField("args")
	stream.WriteArrayStart()
	for i, arg := range f.Args() {
		if i > 0 {
			stream.WriteMore()
		}
		writeArgument(stream, arg)
	}
	stream.WriteArrayEnd()

	stream.WriteMore()
	stream.WriteObjectField("type")
	writeTypeRef(stream, f.Type())

	writeDeprecation(stream, f.Deprecation())
	stream.WriteObjectEnd()
}

func writeArgument(stream *jsoniter.Stream, arg Argument) {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(arg.Name())
	writeDescription(stream, arg.Description())

	stream.WriteMore()
	stream.WriteObjectField("type")
	writeTypeRef(stream, arg.Type())

	stream.WriteMore()
	stream.WriteObjectField("defaultValue")
	if arg.HasDefaultValue() {
		stream.WriteVal(arg.DefaultValue())
	} else {
		stream.WriteNil()
	}
	stream.WriteObjectEnd()
}

func writeInputField(stream *jsoniter.Stream, f *InputField) {
	stream.WriteObjectStart()
	stream.WriteObjectField("name")
	stream.WriteString(f.Name())
	writeDescription(stream, f.Description())

	stream.WriteMore()
	stream.WriteObjectField("type")
	writeTypeRef(stream, f.Type())

	stream.WriteMore()
	stream.WriteObjectField("defaultValue")
	if f.HasDefaultValue() {
		stream.WriteVal(f.DefaultValue())
	} else {
		stream.WriteNil()
	}
	stream.WriteObjectEnd()
}

func sortedFieldNames(fields FieldMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedInputFieldNames(fields InputFieldMap) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	jsoniter.RegisterTypeEncoder("nexus.Schema", schemaMarshaller{})
}
