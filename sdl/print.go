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

// Package sdl renders a built schema as GraphQL Schema Definition Language text. The output is
// deterministic: types print in lexicographic name order and fields, arguments and enum values
// print sorted by name, so rendering the same schema twice yields byte-identical text suitable
// for golden files and diffs.
package sdl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wanxger/nexus"
)

// Print renders the schema as SDL.
func Print(schema *nexus.Schema) string {
	var p printer
	p.printSchemaDefinition(schema)

	schema.TypeMap().Range(func(name string, t nexus.Type) bool {
		if nexus.IsBuiltInScalarName(name) {
			return true
		}
		p.printType(t)
		return true
	})

	return p.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) String() string {
	return p.b.String()
}

// writeBlock appends one top-level definition block, separated from the previous one by a blank
// line.
func (p *printer) writeBlock(block string) {
	if p.b.Len() > 0 {
		p.b.WriteString("\n")
	}
	p.b.WriteString(block)
	p.b.WriteString("\n")
}

// printSchemaDefinition prints the schema { ... } block, but only when some root operation type
// deviates from its conventional name; otherwise the block carries no information.
func (p *printer) printSchemaDefinition(schema *nexus.Schema) {
	conventional := schema.Query().Name() == "Query" &&
		(schema.Mutation() == nil || schema.Mutation().Name() == "Mutation") &&
		(schema.Subscription() == nil || schema.Subscription().Name() == "Subscription")
	if conventional {
		return
	}

	var b strings.Builder
	b.WriteString("schema {\n")
	fmt.Fprintf(&b, "  query: %s\n", schema.Query().Name())
	if schema.Mutation() != nil {
		fmt.Fprintf(&b, "  mutation: %s\n", schema.Mutation().Name())
	}
	if schema.Subscription() != nil {
		fmt.Fprintf(&b, "  subscription: %s\n", schema.Subscription().Name())
	}
	b.WriteString("}")
	p.writeBlock(b.String())
}

func (p *printer) printType(t nexus.Type) {
	switch t := t.(type) {
	case *nexus.Scalar:
		p.printScalar(t)
	case *nexus.Object:
		p.printObject(t)
	case *nexus.Interface:
		p.printInterface(t)
	case *nexus.Union:
		p.printUnion(t)
	case *nexus.Enum:
		p.printEnum(t)
	case *nexus.InputObject:
		p.printInputObject(t)
	}
}

func (p *printer) printScalar(t *nexus.Scalar) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")
	fmt.Fprintf(&b, "scalar %s", t.Name())
	p.writeBlock(b.String())
}

func (p *printer) printObject(t *nexus.Object) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")
	fmt.Fprintf(&b, "type %s", t.Name())
	writeImplements(&b, t.Interfaces())
	writeFieldBlock(&b, t.Fields())
	p.writeBlock(b.String())
}

func (p *printer) printInterface(t *nexus.Interface) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")
	fmt.Fprintf(&b, "interface %s", t.Name())
	writeFieldBlock(&b, t.Fields())
	p.writeBlock(b.String())
}

func (p *printer) printUnion(t *nexus.Union) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")

	names := make([]string, len(t.PossibleTypes()))
	for i, possible := range t.PossibleTypes() {
		names[i] = possible.Name()
	}
	fmt.Fprintf(&b, "union %s = %s", t.Name(), strings.Join(names, " | "))
	p.writeBlock(b.String())
}

func (p *printer) printEnum(t *nexus.Enum) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")
	fmt.Fprintf(&b, "enum %s {\n", t.Name())
	for _, value := range t.Values() {
		writeDescription(&b, value.Description(), "  ")
		fmt.Fprintf(&b, "  %s", value.Name())
		writeDeprecated(&b, value.Deprecation())
		b.WriteString("\n")
	}
	b.WriteString("}")
	p.writeBlock(b.String())
}

func (p *printer) printInputObject(t *nexus.InputObject) {
	var b strings.Builder
	writeDescription(&b, t.Description(), "")
	fmt.Fprintf(&b, "input %s {\n", t.Name())

	names := make([]string, 0, len(t.Fields()))
	for name := range t.Fields() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		inputField := t.Fields()[name]
		writeDescription(&b, inputField.Description(), "  ")
		fmt.Fprintf(&b, "  %s: %s", name, inputField.Type())
		if inputField.HasDefaultValue() {
			fmt.Fprintf(&b, " = %s", printValue(inputField.DefaultValue(), inputField.Type()))
		}
		b.WriteString("\n")
	}

	b.WriteString("}")
	p.writeBlock(b.String())
}

func writeImplements(b *strings.Builder, interfaces []*nexus.Interface) {
	if len(interfaces) == 0 {
		return
	}
	names := make([]string, len(interfaces))
	for i, iface := range interfaces {
		names[i] = iface.Name()
	}
	fmt.Fprintf(b, " implements %s", strings.Join(names, " & "))
}

func writeFieldBlock(b *strings.Builder, fields nexus.FieldMap) {
	b.WriteString(" {\n")

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := fields[name]
		writeDescription(b, field.Description(), "  ")
		fmt.Fprintf(b, "  %s", name)
		writeArguments(b, field.Args())
		fmt.Fprintf(b, ": %s", field.Type())
		writeDeprecated(b, field.Deprecation())
		b.WriteString("\n")
	}

	b.WriteString("}")
}

func writeArguments(b *strings.Builder, args []nexus.Argument) {
	if len(args) == 0 {
		return
	}
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %s", arg.Name(), arg.Type())
		if arg.HasDefaultValue() {
			fmt.Fprintf(b, " = %s", printValue(arg.DefaultValue(), arg.Type()))
		}
	}
	b.WriteString(")")
}

func writeDeprecated(b *strings.Builder, deprecation *nexus.Deprecation) {
	if !deprecation.Defined() {
		return
	}
	if len(deprecation.Reason) == 0 {
		b.WriteString(" @deprecated")
		return
	}
	fmt.Fprintf(b, " @deprecated(reason: %s)", strconv.Quote(deprecation.Reason))
}

// writeDescription writes a block-string description line with the given indentation.
func writeDescription(b *strings.Builder, description, indent string) {
	if len(description) == 0 {
		return
	}
	if strings.ContainsRune(description, '\n') {
		fmt.Fprintf(b, "%s\"\"\"\n", indent)
		for _, line := range strings.Split(description, "\n") {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
		fmt.Fprintf(b, "%s\"\"\"\n", indent)
		return
	}
	fmt.Fprintf(b, "%s\"\"\"%s\"\"\"\n", indent, description)
}

// printValue renders a Go value as a GraphQL value literal for the given type position. The type
// disambiguates where the Go value alone cannot: a string default in an enum position prints as
// the bare enum value name, never as a string literal.
func printValue(value interface{}, t nexus.Type) string {
	t = nexus.NullableTypeOf(t)

	if enum, ok := t.(*nexus.Enum); ok {
		if name, ok := value.(string); ok && enum.Value(name) != nil {
			return name
		}
		for _, enumValue := range enum.Values() {
			if enumValue.Value() == value {
				return enumValue.Name()
			}
		}
	}

	switch value := value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(value)
	case bool:
		return strconv.FormatBool(value)
	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case []interface{}:
		var elementType nexus.Type
		if list, ok := t.(*nexus.List); ok {
			elementType = list.ElementType()
		}
		items := make([]string, len(value))
		for i, item := range value {
			items[i] = printValue(item, elementType)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]interface{}:
		inputObject, _ := t.(*nexus.InputObject)
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fields := make([]string, len(keys))
		for i, key := range keys {
			var fieldType nexus.Type
			if inputObject != nil {
				if inputField := inputObject.Fields()[key]; inputField != nil {
					fieldType = inputField.Type()
				}
			}
			fields[i] = fmt.Sprintf("%s: %s", key, printValue(value[key], fieldType))
		}
		return "{" + strings.Join(fields, ", ") + "}"
	}
	return fmt.Sprintf("%v", value)
}
