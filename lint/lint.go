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

// Package lint checks GraphQL SDL documents against schema style rules: naming conventions for
// types, fields and enum values, description coverage, and the nullability of root operation
// fields.
package lint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/wanxger/nexus"
	"github.com/wanxger/nexus/internal/util"
)

// Severity classifies how a reported issue should be treated.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalJSON writes the severity as its name rather than its numeric value.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// An Issue is one finding in an SDL document.
type Issue struct {
	// Rule is the stable identifier of the rule that fired.
	Rule string `json:"rule"`

	// Message describes the finding.
	Message string `json:"message"`

	// File and Line locate the finding. Line is 1-based; 0 when the position is unknown.
	File string `json:"file"`
	Line int    `json:"line"`

	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s:%d: %s: %s [%s]", i.File, i.Line, i.Severity, i.Message, i.Rule)
}

// Options selects which rules run.
type Options struct {
	// RequireDescriptions reports types and fields without a description.
	RequireDescriptions bool

	// AllowNonNullRootFields suppresses the root-field-nullability rule. A non-null field on a
	// root operation type turns any resolver failure into a failure of the whole operation, so
	// the rule flags them by default.
	AllowNonNullRootFields bool

	// NonNullDefaults, when set, enables the nullability-policy rule: every field, argument and
	// input field is checked against the configured policy, and positions wrapped the other way
	// are reported. Output positions should be non-null exactly when Output is true; input
	// positions exactly when Input is true.
	NonNullDefaults *nexus.NonNullDefaults
}

// Rule identifiers as they appear in reported issues and in configuration.
const (
	RuleTypeNaming        = "type-naming"
	RuleFieldNaming       = "field-naming"
	RuleEnumValueNaming   = "enum-value-naming"
	RuleRootNullability   = "root-field-nullability"
	RuleNullabilityPolicy = "nullability-policy"
	RuleDescriptions      = "descriptions"
)

// File lints a single SDL document. A parse failure is returned as an error rather than an
// issue; the document must at least be syntactically valid SDL.
func File(name, input string, opts Options) ([]Issue, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, err
	}

	l := &linter{file: name, opts: opts}
	for _, def := range doc.Definitions {
		l.checkDefinition(def)
	}
	for _, def := range doc.Extensions {
		l.checkDefinition(def)
	}
	return l.issues, nil
}

type linter struct {
	file   string
	opts   Options
	issues []Issue
}

func (l *linter) report(rule string, severity Severity, pos *ast.Position, format string, args ...interface{}) {
	issue := Issue{
		Rule:     rule,
		Message:  fmt.Sprintf(format, args...),
		File:     l.file,
		Severity: severity,
	}
	if pos != nil {
		issue.Line = pos.Line
	}
	l.issues = append(l.issues, issue)
}

func (l *linter) checkDefinition(def *ast.Definition) {
	if strings.HasPrefix(def.Name, "__") {
		return
	}

	if !isPascalCase(def.Name) {
		l.report(RuleTypeNaming, SeverityError, def.Position,
			"type %q should be PascalCase", def.Name)
	}

	if l.opts.RequireDescriptions && len(def.Description) == 0 {
		l.report(RuleDescriptions, SeverityWarning, def.Position,
			"type %q has no description", def.Name)
	}

	isRoot := def.Name == "Query" || def.Name == "Mutation" || def.Name == "Subscription"

	switch def.Kind {
	case ast.Object, ast.Interface, ast.InputObject:
		for _, field := range def.Fields {
			l.checkField(def, field, isRoot)
		}

	case ast.Enum:
		for _, value := range def.EnumValues {
			if !util.IsScreamingSnakeCase(value.Name) {
				l.report(RuleEnumValueNaming, SeverityError, value.Position,
					"enum value %q of %q should be SCREAMING_SNAKE_CASE", value.Name, def.Name)
			}
		}
	}
}

func (l *linter) checkField(def *ast.Definition, field *ast.FieldDefinition, isRoot bool) {
	if strings.HasPrefix(field.Name, "__") {
		return
	}

	if !isLowerCamelCase(field.Name) {
		l.report(RuleFieldNaming, SeverityError, field.Position,
			"field %q of %q should be lowerCamelCase", field.Name, def.Name)
	}

	if l.opts.RequireDescriptions && len(field.Description) == 0 {
		l.report(RuleDescriptions, SeverityWarning, field.Position,
			"field %q of %q has no description", field.Name, def.Name)
	}

	for _, arg := range field.Arguments {
		if !isLowerCamelCase(arg.Name) {
			l.report(RuleFieldNaming, SeverityError, arg.Position,
				"argument %q of %q.%s should be lowerCamelCase", arg.Name, def.Name, field.Name)
		}
	}

	if isRoot && !l.opts.AllowNonNullRootFields && field.Type.NonNull {
		l.report(RuleRootNullability, SeverityWarning, field.Position,
			"root field %q.%s is non-null; a resolver error will fail the entire operation",
			def.Name, field.Name)
	}

	l.checkNullabilityPolicy(def, field)
}

// checkNullabilityPolicy reports positions whose nullability deviates from the configured
// policy. Fields of input object types and all arguments are input positions; every other field
// is an output position.
func (l *linter) checkNullabilityPolicy(def *ast.Definition, field *ast.FieldDefinition) {
	policy := l.opts.NonNullDefaults
	if policy == nil {
		return
	}

	mode, want := "output", policy.Output
	if def.Kind == ast.InputObject {
		mode, want = "input", policy.Input
	}
	if field.Type.NonNull != want {
		l.report(RuleNullabilityPolicy, SeverityWarning, field.Position,
			"field %q of %q is %s; the configured policy makes %s positions %s",
			field.Name, def.Name, nullabilityName(field.Type.NonNull), mode, nullabilityName(want))
	}

	for _, arg := range field.Arguments {
		if arg.Type.NonNull != policy.Input {
			l.report(RuleNullabilityPolicy, SeverityWarning, arg.Position,
				"argument %q of %q.%s is %s; the configured policy makes input positions %s",
				arg.Name, def.Name, field.Name, nullabilityName(arg.Type.NonNull),
				nullabilityName(policy.Input))
		}
	}
}

func nullabilityName(nonNull bool) string {
	if nonNull {
		return "non-null"
	}
	return "nullable"
}

// isPascalCase reports whether name starts with an upper-case letter and contains only letters
// and digits.
func isPascalCase(name string) bool {
	for i, r := range name {
		if i == 0 && !unicode.IsUpper(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return len(name) > 0
}

// isLowerCamelCase reports whether name starts with a lower-case letter and contains only
// letters and digits.
func isLowerCamelCase(name string) bool {
	for i, r := range name {
		if i == 0 && !unicode.IsLower(r) {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return len(name) > 0
}
