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
	"log"
	"runtime"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "nexus.MakeSchema".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther       ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindDefinition                 // A type definition is malformed or incomplete.
	ErrKindNullability                // A nullability override conflicts with the resolved type.
	ErrKindBacking                    // A backing Go type does not match the declared GraphQL type.
	ErrKindValidation                 // The assembled schema violates a GraphQL type system rule.
	ErrKindRender                     // Rendering the schema to SDL or JSON failed.
	ErrKindInternal                   // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindDefinition:
		return "definition error"
	case ErrKindNullability:
		return "nullability error"
	case ErrKindBacking:
		return "backing type error"
	case ErrKindValidation:
		return "validation error"
	case ErrKindRender:
		return "render error"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// FieldPath locates a definition within a schema, such as "User.posts" for a field or
// "User.posts.first" for an argument. It should be presented when an error can be associated to a
// particular definition.
type FieldPath struct {
	keys []string
}

// NewFieldPath constructs a FieldPath from the given keys.
func NewFieldPath(keys ...string) FieldPath {
	return FieldPath{keys: keys}
}

// Empty returns true if the path doesn't contain any path keys.
func (path FieldPath) Empty() bool {
	return len(path.keys) == 0
}

// With returns a copy of the path extended with the given key. The receiver is unchanged.
func (path FieldPath) With(key string) FieldPath {
	keys := make([]string, len(path.keys)+1)
	copy(keys, path.keys)
	keys[len(path.keys)] = key
	return FieldPath{keys: keys}
}

// String joins the path keys with dots.
func (path FieldPath) String() string {
	return strings.Join(path.keys, ".")
}

// fieldPathMarshaller implements jsoniter.ValEncoder to encode FieldPath to JSON.
type fieldPathMarshaller struct{}

var _ jsoniter.ValEncoder = fieldPathMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (fieldPathMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return len((*FieldPath)(ptr).keys) == 0
}

// Encode implements jsoniter.ValEncoder.
func (fieldPathMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	path := (*FieldPath)(ptr)
	stream.WriteArrayStart()
	for i, key := range path.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(key)
	}
	stream.WriteArrayEnd()
}

// MarshalJSON serializes path keys to JSON.
func (path *FieldPath) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(path)
}

// ErrorWithPath indicates an error that carries a FieldPath. If "path" is not given in the
// arguments to NewError, NewError will retrieve the one from the underlying error (if provided)
// that implements this interface.
type ErrorWithPath interface {
	Path() FieldPath
}

// An Error describes a problem found while assembling, validating or rendering a schema. It can be
// serialized to JSON for consumption by tooling.
//
// An Error can be built by wrapping an error value; information unspecified in the arguments to
// NewError is propagated from the wrapped value. It also includes Op and ErrKind which show when
// printing the error value, which makes it helpful for programmers.
type Error struct {
	// Message describes the error for the library consumer.
	Message string

	// Path locates the definition the error is about, when one can be named.
	Path FieldPath

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case FieldPath:
			e.Path = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	// Propagate path and kind from the underlying error when not provided in arguments.
	if prev, ok := e.Err.(*Error); ok && prev != nil {
		if e.Path.Empty() && !prev.Path.Empty() {
			e.Path = NewFieldPath(prev.Path.keys...)
		}
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
	} else if e.Path.Empty() {
		if prev, ok := e.Err.(ErrorWithPath); ok {
			e.Path = prev.Path()
		}
	}

	return e
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// WrapErrorf is similar to WrapError but with the format specifier.
func WrapErrorf(err error, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), err)
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if !e.Path.Empty() {
		// Don't print path if the next error already did.
		if nextErr == nil || nextErr.Path.String() != e.Path.String() {
			if b.Len() == initialLen {
				b.WriteString("At ")
			} else {
				b.WriteString(" at ")
			}
			b.WriteString(e.Path.String())
		}
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			// Indent on new line if we are cascading non-empty Error.
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if !err.Path.Empty() {
		stream.WriteMore()
		stream.WriteObjectField("path")
		stream.WriteVal(&err.Path)
	}

	if err.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(err.Kind.String())
	}

	stream.WriteObjectEnd()
}

// Errors wraps a list of Error. Intentionally wrapped in a struct instead of a simple alias to
// []*Error to enforce error checks to use errs.HaveOccurred() instead of (errs != nil) (errs may
// be an empty array which should be treated as no error).
type Errors struct {
	Errors []*Error
}

// NoErrors constructs an empty Errors.
func NoErrors() Errors {
	return Errors{}
}

// ErrorsOf is a utility function that constructs an Errors value from either a list of
// *nexus.Error's, or arguments that can be taken by NewError (a message string followed by other
// error context).
func ErrorsOf(args ...interface{}) Errors {
	var errs Errors
	for i, arg := range args {
		switch arg := arg.(type) {
		case error:
			errs.Append(arg)

		case string:
			errs.Emplace(arg, args[(i+1):]...)
			return errs

		default:
			panic("nexus.ErrorsOf: bad call")
		}
	}
	return errs
}

// Emplace constructs an Error from arguments and appends it to errs. It panics if an unsupported
// argument is supplied in args.
func (errs *Errors) Emplace(message string, args ...interface{}) {
	errs.Append(NewError(message, args...))
}

// Append appends a list of Error's to the end of the Errors. The given errors must be
// *nexus.Error's otherwise it panics.
func (errs *Errors) Append(e ...error) {
	for _, err := range e {
		errs.Errors = append(errs.Errors, err.(*Error))
	}
}

// AppendErrors pulls every Error in each given Errors and appends it to errs.
func (errs *Errors) AppendErrors(e ...Errors) {
	for _, err := range e {
		errs.Errors = append(errs.Errors, err.Errors...)
	}
}

// HaveOccurred returns true if some errors exist.
func (errs Errors) HaveOccurred() bool {
	return len(errs.Errors) > 0
}

// Err returns errs as an error value: nil when no errors have occurred, the sole *Error when
// there is exactly one, and errs itself otherwise.
func (errs Errors) Err() error {
	switch len(errs.Errors) {
	case 0:
		return nil
	case 1:
		return errs.Errors[0]
	default:
		return errs
	}
}

// Error implements Go's error interface by joining the messages of all collected errors.
func (errs Errors) Error() string {
	var b strings.Builder
	for i, err := range errs.Errors {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func init() {
	jsoniter.RegisterTypeEncoder("nexus.FieldPath", fieldPathMarshaller{})
	jsoniter.RegisterTypeEncoder("nexus.Error", errorMarshaller{})
}
