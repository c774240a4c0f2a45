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

// List Type Modifier
//
// A list is a wrapping type which points to another type. Lists are often created within the
// context of defining the fields of an object type.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.List
type List struct {
	elementType Type
}

var (
	_ Type         = (*List)(nil)
	_ WrappingType = (*List)(nil)
)

// NewListOfType creates a List wrapping the given element type.
func NewListOfType(elementType Type) (*List, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil type for List.", ErrKindDefinition)
	}
	return &List{elementType: elementType}, nil
}

// MustNewListOfType is a convenience function equivalent to NewListOfType but panics on failure
// instead of returning an error.
func MustNewListOfType(elementType Type) *List {
	l, err := NewListOfType(elementType)
	if err != nil {
		panic(err)
	}
	return l
}

// graphqlType implements Type.
func (*List) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*List) graphqlWrappingType() {}

// ElementType indicates the type of the elements in the list.
func (l *List) ElementType() Type {
	return l.elementType
}

// UnwrappedType implements WrappingType.
func (l *List) UnwrappedType() Type {
	return l.elementType
}

// String implements Type.
func (l *List) String() string {
	return "[" + l.elementType.String() + "]"
}

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null. The enforcement itself happens in an executor; within this library the
// wrapper determines the rendered SDL and the admissible backing Go shapes.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System.Non-Null
type NonNull struct {
	innerType Type
}

var (
	_ Type         = (*NonNull)(nil)
	_ WrappingType = (*NonNull)(nil)
)

// NewNonNullOfType creates a NonNull wrapping the given inner type. Wrapping a NonNull in another
// NonNull is an error.
func NewNonNullOfType(innerType Type) (*NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil type for NonNull.", ErrKindDefinition)
	}
	if _, ok := innerType.(*NonNull); ok {
		return nil, NewError("Cannot wrap a Non-Null type in another Non-Null type.", ErrKindDefinition)
	}
	return &NonNull{innerType: innerType}, nil
}

// MustNewNonNullOfType is a convenience function equivalent to NewNonNullOfType but panics on
// failure instead of returning an error.
func MustNewNonNullOfType(innerType Type) *NonNull {
	n, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// graphqlType implements Type.
func (*NonNull) graphqlType() {}

// graphqlWrappingType implements WrappingType.
func (*NonNull) graphqlWrappingType() {}

// InnerType indicates the type of the element wrapped in this non-null type.
func (n *NonNull) InnerType() Type {
	return n.innerType
}

// UnwrappedType implements WrappingType.
func (n *NonNull) UnwrappedType() Type {
	return n.innerType
}

// String implements Type.
func (n *NonNull) String() string {
	return n.innerType.String() + "!"
}
