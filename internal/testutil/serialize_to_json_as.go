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

package testutil

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/onsi/gomega/types"
)

type serializeToJSONAsMatcher struct {
	expected interface{}
}

// SerializeToJSONAs returns a Gomega matcher that serializes the actual value to JSON, decodes
// both the result and the expected value into untyped JSON values and compares those. It lets
// tests state an expected JSON shape as Go literals without caring about field order or number
// formatting.
func SerializeToJSONAs(expected interface{}) types.GomegaMatcher {
	return serializeToJSONAsMatcher{
		expected: expected,
	}
}

// Match implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) Match(actual interface{}) (success bool, err error) {
	encodedActual, err := jsoniter.Marshal(actual)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher cannot encode actual into JSON: %s", err)
	}

	encodedExpected, err := jsoniter.Marshal(matcher.expected)
	if err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher cannot encode expected into JSON: %s", err)
	}

	var decodedActual, decodedExpected interface{}
	if err := jsoniter.Unmarshal(encodedActual, &decodedActual); err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher cannot decode actual value from JSON: %s", err)
	}
	if err := jsoniter.Unmarshal(encodedExpected, &decodedExpected); err != nil {
		return false, fmt.Errorf("SerializeToJSONAs matcher cannot decode expected value from JSON: %s", err)
	}

	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nto serialize to JSON value as\n\t%#v", actual, matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to serialize to JSON value as\n\t%#v", actual, matcher.expected)
}
