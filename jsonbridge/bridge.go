// SPDX-License-Identifier: MIT
// Package: selkit/jsonbridge
//
// bridge.go - thin public entry-points for the JSON bridge.
//
// Design contract (strict):
//   - ToJSONText/FromJSONText are the only entry points; encoding policy
//     is resolved from functional options, parsing is strict (the first
//     decoder failure aborts the whole operation, no lenient recovery).
//   - The decoder's standard value mapping applies: objects become
//     map[string]interface{}, arrays []interface{}, numbers float64.
//   - Safety: never panic; failures surface as sentinel-wrapped errors.

package jsonbridge

import (
	"encoding/json"
	"fmt"
)

// ToJSONText encodes v as canonical JSON text. Object keys follow
// encoding/json's standard rules (struct fields in declaration order, map
// keys sorted) and arrays keep index order. By default the output is
// compact; WithIndent switches to pretty output.
//
// Errors: an error wrapping ErrEncode when v is not encodable; the
// encoder's detail is preserved in the message.
// Complexity: O(size of v).
func ToJSONText(v interface{}, opts ...Option) (string, error) {
	cfg := newBridgeConfig(opts...)

	var (
		data []byte
		err  error
	)
	if cfg.prefix == "" && cfg.indent == "" {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, cfg.prefix, cfg.indent)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %v: %w", MethodToJSONText, err, ErrEncode)
	}

	return string(data), nil
}

// FromJSONText parses text as JSON and binds the result to tmpl, returning
// a Document whose Get/Field consult the parsed fields first and tmpl's
// defaults second, and whose Call dispatches tmpl's named capabilities.
// A nil tmpl is allowed: the document then carries data only.
//
// The top-level value need not be an object; for arrays and scalars the
// document's Fields() is nil and Value() exposes the parsed value.
//
// Errors: an error wrapping ErrParse when text is not valid JSON; the
// decoder's detail is preserved verbatim in the message.
// Complexity: O(len(text)).
func FromJSONText(tmpl *Template, text string) (*Document, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodFromJSONText, err, ErrParse)
	}

	// Expose the object form when the top level is one; Value() keeps the
	// parsed result for every other JSON kind.
	fields, _ := v.(map[string]interface{})

	return &Document{fields: fields, value: v, tmpl: tmpl}, nil
}
