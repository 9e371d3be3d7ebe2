// SPDX-License-Identifier: MIT
// Package: selkit/jsonbridge
//
// errors.go — sentinel errors for the jsonbridge package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Parse/encode failures keep the underlying encoding/json detail in
//     the message while the sentinel stays the %w target.

package jsonbridge

import (
	"errors"
	"fmt"
)

// ErrParse indicates that FromJSONText received text the JSON decoder
// rejected. The decoder's own message is preserved in the wrapped error.
// Usage: if errors.Is(err, ErrParse) { /* reject the input text */ }.
var ErrParse = errors.New("jsonbridge: invalid JSON text")

// ErrEncode indicates that ToJSONText received a value encoding/json
// cannot represent (channels, funcs, cyclic structures, NaN floats, ...).
// Usage: if errors.Is(err, ErrEncode) { /* fix the value shape */ }.
var ErrEncode = errors.New("jsonbridge: value not encodable")

// ErrUnknownCapability indicates that Document.Call named an operation the
// bound Template does not define (or the document has no template at all).
// Usage: if errors.Is(err, ErrUnknownCapability) { /* check the op name */ }.
var ErrUnknownCapability = errors.New("jsonbridge: unknown capability")

// wrapf attaches the method context and a formatted detail to a sentinel,
// preserving it for errors.Is. The result reads
// "<Method>: <detail>: <sentinel>".
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}

// Canonical method tokens used to prefix wrapped errors with context.
const (
	// MethodToJSONText is the canonical name for the ToJSONText entry point.
	MethodToJSONText = "ToJSONText"
	// MethodFromJSONText is the canonical name for the FromJSONText entry point.
	MethodFromJSONText = "FromJSONText"
	// MethodCall is the canonical name for Document.Call.
	MethodCall = "Call"
)
