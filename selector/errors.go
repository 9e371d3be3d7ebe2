// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context at the violating call via %w wrapping
//     with the canonical Method* token prefix.
//   • The builder NEVER panics at runtime; every grammar violation surfaces
//     as a latched error on the chain.

package selector

import (
	"errors"
	"fmt"
)

// ErrDuplicate indicates that an at-most-one category (element, id or
// pseudo-element) was appended a second time to the same chain.
// Classification: grammar cardinality violation.
// Usage: if errors.Is(err, ErrDuplicate) { /* restart via the facade */ }.
var ErrDuplicate = errors.New("selector: duplicate fragment category")

// ErrOrder indicates that a fragment was appended after a strictly later
// category was already present (the chain regressed below its watermark),
// e.g. an element appended after an id.
// Classification: grammar ordering violation.
// Usage: if errors.Is(err, ErrOrder) { /* restart via the facade */ }.
var ErrOrder = errors.New("selector: fragment out of order")

// ErrNilBuilder indicates that Combine received a nil operand. Builders are
// only obtainable through the facade, so a nil here is a programmer error
// surfaced as an error rather than a panic.
// Usage: if errors.Is(err, ErrNilBuilder) { /* fix the call site */ }.
var ErrNilBuilder = errors.New("selector: nil builder")

// wrapf attaches the method context and a formatted detail to a sentinel,
// preserving it for errors.Is. The result reads
// "<Method>: <detail>: <sentinel>".
//
// Parameters:
//   - method:   canonical entry-point name, e.g. MethodElement.
//   - sentinel: one of the package sentinels above.
//   - format:   format string for the detail message.
//   - args:     values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the detail message first so the sentinel stays the %w target.
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, detail, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Precedence (when a call violates both rules at once):
//    ErrDuplicate is checked BEFORE ErrOrder. A second Element on a chain
//    that already advanced past elements is a duplicate first; the ordering
//    regression is implied.
//
// 2) Propagation:
//    The first violation latches on the Builder (sticky error). Subsequent
//    appends are no-ops and Stringify returns ("", err). There is no
//    recovery path; callers restart through the facade.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error
//    strings. Cover: duplicate element/id/pseudo-element, every regression
//    pair below the watermark, and Combine with nil operands.
