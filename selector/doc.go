// Package selector provides a fluent, validating builder for CSS-like
// selector strings. It accumulates selector fragments (element, id, class,
// attribute, pseudo-class, pseudo-element), enforces the grammar's ordering
// and cardinality rules through a watermark state machine, and renders the
// final selector text on demand.
//
// The package offers the following key components:
//
//   - Facade entry points (the only construction path):
//     – Element, ID, Class, Attr, PseudoClass, PseudoElement: each allocates
//     a fresh *Builder and delegates the first append to it.
//     – Combine: composes two already-built selectors with a combinator
//     token into a fresh *Builder.
//   - Builder: the owned state object threaded through a fluent chain —
//     text buffer, ordering watermark, at-most-one seen flags, specificity
//     counters, and a sticky first-violation error.
//   - Category: the fragment taxonomy with its strict total order
//     Element < ID < Class < Attribute < PseudoClass < PseudoElement.
//   - Sentinel errors:
//     – ErrDuplicate: an at-most-one category (element/id/pseudo-element)
//     appended twice.
//     – ErrOrder:     a category appended after a strictly later one.
//     – ErrNilBuilder: Combine received a nil operand.
//
// Ordering rule (state machine):
//
//	Appending a fragment of category C is legal iff C ≥ the current
//	watermark (the highest category appended so far) and, when C is an
//	at-most-one category, its seen flag is unset. On success the watermark
//	advances to max(watermark, C). Class, Attribute and PseudoClass repeat
//	freely at the same watermark level; regression to an earlier category
//	is rejected with ErrOrder and a second element/id/pseudo-element with
//	ErrDuplicate.
//
// Guarantees:
//
//   - Violations latch synchronously at the violating call; every later
//     append on the same chain is a no-op and Stringify reports the first
//     violation. The chain is unrecoverable — discard the builder and
//     restart through the facade.
//   - Valid chains render the exact concatenation of each fragment's
//     literal form ("div", "#main", ".note", "[href]", ":hover",
//     "::before") with no separators.
//   - Stringify consumes the builder: it returns the accumulated text and
//     clears the internal buffer, so a second Stringify without
//     intervening appends yields "". This consume-once contract is part of
//     the public behavior; see Builder.Stringify.
//   - Fully synchronous, no internal locking: a Builder is exclusively
//     owned by the call chain that created it and is not safe for
//     concurrent use.
//
// See individual function documentation for detailed contracts, error
// conditions, and performance notes.
package selector
