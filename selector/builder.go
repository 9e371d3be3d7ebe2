// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// builder.go — the Builder state object and its fluent append operations.
//
// Design contract (strict):
//   - One state object per chain: text buffer + watermark + seen flags +
//     specificity counters + sticky error. No globals, no locking.
//   - Every append runs validateAppend first; the first violation latches
//     and every later call on the chain becomes a no-op.
//   - Construction happens ONLY in api.go (facade) and combine; the zero
//     Builder is valid but unreachable from outside the package.
//   - Determinism: the rendered text is exactly the concatenation of each
//     accepted fragment's literal form, in call order, with no separators.
//   - Safety: never panic; grammar violations surface as sentinel errors.

package selector

import "strings"

// Builder accumulates selector fragments for one fluent chain. It is
// exclusively owned by the chain that created it and MUST NOT be shared
// across goroutines: the buffer, watermark and flags mutate in place.
//
// Obtain a Builder through the package facade (Element, ID, Class, Attr,
// PseudoClass, PseudoElement, Combine); direct construction is internal.
type Builder struct {
	// buf holds the rendered fragments accepted so far.
	buf strings.Builder

	// watermark is the highest category appended so far; appends below it
	// are ordering violations. The zero value (CategoryElement) admits
	// every category on a fresh chain.
	watermark Category

	// Seen flags for the at-most-one categories.
	seenElement       bool
	seenID            bool
	seenPseudoElement bool

	// Cascade specificity counters (ids, classes, elements), maintained per
	// accepted fragment and summed by combine.
	specIDs      int
	specClasses  int
	specElements int

	// err is the sticky first violation; non-nil means the chain aborted.
	err error
}

// newBuilder returns a fresh, empty chain state. Internal: the facade is
// the only public construction path.
// Complexity: O(1) time and space.
func newBuilder() *Builder {
	return &Builder{}
}

// seen reports whether an at-most-one category is already present.
// Complexity: O(1) time and space.
func (b *Builder) seen(c Category) bool {
	switch c {
	case CategoryElement:
		return b.seenElement
	case CategoryID:
		return b.seenID
	case CategoryPseudoElement:
		return b.seenPseudoElement
	default:
		// Repeatable categories carry no seen flag.
		return false
	}
}

// markSeen records an at-most-one category as present. No-op for the
// repeatable categories.
// Complexity: O(1) time and space.
func (b *Builder) markSeen(c Category) {
	switch c {
	case CategoryElement:
		b.seenElement = true
	case CategoryID:
		b.seenID = true
	case CategoryPseudoElement:
		b.seenPseudoElement = true
	}
}

// bumpSpecificity advances the cascade counter that category c contributes
// to: id → ids; class/attribute/pseudo-class → classes; element and
// pseudo-element → elements.
// Complexity: O(1) time and space.
func (b *Builder) bumpSpecificity(c Category) {
	switch c {
	case CategoryID:
		b.specIDs++
	case CategoryClass, CategoryAttribute, CategoryPseudoClass:
		b.specClasses++
	default:
		b.specElements++
	}
}

// append is the single mutation path shared by every fluent operation.
// It validates the transition, renders the fragment, and advances the
// watermark/flags/counters. On a chain that already latched an error it
// does nothing and returns the receiver unchanged.
//
// The fragment value is rendered verbatim between the category's literal
// prefix and suffix; no escaping or CSS validation is attempted
// (garbage in, garbage out).
//
// Complexity: O(len(fragment)) time, amortized O(len(fragment)) space.
func (b *Builder) append(method string, c Category, fragment string) *Builder {
	// Aborted chain: every later append is a no-op.
	if b.err != nil {
		return b
	}

	// Validate cardinality then ordering; latch the first violation.
	if err := validateAppend(method, c, b.watermark, b.seen(c)); err != nil {
		b.err = err
		return b
	}

	// Render: literal prefix, verbatim value, literal suffix, no separators.
	b.buf.WriteString(c.prefix())
	b.buf.WriteString(fragment)
	b.buf.WriteString(c.suffix())

	// Advance the state machine.
	if c > b.watermark {
		b.watermark = c
	}
	b.markSeen(c)
	b.bumpSpecificity(c)

	return b
}

// Element appends a bare element token ("div"). At most one element per
// chain, and only before any later category.
// Errors (latched): ErrDuplicate if an element is already present,
// ErrOrder if the chain advanced past elements.
// Complexity: O(len(v)).
func (b *Builder) Element(v string) *Builder {
	return b.append(MethodElement, CategoryElement, v)
}

// ID appends an id fragment ("#v"). At most one id per chain, and only
// before any later category.
// Errors (latched): ErrDuplicate / ErrOrder as for Element.
// Complexity: O(len(v)).
func (b *Builder) ID(v string) *Builder {
	return b.append(MethodID, CategoryID, v)
}

// Class appends a class fragment (".v"). Repeatable.
// Errors (latched): ErrOrder if an attribute, pseudo-class or
// pseudo-element is already present.
// Complexity: O(len(v)).
func (b *Builder) Class(v string) *Builder {
	return b.append(MethodClass, CategoryClass, v)
}

// Attr appends an attribute fragment ("[v]"). Repeatable.
// Errors (latched): ErrOrder if a pseudo-class or pseudo-element is
// already present.
// Complexity: O(len(v)).
func (b *Builder) Attr(v string) *Builder {
	return b.append(MethodAttr, CategoryAttribute, v)
}

// PseudoClass appends a pseudo-class fragment (":v"). Repeatable.
// Errors (latched): ErrOrder if a pseudo-element is already present.
// Complexity: O(len(v)).
func (b *Builder) PseudoClass(v string) *Builder {
	return b.append(MethodPseudoClass, CategoryPseudoClass, v)
}

// PseudoElement appends a pseudo-element fragment ("::v"). At most one per
// chain; it is the final category, so ordering can no longer be violated.
// Errors (latched): ErrDuplicate if a pseudo-element is already present.
// Complexity: O(len(v)).
func (b *Builder) PseudoElement(v string) *Builder {
	return b.append(MethodPseudoElement, CategoryPseudoElement, v)
}

// Err returns the sticky first violation latched on this chain, or nil.
// It does not consume the builder.
// Complexity: O(1).
func (b *Builder) Err() error {
	return b.err
}

// Stringify returns the accumulated selector text and CONSUMES the
// builder: the internal buffer is cleared, so a second Stringify without
// intervening appends returns "". This consume-once contract is
// deliberate public behavior — a chain is built once and rendered once;
// the watermark, seen flags and specificity counters survive the reset.
//
// On an aborted chain it returns ("", err) with the latched violation.
// Complexity: O(len(text)).
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	// Drain the buffer; rendering is a one-shot operation per chain.
	s := b.buf.String()
	b.buf.Reset()

	return s, nil
}

// Specificity returns the CSS cascade specificity accumulated so far as
// the (ids, classes, elements) triple: ids counts id fragments; classes
// counts class, attribute and pseudo-class fragments; elements counts
// element and pseudo-element fragments. Combine sums both sides.
// Independent of Stringify's buffer reset.
// Complexity: O(1).
func (b *Builder) Specificity() (ids, classes, elements int) {
	return b.specIDs, b.specClasses, b.specElements
}
