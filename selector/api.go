// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// api.go - thin public entry-points for the selector package.
//
// Design contract (strict):
//   - The facade is stateless: each entry point allocates a fresh *Builder
//     and delegates the first call to it. Direct builder construction is an
//     internal concern (newBuilder).
//   - One entry point per fragment category plus Combine; nothing else is
//     exported for construction.
//   - Determinism: the same chain of calls always renders the same text.
//   - Safety: never panic; grammar violations latch sentinel errors on the
//     chain and surface via Err()/Stringify().

package selector

// Element starts a fresh chain with a bare element token ("div").
// Complexity: O(len(v)).
func Element(v string) *Builder {
	return newBuilder().Element(v)
}

// ID starts a fresh chain with an id fragment ("#v").
// Complexity: O(len(v)).
func ID(v string) *Builder {
	return newBuilder().ID(v)
}

// Class starts a fresh chain with a class fragment (".v").
// Complexity: O(len(v)).
func Class(v string) *Builder {
	return newBuilder().Class(v)
}

// Attr starts a fresh chain with an attribute fragment ("[v]").
// Complexity: O(len(v)).
func Attr(v string) *Builder {
	return newBuilder().Attr(v)
}

// PseudoClass starts a fresh chain with a pseudo-class fragment (":v").
// Complexity: O(len(v)).
func PseudoClass(v string) *Builder {
	return newBuilder().PseudoClass(v)
}

// PseudoElement starts a fresh chain with a pseudo-element fragment ("::v").
// Complexity: O(len(v)).
func PseudoElement(v string) *Builder {
	return newBuilder().PseudoElement(v)
}

// Combine composes two already-built chains into a fresh one rendering
// "<left> <combinator> <right>". The combinator token is carried verbatim;
// the four canonical tokens are exported as Descendant, Child, NextSibling
// and SubsequentSibling, but other tokens are not rejected.
//
// Combine renders both operands via Stringify, so it consumes them the
// same way a direct Stringify would. If either operand carries a latched
// violation, the first of (left, right) propagates to the combined chain.
// The combined chain inherits the RIGHT operand's watermark and seen
// flags, so further appends continue the rightmost compound selector;
// specificity counters are summed across both sides.
//
// Errors (latched): ErrNilBuilder when an operand is nil; otherwise
// whatever the operands had latched.
// Complexity: O(len(left) + len(right) + len(combinator)).
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	b := newBuilder()

	// Defensive: builders come from the facade, so nil is a call-site bug;
	// surface it as an error rather than dereferencing.
	if left == nil || right == nil {
		b.err = wrapf(MethodCombine, ErrNilBuilder, "nil operand")
		return b
	}

	// Render both sides; this drains their buffers (consume-once contract).
	ls, lerr := left.Stringify()
	rs, rerr := right.Stringify()
	if lerr != nil {
		b.err = lerr
		return b
	}
	if rerr != nil {
		b.err = rerr
		return b
	}

	// "<left> <combinator> <right>" with single spaces around the token.
	b.buf.WriteString(ls)
	b.buf.WriteString(combinatorSeparator)
	b.buf.WriteString(combinator)
	b.buf.WriteString(combinatorSeparator)
	b.buf.WriteString(rs)

	// Continue the grammar from the rightmost compound selector.
	b.watermark = right.watermark
	b.seenElement = right.seenElement
	b.seenID = right.seenID
	b.seenPseudoElement = right.seenPseudoElement

	// Cascade specificity is additive across combinators.
	b.specIDs = left.specIDs + right.specIDs
	b.specClasses = left.specClasses + right.specClasses
	b.specElements = left.specElements + right.specElements

	return b
}
