// File: api_test.go
// Package selector_test covers the facade entry points and Combine:
// fresh-chain semantics, composite rendering, operand draining, error
// propagation, and specificity summation.
package selector_test

import (
	"testing"

	"github.com/katalvlaran/selkit/selector"
	"github.com/stretchr/testify/require"
)

// TestFacade_FreshChains verifies that each entry point starts an
// independent chain: two calls never share state.
func TestFacade_FreshChains(t *testing.T) {
	t.Parallel()

	a := selector.Element("div")
	b := selector.Element("span")

	sa, err := a.Stringify()
	require.NoError(t, err)
	sb, err := b.Stringify()
	require.NoError(t, err)

	require.Equal(t, "div", sa)
	require.Equal(t, "span", sb)
}

func TestCombine_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		left       func() *selector.Builder
		combinator string
		right      func() *selector.Builder
		want       string
	}{
		{
			name:       "next sibling",
			left:       func() *selector.Builder { return selector.Element("div").ID("main") },
			combinator: selector.NextSibling,
			right:      func() *selector.Builder { return selector.Element("span") },
			want:       "div#main + span",
		},
		{
			name:       "child",
			left:       func() *selector.Builder { return selector.Element("ul") },
			combinator: selector.Child,
			right:      func() *selector.Builder { return selector.Element("li").Class("item") },
			want:       "ul > li.item",
		},
		{
			name:       "subsequent sibling",
			left:       func() *selector.Builder { return selector.Class("label") },
			combinator: selector.SubsequentSibling,
			right:      func() *selector.Builder { return selector.Attr("checked") },
			want:       ".label ~ [checked]",
		},
		{
			name:       "descendant token renders with its own spaces",
			left:       func() *selector.Builder { return selector.Element("nav") },
			combinator: selector.Descendant,
			right:      func() *selector.Builder { return selector.Element("a") },
			want:       "nav   a",
		},
		{
			name:       "unknown token carried verbatim",
			left:       func() *selector.Builder { return selector.Element("a") },
			combinator: ">>",
			right:      func() *selector.Builder { return selector.Element("b") },
			want:       "a >> b",
		},
		{
			name: "nested combine",
			left: func() *selector.Builder {
				return selector.Combine(selector.Element("ul"), selector.Child, selector.Element("li"))
			},
			combinator: selector.NextSibling,
			right:      func() *selector.Builder { return selector.Element("li") },
			want:       "ul > li + li",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := selector.Combine(tc.left(), tc.combinator, tc.right())
			require.NoError(t, b.Err())

			got, err := b.Stringify()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestCombine_DrainsOperands pins that Combine consumes both operands the
// same way Stringify does: rendering either operand afterwards yields "".
func TestCombine_DrainsOperands(t *testing.T) {
	t.Parallel()

	left := selector.Element("div")
	right := selector.Element("span")

	_, err := selector.Combine(left, selector.Child, right).Stringify()
	require.NoError(t, err)

	ls, err := left.Stringify()
	require.NoError(t, err)
	require.Empty(t, ls)

	rs, err := right.Stringify()
	require.NoError(t, err)
	require.Empty(t, rs)
}

func TestCombine_ErrorPropagation(t *testing.T) {
	t.Parallel()

	t.Run("left violation wins", func(t *testing.T) {
		t.Parallel()

		left := selector.ID("x").Element("a")       // ErrOrder
		right := selector.Element("b").Element("c") // ErrDuplicate

		b := selector.Combine(left, selector.Child, right)
		require.ErrorIs(t, b.Err(), selector.ErrOrder)

		got, err := b.Stringify()
		require.ErrorIs(t, err, selector.ErrOrder)
		require.Empty(t, got)
	})

	t.Run("right violation propagates", func(t *testing.T) {
		t.Parallel()

		right := selector.Element("b").Element("c") // ErrDuplicate

		b := selector.Combine(selector.Element("a"), selector.Child, right)
		require.ErrorIs(t, b.Err(), selector.ErrDuplicate)
	})

	t.Run("nil operands", func(t *testing.T) {
		t.Parallel()

		b := selector.Combine(nil, selector.Child, selector.Element("a"))
		require.ErrorIs(t, b.Err(), selector.ErrNilBuilder)

		b = selector.Combine(selector.Element("a"), selector.Child, nil)
		require.ErrorIs(t, b.Err(), selector.ErrNilBuilder)
	})
}

// TestCombine_ContinuesRightChain pins that a combined chain inherits the
// right operand's grammar state: appends continue the rightmost compound
// selector, so a category already passed on the right is rejected.
func TestCombine_ContinuesRightChain(t *testing.T) {
	t.Parallel()

	b := selector.Combine(selector.Element("div"), selector.Child, selector.Element("span").Class("x"))

	// Class repeats at the same watermark; the append lands after the
	// composite text.
	got, err := b.Class("y").Stringify()
	require.NoError(t, err)
	require.Equal(t, "div > span.x.y", got)

	// A second element regresses below the inherited watermark state.
	b = selector.Combine(selector.Element("div"), selector.Child, selector.Element("span").Class("x"))
	require.ErrorIs(t, b.Element("em").Err(), selector.ErrDuplicate)
}

func TestCombine_SpecificitySums(t *testing.T) {
	t.Parallel()

	left := selector.Element("div").ID("main")   // (1,0,1)
	right := selector.Element("span").Class("x") // (0,1,1)

	ids, classes, elements := selector.Combine(left, selector.NextSibling, right).Specificity()
	require.Equal(t, 1, ids)
	require.Equal(t, 1, classes)
	require.Equal(t, 2, elements)
}
