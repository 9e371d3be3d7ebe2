// Package selector defines shared constants used by the builder, ensuring
// consistent fragment rendering and error context across all entry points.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the entry-point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element entry point.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID entry point.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class entry point.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr entry point.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass entry point.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement entry point.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name for the Combine entry point.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Fragment Rendering Literals
//   the exact prefixes/suffixes concatenated into the selector text.
//-----------------------------------------------------------------------------

const (
	// idPrefix introduces an id fragment ("#main").
	idPrefix = "#"
	// classPrefix introduces a class fragment (".note").
	classPrefix = "."
	// attrOpen opens an attribute fragment ("[href]").
	attrOpen = "["
	// attrClose closes an attribute fragment.
	attrClose = "]"
	// pseudoClassPrefix introduces a pseudo-class fragment (":hover").
	pseudoClassPrefix = ":"
	// pseudoElementPrefix introduces a pseudo-element fragment ("::before").
	pseudoElementPrefix = "::"
)

//-----------------------------------------------------------------------------
// Combinator Tokens
//   the four canonical CSS combinators accepted by Combine. Combine does not
//   reject other tokens; these constants exist so callers can stay strict.
//-----------------------------------------------------------------------------

const (
	// Descendant matches a descendant of the left selector (" ").
	Descendant = " "
	// Child matches a direct child of the left selector (">").
	Child = ">"
	// NextSibling matches the immediately following sibling ("+").
	NextSibling = "+"
	// SubsequentSibling matches any following sibling ("~").
	SubsequentSibling = "~"
)

// combinatorSeparator is the single space placed on each side of the
// combinator token in the rendered composite ("div#main + span").
const combinatorSeparator = " "
