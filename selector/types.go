// SPDX-License-Identifier: MIT
// Package: selkit/selector
//
// types.go — the fragment Category taxonomy and its rendering metadata.
//
// Design:
//   • Category values form the strict total order the grammar enforces:
//     Element < ID < Class < Attribute < PseudoClass < PseudoElement.
//   • The zero value (CategoryElement) doubles as the initial watermark,
//     keeping Builder's zero state branch-free.
//   • Rendering prefixes/suffixes live here next to the taxonomy so that a
//     new category cannot be added without declaring how it renders.

package selector

// Category identifies one fragment class in the selector grammar.
// The declaration order IS the grammar order; comparisons between Category
// values are meaningful and drive the watermark state machine.
type Category uint8

const (
	// CategoryElement is a bare element name ("div"). At most one per selector.
	CategoryElement Category = iota
	// CategoryID is an id fragment ("#main"). At most one per selector.
	CategoryID
	// CategoryClass is a class fragment (".note"). Repeatable.
	CategoryClass
	// CategoryAttribute is an attribute fragment ("[href]"). Repeatable.
	CategoryAttribute
	// CategoryPseudoClass is a pseudo-class fragment (":hover"). Repeatable.
	CategoryPseudoClass
	// CategoryPseudoElement is a pseudo-element fragment ("::before").
	// At most one per selector.
	CategoryPseudoElement
)

// categoryNames maps Category to its human-readable name, indexed by value.
var categoryNames = [...]string{
	CategoryElement:       "element",
	CategoryID:            "id",
	CategoryClass:         "class",
	CategoryAttribute:     "attribute",
	CategoryPseudoClass:   "pseudo-class",
	CategoryPseudoElement: "pseudo-element",
}

// String returns the human-readable category name ("element", "id", ...).
// Unknown values render as "unknown" rather than panicking.
// Complexity: O(1) time and space.
func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// atMostOne reports whether the grammar caps this category at one occurrence
// per selector (element, id, pseudo-element).
// Complexity: O(1) time and space.
func (c Category) atMostOne() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// prefix returns the literal placed before the fragment value when rendered.
// Complexity: O(1) time and space.
func (c Category) prefix() string {
	switch c {
	case CategoryID:
		return idPrefix
	case CategoryClass:
		return classPrefix
	case CategoryAttribute:
		return attrOpen
	case CategoryPseudoClass:
		return pseudoClassPrefix
	case CategoryPseudoElement:
		return pseudoElementPrefix
	default:
		// CategoryElement renders bare.
		return ""
	}
}

// suffix returns the literal placed after the fragment value when rendered.
// Only attributes carry one (the closing bracket).
// Complexity: O(1) time and space.
func (c Category) suffix() string {
	if c == CategoryAttribute {
		return attrClose
	}
	return ""
}
