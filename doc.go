// Package selkit is your in-memory toolkit for composing validated CSS
// selector strings — plus a small JSON bridge for reattaching behavior to
// parsed data and a rectangle value type for quick geometry fixtures.
//
// 🚀 What is selkit?
//
//	A small, synchronous, dependency-light library that brings together:
//		• Selector builder: fluent chains over element/id/class/attribute/
//		  pseudo-class/pseudo-element fragments, validated by a watermark
//		  state machine (ordering + cardinality), composed with combinators
//		• JSON bridge: canonical text encoding, strict parsing, and explicit
//		  capability templates instead of hidden prototype tricks
//		• Rectangle: a plain value with recompute-on-access derived metrics
//
// ✨ Why choose selkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Strict grammar guarantees – violations latch synchronously as
//     sentinel errors (ErrDuplicate, ErrOrder, ErrParse, ...)
//   - Pure Go – no cgo, no hidden deps, no I/O
//   - Deterministic – the same chain of calls always renders the same text
//
// Under the hood, everything is organized under three subpackages:
//
//	selector/   — the Builder core, its facade entry points and Combine
//	jsonbridge/ — ToJSONText / FromJSONText + Template/Document adapters
//	rect/       — the Rectangle value type
//
// Quick ASCII example:
//
//	Element("div").ID("main")  +  Element("span")
//	        └── Combine(…, NextSibling, …) → "div#main + span"
//
// Dive into the package docs for full contracts, the ordering state
// machine, and the consume-once Stringify lifecycle.
//
//	go get github.com/katalvlaran/selkit
package selkit
