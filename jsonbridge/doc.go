// Package jsonbridge converts values to and from JSON text and reattaches
// behavior to parsed data through an explicit capability template — no
// hidden prototype magic, just a small adapter that composes the parsed
// fields with a set of named operations.
//
// The package offers the following key components:
//
//   - ToJSONText:   canonical JSON text for any encodable value, with an
//     optional WithIndent option for pretty output.
//   - FromJSONText: parses JSON text and wraps the result in a Document
//     bound to a Template; malformed text fails with an error wrapping
//     ErrParse, preserving the decoder's detail.
//   - Template:     the capability set — default Fields plus named Ops
//     (Capability functions) that become callable on every Document bound
//     to it.
//   - Document:     the adapter over the parsed value. Get consults the
//     document's own parsed fields first and the template's defaults
//     second; Call dispatches a named capability against the document.
//
// Guarantees:
//
//   - Round-trip fidelity: fields serialized by ToJSONText and parsed back
//     via FromJSONText compare equal under encoding/json's standard value
//     mapping (numbers as float64, objects as map[string]interface{}).
//   - Own fields shadow template fields of the same name; the template is
//     never mutated by its documents.
//   - No partial or lenient parsing: the first decoder failure aborts the
//     whole operation.
//   - Fully synchronous and in-memory; a Document is as concurrency-safe
//     as the maps it wraps (safe for concurrent reads, not writes).
//
// See individual function documentation for detailed contracts and error
// conditions.
package jsonbridge
