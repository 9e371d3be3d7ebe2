// SPDX-License-Identifier: MIT
// Package: selkit/jsonbridge
//
// document.go — the capability Template and the Document adapter.
//
// Design:
//   - Behavior reattachment is explicit composition: a Document holds the
//     parsed value AND a reference to its Template; nothing is copied onto
//     the parsed data and the template is never mutated.
//   - Field precedence is fixed: the document's own parsed fields shadow
//     template defaults of the same name.
//   - Capabilities receive the Document they are invoked on, so one
//     Template serves any number of documents.

package jsonbridge

// Capability is one named operation a Template contributes to its
// documents. It receives the document it was invoked on and may read its
// fields through Get/Field.
type Capability func(d *Document) (interface{}, error)

// Template is the capability set bound to parsed documents: default
// Fields (consulted when a document lacks a key) plus named Ops that
// Document.Call dispatches. A Template is read-only to its documents and
// may be shared freely.
type Template struct {
	// Fields holds default field values, shadowed by the document's own.
	Fields map[string]interface{}

	// Ops holds the callable operations, keyed by name.
	Ops map[string]Capability
}

// Document adapts one parsed JSON value to a Template. Obtain documents
// through FromJSONText; the zero Document is empty but valid.
type Document struct {
	// fields is the parsed top-level object; nil when the top-level JSON
	// value was not an object.
	fields map[string]interface{}

	// value is the full parsed value, whatever its JSON kind.
	value interface{}

	// tmpl is the bound capability set; nil means no capabilities.
	tmpl *Template
}

// Get looks a key up with the bridge's precedence rule: the document's
// own parsed fields first, then the template's default fields. The second
// result reports whether the key was found at either level.
// Complexity: O(1) expected (two map lookups).
func (d *Document) Get(key string) (interface{}, bool) {
	if v, ok := d.fields[key]; ok {
		return v, true
	}
	if d.tmpl != nil {
		if v, ok := d.tmpl.Fields[key]; ok {
			return v, true
		}
	}

	return nil, false
}

// Field is the convenience form of Get: it returns the value or nil when
// the key is absent at both levels.
// Complexity: O(1) expected.
func (d *Document) Field(key string) interface{} {
	v, _ := d.Get(key)
	return v
}

// Fields returns the parsed top-level object, or nil when the top-level
// JSON value was not an object. The map is the document's own state;
// callers that mutate it mutate the document.
// Complexity: O(1).
func (d *Document) Fields() map[string]interface{} {
	return d.fields
}

// Value returns the full parsed value regardless of its JSON kind
// (object, array, string, number, bool or nil).
// Complexity: O(1).
func (d *Document) Value() interface{} {
	return d.value
}

// Call dispatches the named template capability against this document.
// Unknown names (or a document with no template) fail with an error
// wrapping ErrUnknownCapability.
// Complexity: O(1) dispatch + the capability's own cost.
func (d *Document) Call(name string) (interface{}, error) {
	if d.tmpl == nil {
		return nil, wrapf(MethodCall, ErrUnknownCapability, "no template bound for %q", name)
	}

	op, ok := d.tmpl.Ops[name]
	if !ok || op == nil {
		return nil, wrapf(MethodCall, ErrUnknownCapability, "%q", name)
	}

	return op(d)
}
