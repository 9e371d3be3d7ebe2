// Package rect defines the Rectangle value type: two exported numeric
// dimensions plus accessors derived from them on every call.
//
// Rectangle is a plain value — no hidden state, no caching, no locking.
// Callers may mutate Width and Height directly; every accessor recomputes
// from the current field values, so mutation is immediately observable.
// Inputs are accepted as-is: negative or otherwise nonsensical dimensions
// are not validated (garbage in, garbage out).
package rect

import "fmt"

// Rectangle is an axis-aligned rectangle described by its dimensions.
type Rectangle struct {
	// Width is the horizontal extent. Mutable by the caller.
	Width float64

	// Height is the vertical extent. Mutable by the caller.
	Height float64
}

// New constructs a Rectangle from the given dimensions. No validation is
// performed; the values are stored as-is.
// Complexity: O(1) time and space.
func New(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width*Height, recomputed on every call (never cached).
// Complexity: O(1).
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns 2*(Width+Height), recomputed on every call.
// Complexity: O(1).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// String renders the rectangle as "<width>x<height>" using %g formatting.
// Complexity: O(1).
func (r Rectangle) String() string {
	return fmt.Sprintf("%gx%g", r.Width, r.Height)
}
