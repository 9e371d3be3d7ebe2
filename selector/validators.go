// Package selector provides validation helpers that enforce the grammar's
// ordering and cardinality contracts before a fragment is appended.
//
// Each function returns a wrapped sentinel error via wrapf when its
// precondition is violated; the caller latches that error on the chain.
package selector

// validateAppend checks whether a fragment of category c may be appended to
// a chain whose state is (watermark, seen flags). Duplicate detection runs
// before ordering so that a second at-most-one fragment always reports
// ErrDuplicate even when the chain has also advanced past c.
//
// Parameters:
//   - method:    canonical entry-point name, e.g. MethodElement.
//   - c:         category of the fragment being appended.
//   - watermark: highest category appended so far.
//   - seen:      whether c (an at-most-one category) is already present.
//
// Complexity: O(1) time and space.
func validateAppend(method string, c, watermark Category, seen bool) error {
	// Cardinality first: element/id/pseudo-element may appear once.
	if c.atMostOne() && seen {
		return wrapf(method, ErrDuplicate, "%s already present", c)
	}

	// Ordering second: appending below the watermark regresses the grammar.
	if c < watermark {
		return wrapf(method, ErrOrder, "%s after %s", c, watermark)
	}

	return nil
}
