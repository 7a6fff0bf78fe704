// Package assertion checks the errors carried by an operation outcome.
// AssertHasError requires at least one error to satisfy a predicate,
// optionally after checking the dominant error class; RefuteHasError
// requires that none does. Failures are reported through a testify
// TestingT, so the helpers work with *testing.T directly.
package assertion

import (
	"digital.vasic.resultkit/pkg/errclass"
)

// Predicate tests a single error entry. It is called at most once per
// entry, in classifier order, and must not panic; a panic is not
// recovered.
type Predicate func(err error) bool

// Result captures the evaluation of one outcome against a predicate,
// before anything is reported.
type Result struct {
	// Shape is the outcome's shape name, e.g. "changeset".
	Shape string

	// Unsupported is set when the outcome is nil.
	Unsupported bool

	// HasErrors is false for success shapes and for pending requests
	// without errors.
	HasErrors bool

	// Expected is the class requested by the caller, if any.
	Expected errclass.Class

	// Class is the dominant class of the classified errors.
	Class errclass.Class

	// ClassMismatch is set when Expected was given and differs from
	// Class. The predicate is not evaluated in that case.
	ClassMismatch bool

	// Errors is the classified collection; nil when HasErrors is false.
	Errors *errclass.Collection

	// Match is the first entry satisfying the predicate.
	Match error

	// Found reports whether Match is set.
	Found bool
}
