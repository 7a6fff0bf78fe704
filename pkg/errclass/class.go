// Package errclass groups heterogeneous error collections into a
// single dominant error class. It is the classification contract the
// assertion package consumes: given the errors attached to an
// operation outcome, produce exactly one Class and the ordered list of
// individual entries.
package errclass

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Class tags a group of errors. Comparison is by tag equality only.
type Class string

// Built-in classes, listed from most to least dominant.
const (
	ClassForbidden  Class = "forbidden"
	ClassInvalid    Class = "invalid"
	ClassValidation Class = "validation"
	ClassFramework  Class = "framework"
	ClassUnknown    Class = "unknown"
)

// dominance is the rank of each built-in class; lower wins.
var dominance = map[Class]int{
	ClassForbidden:  0,
	ClassInvalid:    1,
	ClassValidation: 2,
	ClassFramework:  3,
	ClassUnknown:    5,
}

// customRank places tags outside the built-in set after framework and
// ahead of unknown.
const customRank = 4

// Classes returns the built-in classes in dominance order.
func Classes() []Class {
	return []Class{
		ClassForbidden,
		ClassInvalid,
		ClassValidation,
		ClassFramework,
		ClassUnknown,
	}
}

// String returns the tag.
func (c Class) String() string {
	return string(c)
}

// IsKnown reports whether c is one of the built-in classes.
func (c Class) IsKnown() bool {
	_, ok := dominance[c]
	return ok
}

// rank returns the dominance rank of c.
func (c Class) rank() int {
	if r, ok := dominance[c]; ok {
		return r
	}
	return customRank
}

// Classed is implemented by domain errors that know their own class.
type Classed interface {
	ErrorClass() Class
}

// ClassOf returns the class of a single error entry. It looks for a
// Classed error anywhere in the chain first, then for an oops error
// whose code names a built-in class. Everything else is
// ClassUnknown.
func ClassOf(err error) Class {
	if err == nil {
		return ClassUnknown
	}

	var classed Classed
	if errors.As(err, &classed) {
		return classed.ErrorClass()
	}

	if oopsErr, ok := oops.AsOops(err); ok {
		code := Class(fmt.Sprint(oopsErr.Code()))
		if code.IsKnown() {
			return code
		}
	}

	return ClassUnknown
}

// Dominant returns the most dominant of the given classes. Custom
// tags beat ClassUnknown and lose to every other built-in class; among
// equally ranked tags the first one wins. Empty tags are skipped and
// ClassUnknown is returned when nothing is left.
func Dominant(classes ...Class) Class {
	var best Class
	for _, c := range classes {
		if c == "" {
			continue
		}
		if best == "" || c.rank() < best.rank() {
			best = c
		}
	}
	if best == "" {
		return ClassUnknown
	}
	return best
}
