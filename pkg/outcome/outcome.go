// Package outcome models the closed set of shapes an operation result
// can take when it reaches a test: a success with or without a value,
// a failure carrying an error, or one of three pending requests that
// have not run yet but already accumulate errors.
package outcome

import "errors"

// Shape names, as used in assertion failure messages.
const (
	ShapeSuccess     = "success"
	ShapeSuccessUnit = "success unit"
	ShapeFailure     = "value"
	ShapeChangeset   = "changeset"
	ShapeQuery       = "query"
	ShapeActionInput = "action input"
)

// Outcome is implemented only by the types in this package.
type Outcome interface {
	// Shape returns the human-readable name of the variant.
	Shape() string

	sealed()
}

// Success is an operation that produced a value.
type Success struct {
	Value any
}

// SuccessUnit is an operation that succeeded without a value.
type SuccessUnit struct{}

// Failure is an operation that failed with Err.
type Failure struct {
	Err error
}

// Changeset is a pending change request.
type Changeset struct {
	Resource string
	Action   string
	Errors   []error
}

// Query is a pending read request.
type Query struct {
	Resource string
	Errors   []error
}

// ActionInput is pending input for a generic action.
type ActionInput struct {
	Resource string
	Action   string
	Errors   []error
}

func (Success) Shape() string     { return ShapeSuccess }
func (SuccessUnit) Shape() string { return ShapeSuccessUnit }
func (Failure) Shape() string     { return ShapeFailure }
func (Changeset) Shape() string   { return ShapeChangeset }
func (Query) Shape() string       { return ShapeQuery }
func (ActionInput) Shape() string { return ShapeActionInput }

func (Success) sealed()     {}
func (SuccessUnit) sealed() {}
func (Failure) sealed()     {}
func (Changeset) sealed()   {}
func (Query) sealed()       {}
func (ActionInput) sealed() {}

// Ok wraps v in a Success.
func Ok(v any) Success {
	return Success{Value: v}
}

// Err wraps one or more errors in a Failure. Several errors are
// joined.
func Err(errs ...error) Failure {
	if len(errs) == 1 {
		return Failure{Err: errs[0]}
	}
	return Failure{Err: errors.Join(errs...)}
}

// From builds an Outcome from a conventional (value, error) pair.
func From(v any, err error) Outcome {
	if err != nil {
		return Failure{Err: err}
	}
	if v == nil {
		return SuccessUnit{}
	}
	return Success{Value: v}
}

// ErrorSource returns the errors carried by o and whether there are
// any. Success shapes, nil failures and pending requests without
// errors all report false.
func ErrorSource(o Outcome) ([]error, bool) {
	var errs []error
	switch v := o.(type) {
	case Success, SuccessUnit:
		return nil, false
	case Failure:
		if v.Err == nil {
			return nil, false
		}
		errs = []error{v.Err}
	case Changeset:
		errs = v.Errors
	case Query:
		errs = v.Errors
	case ActionInput:
		errs = v.Errors
	default:
		return nil, false
	}
	return errs, len(errs) > 0
}

// Pending reports whether o is a request that has not been executed.
func Pending(o Outcome) bool {
	switch o.(type) {
	case Changeset, Query, ActionInput:
		return true
	}
	return false
}

// IsSuccess reports whether o carries no errors at all.
func IsSuccess(o Outcome) bool {
	_, has := ErrorSource(o)
	return !has
}
