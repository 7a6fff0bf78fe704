package assertion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"

	"digital.vasic.resultkit/pkg/errclass"
)

// Any matches every error.
func Any() Predicate {
	return func(error) bool { return true }
}

// Is matches errors for which errors.Is(err, target) holds.
func Is(target error) Predicate {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches errors that have a T in their chain.
func As[T error]() Predicate {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

// AsMatching matches errors that have a T in their chain for which
// check holds.
func AsMatching[T error](check func(T) bool) Predicate {
	return func(err error) bool {
		var target T
		return errors.As(err, &target) && check(target)
	}
}

// MessageContains matches errors whose message contains substr.
func MessageContains(substr string) Predicate {
	return func(err error) bool {
		return strings.Contains(err.Error(), substr)
	}
}

// HasCode matches oops errors carrying the given code.
func HasCode(code string) Predicate {
	return func(err error) bool {
		oopsErr, ok := oops.AsOops(err)
		return ok && fmt.Sprint(oopsErr.Code()) == code
	}
}

// HasContext matches oops errors whose context holds key with a value
// equal to value.
func HasContext(key string, value any) Predicate {
	return func(err error) bool {
		oopsErr, ok := oops.AsOops(err)
		if !ok {
			return false
		}
		v, found := oopsErr.Context()[key]
		return found && assert.ObjectsAreEqual(value, v)
	}
}

// InClass matches errors whose own class is class.
func InClass(class errclass.Class) Predicate {
	return func(err error) bool {
		return errclass.ClassOf(err) == class
	}
}

// All matches errors satisfying every predicate.
func All(preds ...Predicate) Predicate {
	return func(err error) bool {
		for _, p := range preds {
			if !p(err) {
				return false
			}
		}
		return true
	}
}
