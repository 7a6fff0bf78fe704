package errclass

import (
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClassifier_Empty(t *testing.T) {
	c := Classify()

	assert.Equal(t, ClassUnknown, c.Class)
	assert.Empty(t, c.Errors)
}

func TestDefaultClassifier_PicksDominantClass(t *testing.T) {
	invalid := oops.Code("invalid").Errorf("title is required")
	forbidden := forbiddenErr{action: "update"}
	plain := errors.New("boom")

	c := Classify(invalid, plain, forbidden)

	assert.Equal(t, ClassForbidden, c.Class)
	assert.Equal(t, []error{invalid, plain, forbidden}, c.Errors)
}

func TestDefaultClassifier_FlattensJoinedAndNested(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")
	nested := &Collection{Class: ClassInvalid, Errors: []error{b}}

	got := Classify(errors.Join(a, nested), nil, c)

	require.Len(t, got.Errors, 3)
	assert.Equal(t, []error{a, b, c}, got.Errors)
	assert.Equal(t, ClassInvalid, got.Class)
}

func TestDefaultClassifier_Deterministic(t *testing.T) {
	errs := []error{
		errors.New("x"),
		oops.Code("validation").Errorf("y"),
		oops.Code("framework").Errorf("z"),
	}

	first := Default.Classify(errs)
	second := Default.Classify(errs)

	assert.Equal(t, first, second)
	assert.Equal(t, ClassValidation, first.Class)
}

func TestClassifierFunc(t *testing.T) {
	var called bool
	f := ClassifierFunc(func(errs []error) *Collection {
		called = true
		return &Collection{Class: ClassFramework, Errors: errs}
	})

	got := f.Classify([]error{errors.New("x")})

	assert.True(t, called)
	assert.Equal(t, ClassFramework, got.Class)
}

func TestCollection_ErrorAndUnwrap(t *testing.T) {
	a := errors.New("first")
	b := errors.New("second")

	single := &Collection{Class: ClassInvalid, Errors: []error{a}}
	assert.Equal(t, "invalid: first", single.Error())

	multi := &Collection{Class: ClassInvalid, Errors: []error{a, b}}
	assert.Equal(t, "invalid:\n  * first\n  * second", multi.Error())
	assert.ErrorIs(t, multi, b)

	empty := &Collection{Class: ClassUnknown}
	assert.Equal(t, "unknown: no errors", empty.Error())
}

func TestCollection_Find(t *testing.T) {
	a := errors.New("first")
	b := errors.New("second match")
	c := errors.New("third match")
	coll := &Collection{Class: ClassUnknown, Errors: []error{a, b, c}}

	got, ok := coll.Find(func(err error) bool {
		return len(err.Error()) > 6
	})
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = coll.Find(func(error) bool { return false })
	assert.False(t, ok)
}

func TestCollection_Describe(t *testing.T) {
	coll := &Collection{
		Class:  ClassForbidden,
		Errors: []error{forbiddenErr{action: "destroy"}},
	}

	assert.Contains(t, coll.Describe(), "1. [forbidden]")
	assert.Contains(t, coll.Describe(), "forbidden: destroy")
	assert.Equal(t, "  (none)", (&Collection{}).Describe())
}

type conflictErr struct{}

func (conflictErr) Error() string     { return "version conflict" }
func (conflictErr) ErrorClass() Class { return "conflict" }

// classedGroup is a multi-error that knows its own class.
type classedGroup struct {
	errs []error
}

func (g classedGroup) Error() string     { return "group" }
func (g classedGroup) Unwrap() []error   { return g.errs }
func (g classedGroup) ErrorClass() Class { return ClassFramework }

func TestDefaultClassifier_CustomClass(t *testing.T) {
	got := Classify(errors.New("plain"), conflictErr{})
	assert.Equal(t, Class("conflict"), got.Class)

	nested := Classify(&Collection{
		Class:  "conflict",
		Errors: []error{errors.New("stale write")},
	})
	assert.Equal(t, Class("conflict"), nested.Class)
	require.Len(t, nested.Errors, 1)

	withBuiltin := Classify(conflictErr{}, oops.Code("invalid").Errorf("bad"))
	assert.Equal(t, ClassInvalid, withBuiltin.Class)
}

func TestDefaultClassifier_KeepsClassedMultiError(t *testing.T) {
	group := classedGroup{errs: []error{errors.New("a"), errors.New("b")}}

	got := Classify(group)

	assert.Equal(t, ClassFramework, got.Class)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, group, got.Errors[0])
}
