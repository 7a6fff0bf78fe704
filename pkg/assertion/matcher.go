package assertion

import (
	"fmt"
	"os"
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.resultkit/pkg/errclass"
	"digital.vasic.resultkit/pkg/logging"
	"digital.vasic.resultkit/pkg/outcome"
)

type tHelper interface {
	Helper()
}

// Matcher evaluates outcomes against predicates. It holds no
// per-call state and is safe for concurrent use.
type Matcher struct {
	classifier errclass.Classifier
	logger     logging.Logger
	deprecated sync.Once
}

// NewMatcher creates a Matcher with the default classifier and a
// console logger on stderr that only shows warnings and errors.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{
		classifier: errclass.Default,
		logger: logging.NewConsoleLoggerTo(os.Stderr, logging.LevelWarn, true).
			WithFields(logging.StringField("component", "assertion")),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.classifier == nil {
		m.classifier = errclass.Default
	}
	if m.logger == nil {
		m.logger = logging.NullLogger{}
	}
	return m
}

// Match classifies the errors of o and searches them for the first
// entry satisfying pred. A non-empty class is compared by tag
// equality; on mismatch pred is never called. A nil pred matches
// every error. Nothing is reported.
func (m *Matcher) Match(
	o outcome.Outcome,
	class errclass.Class,
	pred Predicate,
) Result {
	r := Result{Expected: class}
	if o == nil {
		r.Unsupported = true
		return r
	}
	r.Shape = o.Shape()

	errs, has := outcome.ErrorSource(o)
	if !has {
		return r
	}
	r.HasErrors = true

	r.Errors = m.classifier.Classify(errs)
	if r.Errors == nil {
		r.Errors = &errclass.Collection{Class: errclass.ClassUnknown}
	}
	r.Class = r.Errors.Class

	if class != "" && class != r.Class {
		r.ClassMismatch = true
		return r
	}

	if pred == nil {
		pred = Any()
	}
	r.Match, r.Found = r.Errors.Find(pred)
	return r
}

// AssertHasError requires that o carries an error satisfying pred and
// returns the first such error. When class is non-empty the dominant
// class of o's errors must equal it. Every failure is reported on t;
// nil is returned after a failure when t does not stop the test.
func (m *Matcher) AssertHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred Predicate,
	opts ...CallOption,
) error {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	cfg := newCallConfig(opts)

	r := m.Match(o, class, pred)
	switch {
	case r.Unsupported:
		fail(t, unsupportedMessage(o))
		return nil
	case !r.HasErrors:
		fail(t, noErrorsMessage(r))
		return nil
	case r.ClassMismatch:
		assert.Equalf(t, class, r.Class,
			"expected the %s to have errors of class %s, got %s",
			r.Shape, class, r.Class,
		)
		t.FailNow()
		return nil
	case !r.Found:
		msg := cfg.message
		if msg == "" {
			msg = fmt.Sprintf(
				"expected at least one error of the %s to match the predicate, got %s errors:\n%s",
				r.Shape, r.Class, r.Errors.Describe(),
			)
		}
		fail(t, msg)
		return nil
	}

	return r.Match
}

// RefuteHasError requires that no error of o satisfies pred. Success
// shapes always pass. The class argument is deprecated: a non-empty
// value is ignored and logs a warning the first time this Matcher
// sees one. When an error matches, the failure is reported on t and
// the matching error is returned.
func (m *Matcher) RefuteHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred Predicate,
	opts ...CallOption,
) error {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	cfg := newCallConfig(opts)

	if class != "" {
		m.warnDeprecatedClass(class)
	}

	r := m.Match(o, "", pred)
	switch {
	case r.Unsupported:
		fail(t, unsupportedMessage(o))
		return nil
	case !r.HasErrors, !r.Found:
		return nil
	}

	msg := cfg.message
	if msg == "" {
		msg = fmt.Sprintf(
			"expected no error of the %s to match the predicate, but found:\n  %T: %s\n\nall errors (%s):\n%s",
			r.Shape, r.Match, r.Match.Error(), r.Class, r.Errors.Describe(),
		)
	}
	fail(t, msg)
	return r.Match
}

func (m *Matcher) warnDeprecatedClass(class errclass.Class) {
	m.deprecated.Do(func() {
		m.logger.Warn(
			"the error class argument of RefuteHasError is deprecated and ignored",
			logging.StringerField("class", class),
		)
	})
}

func fail(t require.TestingT, msg string) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	assert.Fail(t, msg)
	t.FailNow()
}

func unsupportedMessage(o outcome.Outcome) string {
	return fmt.Sprintf("unsupported outcome shape: %T", o)
}

func noErrorsMessage(r Result) string {
	if r.Expected != "" {
		return fmt.Sprintf(
			"expected the %s to have errors of class %s, but it had no errors",
			r.Shape, r.Expected,
		)
	}
	return fmt.Sprintf(
		"expected the %s to have errors, but it had no errors", r.Shape,
	)
}

var std = NewMatcher()

// AssertHasError runs Matcher.AssertHasError on the default Matcher.
func AssertHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred Predicate,
	opts ...CallOption,
) error {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return std.AssertHasError(t, o, class, pred, opts...)
}

// RefuteHasError runs Matcher.RefuteHasError on the default Matcher.
func RefuteHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred Predicate,
	opts ...CallOption,
) error {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return std.RefuteHasError(t, o, class, pred, opts...)
}
