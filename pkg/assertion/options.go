package assertion

import (
	"digital.vasic.resultkit/pkg/errclass"
	"digital.vasic.resultkit/pkg/logging"
)

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithClassifier sets the classifier used to group outcome errors.
func WithClassifier(c errclass.Classifier) MatcherOption {
	return func(m *Matcher) {
		m.classifier = c
	}
}

// WithLogger sets the logger that receives deprecation warnings.
func WithLogger(logger logging.Logger) MatcherOption {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// CallOption adjusts a single assertion call.
type CallOption func(*callConfig)

type callConfig struct {
	message string
}

// Message replaces the default failure text reported when the
// predicate check fails.
func Message(msg string) CallOption {
	return func(c *callConfig) {
		c.message = msg
	}
}

func newCallConfig(opts []CallOption) callConfig {
	var c callConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
