// Package testkit assembles a Matcher and a Normalizer from one
// configuration so a test suite can set them up once.
package testkit

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.resultkit/pkg/assertion"
	"digital.vasic.resultkit/pkg/config"
	"digital.vasic.resultkit/pkg/errclass"
	"digital.vasic.resultkit/pkg/logging"
	"digital.vasic.resultkit/pkg/metadata"
	"digital.vasic.resultkit/pkg/outcome"
)

// Kit bundles the configured collaborators.
type Kit struct {
	matcher    *assertion.Matcher
	normalizer *metadata.Normalizer
	logger     logging.Logger
}

// Option configures a Kit beyond what the configuration file covers.
type Option func(*options)

type options struct {
	logger     logging.Logger
	classifier errclass.Classifier
}

// WithLogger replaces the logger built from configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClassifier sets the classifier used by the matcher.
func WithClassifier(c errclass.Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// New builds a Kit from cfg. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*Kit, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		built, err := logging.New(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		logger = built
	}

	matcherOpts := []assertion.MatcherOption{assertion.WithLogger(logger)}
	if o.classifier != nil {
		matcherOpts = append(matcherOpts, assertion.WithClassifier(o.classifier))
	}

	return &Kit{
		matcher:    assertion.NewMatcher(matcherOpts...),
		normalizer: metadata.NewNormalizer(metadata.WithConfig(cfg.Metadata)),
		logger:     logger,
	}, nil
}

// Load builds a Kit from a YAML configuration file.
func Load(path string, opts ...Option) (*Kit, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Matcher returns the configured Matcher.
func (k *Kit) Matcher() *assertion.Matcher {
	return k.matcher
}

// Normalizer returns the configured Normalizer.
func (k *Kit) Normalizer() *metadata.Normalizer {
	return k.normalizer
}

// AssertHasError delegates to the Matcher.
func (k *Kit) AssertHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred assertion.Predicate,
	opts ...assertion.CallOption,
) error {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return k.matcher.AssertHasError(t, o, class, pred, opts...)
}

// RefuteHasError delegates to the Matcher.
func (k *Kit) RefuteHasError(
	t require.TestingT,
	o outcome.Outcome,
	class errclass.Class,
	pred assertion.Predicate,
	opts ...assertion.CallOption,
) error {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return k.matcher.RefuteHasError(t, o, class, pred, opts...)
}

// StripMetadata delegates to the Normalizer.
func (k *Kit) StripMetadata(v any) any {
	return k.normalizer.Strip(v)
}

// EqualStripped asserts that want and got are equal once their
// metadata is stripped, reporting a diff otherwise.
func (k *Kit) EqualStripped(
	t assert.TestingT, want, got any, msgAndArgs ...any,
) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if diff := k.normalizer.Diff(want, got); diff != "" {
		return assert.Fail(t,
			fmt.Sprintf("values differ after stripping metadata (-want +got):\n%s", diff),
			msgAndArgs...,
		)
	}
	return true
}

// Close releases the logger.
func (k *Kit) Close() error {
	return k.logger.Close()
}
