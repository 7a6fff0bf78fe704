// Package metadata clears transient bookkeeping from result values so
// that two results can be compared for structural equality in tests.
//
// Strip walks sequences, arrays, pages, records and successful
// outcomes. Records have their metadata slots reset to empty maps and
// every field rewritten recursively; everything else passes through
// unchanged. Stripping is idempotent and preserves shape. Value trees
// must be acyclic; a value that refers back to itself will not
// terminate.
package metadata

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"digital.vasic.resultkit/pkg/config"
	"digital.vasic.resultkit/pkg/outcome"
)

// Normalizer strips metadata from value trees.
type Normalizer struct {
	primary   string
	secondary string
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSlots sets the keys treated as metadata slots on map-shaped
// records.
func WithSlots(primary, secondary string) Option {
	return func(n *Normalizer) {
		n.primary = primary
		n.secondary = secondary
	}
}

// WithConfig takes the slot keys from configuration.
func WithConfig(cfg config.Metadata) Option {
	return WithSlots(cfg.PrimarySlot, cfg.SecondarySlot)
}

// NewNormalizer creates a Normalizer using the default slot keys
// unless overridden.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		primary:   config.DefaultPrimarySlot,
		secondary: config.DefaultSecondarySlot,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// StripMetadata strips v with the default Normalizer.
func StripMetadata(v any) any {
	return defaultNormalizer.Strip(v)
}

// Diff reports the differences between want and got after stripping
// both with the default Normalizer, or "" when they are equal.
func Diff(want, got any, opts ...cmp.Option) string {
	return defaultNormalizer.Diff(want, got, opts...)
}

// Diff reports the differences between want and got after stripping
// both, or "" when they are equal.
func (n *Normalizer) Diff(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(n.Strip(want), n.Strip(got), opts...)
}

// Strip returns v with every metadata slot at every depth reset to an
// empty map. Checks run in this order, first match wins: sequence,
// array, page, record with both slots, record with the primary slot.
// Anything else is returned unchanged.
func (n *Normalizer) Strip(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		return n.stripList(x)
	case outcome.Success:
		return outcome.Success{Value: n.Strip(x.Value)}
	case *Page:
		return stripPtr(n, x)
	case *Resource:
		return stripPtr(n, x)
	case *Record:
		return stripPtr(n, x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if isScalar(rv.Type().Elem()) || rv.IsNil() {
			return v
		}
		return n.stripSequence(rv)
	case reflect.Array:
		if isScalar(rv.Type().Elem()) {
			return v
		}
		return n.stripGrouping(rv)
	}

	t, ok := n.traversable(v)
	if !ok {
		return v
	}
	return t.cleared().mapChildren(n.Strip)
}

// traversable resolves v to its Traversable form, if it has one.
func (n *Normalizer) traversable(v any) (Traversable, bool) {
	switch x := v.(type) {
	case Page:
		return x, true
	case Resource:
		return x, true
	case Record:
		return x, true
	case map[string]any:
		return n.mapRecord(x)
	}
	return nil, false
}

func (n *Normalizer) mapRecord(m map[string]any) (Traversable, bool) {
	if _, ok := m[n.primary]; !ok {
		return nil, false
	}
	count := oneSlot
	if _, ok := m[n.secondary]; ok {
		count = bothSlots
	}
	return mapRecord{
		m:         m,
		primary:   n.primary,
		secondary: n.secondary,
		count:     count,
	}, true
}

func (n *Normalizer) stripList(list []any) []any {
	if list == nil {
		return nil
	}
	out := make([]any, len(list))
	for i, item := range list {
		out[i] = n.Strip(item)
	}
	return out
}

// stripSequence handles typed slices, keeping their element type.
func (n *Normalizer) stripSequence(rv reflect.Value) any {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	n.stripInto(out, rv)
	return out.Interface()
}

// stripGrouping handles arrays, which keep their arity.
func (n *Normalizer) stripGrouping(rv reflect.Value) any {
	out := reflect.New(rv.Type()).Elem()
	n.stripInto(out, rv)
	return out.Interface()
}

func (n *Normalizer) stripInto(dst, src reflect.Value) {
	elem := src.Type().Elem()
	for i := 0; i < src.Len(); i++ {
		stripped := n.Strip(src.Index(i).Interface())
		if stripped == nil {
			dst.Index(i).Set(reflect.Zero(elem))
			continue
		}
		dst.Index(i).Set(reflect.ValueOf(stripped))
	}
}

// stripPtr strips the value behind p and returns a pointer to the
// stripped copy. A nil pointer is returned as is.
func stripPtr[T Page | Resource | Record](n *Normalizer, p *T) *T {
	if p == nil {
		return nil
	}
	stripped := n.Strip(*p).(T)
	return &stripped
}

// isScalar reports whether values of t can never hold metadata.
func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
