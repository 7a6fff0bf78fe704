package metadata

// slotCount is the number of metadata slots a value carries.
type slotCount int

const (
	noSlots   slotCount = 0
	oneSlot   slotCount = 1
	bothSlots slotCount = 2
)

// Traversable is implemented by every wrapper and record kind the
// normalizer rewrites. The set is closed: Page, Resource, Record and
// the adapter for map-shaped records.
type Traversable interface {
	// slots reports how many metadata slots the value carries;
	// wrappers report noSlots.
	slots() slotCount

	// cleared returns a copy whose metadata slots are empty maps.
	cleared() Traversable

	// mapChildren returns a copy in the value's own representation
	// with each child replaced by fn(child). Records map every field,
	// metadata slots included; a Page maps only its results.
	mapChildren(fn func(any) any) any
}

func (p Page) slots() slotCount { return noSlots }

func (p Page) cleared() Traversable { return p }

func (p Page) mapChildren(fn func(any) any) any {
	if p.Results != nil {
		results := make([]any, len(p.Results))
		for i, r := range p.Results {
			results[i] = fn(r)
		}
		p.Results = results
	}
	return p
}

func (r Resource) slots() slotCount { return bothSlots }

func (r Resource) cleared() Traversable {
	r.Metadata = map[string]any{}
	r.Meta = map[string]any{}
	return r
}

func (r Resource) mapChildren(fn func(any) any) any {
	r.Fields = mapValues(r.Fields, fn)
	r.Metadata = asMap(fn(r.Metadata))
	r.Meta = asMap(fn(r.Meta))
	return r
}

func (r Record) slots() slotCount { return oneSlot }

func (r Record) cleared() Traversable {
	r.Metadata = map[string]any{}
	return r
}

func (r Record) mapChildren(fn func(any) any) any {
	r.Fields = mapValues(r.Fields, fn)
	r.Metadata = asMap(fn(r.Metadata))
	return r
}

// mapRecord adapts a map-shaped record whose metadata slots are keys.
type mapRecord struct {
	m         map[string]any
	primary   string
	secondary string
	count     slotCount
}

func (r mapRecord) slots() slotCount { return r.count }

func (r mapRecord) cleared() Traversable {
	m := make(map[string]any, len(r.m))
	for k, v := range r.m {
		m[k] = v
	}
	m[r.primary] = map[string]any{}
	if r.count == bothSlots {
		m[r.secondary] = map[string]any{}
	}
	r.m = m
	return r
}

func (r mapRecord) mapChildren(fn func(any) any) any {
	return mapValues(r.m, fn)
}

// mapValues returns a new map with every value replaced by fn(value).
// A nil map stays nil.
func mapValues(m map[string]any, fn func(any) any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// asMap keeps a metadata slot a map even if a child rewrite returned
// something else.
func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}
