package metadata

// PageKind distinguishes the two pagination strategies.
type PageKind int

const (
	// PageOffset is limit/offset pagination.
	PageOffset PageKind = iota
	// PageKeyset is cursor pagination.
	PageKeyset
)

// String returns "offset" or "keyset".
func (k PageKind) String() string {
	switch k {
	case PageOffset:
		return "offset"
	case PageKeyset:
		return "keyset"
	default:
		return "unknown"
	}
}

// Page wraps one page of results together with its pagination
// bookkeeping. Only Results is ever rewritten by the normalizer.
type Page struct {
	Kind    PageKind
	Results []any
	Limit   int
	Offset  int
	Count   *int
	Before  string
	After   string
	More    bool
}

// Resource is a persisted record. It carries two metadata slots:
// Metadata for values computed while loading it and Meta for
// storage-layer bookkeeping.
type Resource struct {
	Type     string
	Fields   map[string]any
	Metadata map[string]any
	Meta     map[string]any
}

// Record is an embedded or computed record with a single metadata
// slot.
type Record struct {
	Type     string
	Fields   map[string]any
	Metadata map[string]any
}

// NewResource creates a Resource with empty metadata slots.
func NewResource(typ string, fields map[string]any) Resource {
	return Resource{
		Type:     typ,
		Fields:   fields,
		Metadata: map[string]any{},
		Meta:     map[string]any{},
	}
}

// NewRecord creates a Record with an empty metadata slot.
func NewRecord(typ string, fields map[string]any) Record {
	return Record{
		Type:     typ,
		Fields:   fields,
		Metadata: map[string]any{},
	}
}
