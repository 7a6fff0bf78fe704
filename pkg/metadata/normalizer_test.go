package metadata

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.resultkit/pkg/config"
	"digital.vasic.resultkit/pkg/outcome"
)

func loadedPost(title string, author Record) Resource {
	return Resource{
		Type:     "post",
		Fields:   map[string]any{"title": title, "author": author},
		Metadata: map[string]any{"calculated": 3},
		Meta:     map[string]any{"state": "loaded", "source": "posts"},
	}
}

func author(name string) Record {
	return Record{
		Type:     "author",
		Fields:   map[string]any{"name": name},
		Metadata: map[string]any{"rank": 1},
	}
}

func TestStrip_Scalars(t *testing.T) {
	for _, v := range []any{nil, 1, "literal", 2.5, true, []byte("raw"), []string{"a"}} {
		assert.Equal(t, v, StripMetadata(v))
	}
}

func TestStrip_SequenceOfRecords(t *testing.T) {
	in := []any{
		loadedPost("first", author("ann")),
		loadedPost("second", author("bob")),
	}

	got := StripMetadata(in).([]any)

	require.Len(t, got, 2)
	for i, name := range []string{"ann", "bob"} {
		post := got[i].(Resource)
		assert.Equal(t, map[string]any{}, post.Metadata)
		assert.Equal(t, map[string]any{}, post.Meta)
		assert.Equal(t, "post", post.Type)

		nested := post.Fields["author"].(Record)
		assert.Equal(t, map[string]any{}, nested.Metadata)
		assert.Equal(t, name, nested.Fields["name"])
	}
	assert.Equal(t, "first", got[0].(Resource).Fields["title"])
}

func TestStrip_DoesNotMutateInput(t *testing.T) {
	in := loadedPost("title", author("ann"))

	_ = StripMetadata(in)

	assert.Equal(t, 3, in.Metadata["calculated"])
	assert.Equal(t, "loaded", in.Meta["state"])
	assert.Equal(t, 1, in.Fields["author"].(Record).Metadata["rank"])
}

func TestStrip_Page(t *testing.T) {
	count := 2
	page := Page{
		Kind:    PageKeyset,
		Results: []any{author("r1"), author("r2")},
		Limit:   2,
		Count:   &count,
		After:   "abc",
		More:    true,
	}

	got := StripMetadata(page).(Page)

	assert.Equal(t, "abc", got.After)
	assert.Equal(t, 2, got.Limit)
	assert.Same(t, &count, got.Count)
	assert.True(t, got.More)
	assert.Equal(t, []any{
		StripMetadata(author("r1")),
		StripMetadata(author("r2")),
	}, got.Results)
	assert.Equal(t, 1, page.Results[0].(Record).Metadata["rank"])
}

func TestStrip_Array(t *testing.T) {
	in := [2]any{author("ann"), "literal"}

	got, ok := StripMetadata(in).([2]any)

	require.True(t, ok, "arity must be preserved")
	assert.Equal(t, map[string]any{}, got[0].(Record).Metadata)
	assert.Equal(t, "literal", got[1])
}

func TestStrip_TypedSlicesKeepElementType(t *testing.T) {
	in := []Record{author("ann"), author("bob")}

	got, ok := StripMetadata(in).([]Record)

	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Empty(t, got[1].Metadata)
	assert.NotNil(t, got[1].Metadata)

	var empty []Record
	assert.Nil(t, StripMetadata(empty))
}

func TestStrip_Pointers(t *testing.T) {
	rec := author("ann")
	got := StripMetadata(&rec).(*Record)
	assert.NotSame(t, &rec, got)
	assert.Empty(t, got.Metadata)
	assert.Equal(t, 1, rec.Metadata["rank"])

	var nilPage *Page
	assert.Nil(t, StripMetadata(nilPage).(*Page))

	ptrs := []*Resource{nil}
	assert.Equal(t, []*Resource{nil}, StripMetadata(ptrs))
}

func TestStrip_MapRecords(t *testing.T) {
	in := map[string]any{
		"id":           1,
		"__metadata__": map[string]any{"score": 9},
		"__meta__":     map[string]any{"state": "built"},
		"comments": []any{
			map[string]any{"body": "hi", "__metadata__": map[string]any{"x": 1}},
		},
		"plain": map[string]any{"__meta__": map[string]any{"kept": true}},
	}

	got := StripMetadata(in).(map[string]any)

	assert.Equal(t, map[string]any{
		"id":           1,
		"__metadata__": map[string]any{},
		"__meta__":     map[string]any{},
		"comments": []any{
			map[string]any{"body": "hi", "__metadata__": map[string]any{}},
		},
		"plain": map[string]any{"__meta__": map[string]any{"kept": true}},
	}, got)
	assert.Equal(t, 9, in["__metadata__"].(map[string]any)["score"])
}

func TestStrip_CustomSlots(t *testing.T) {
	n := NewNormalizer(WithConfig(config.Metadata{
		PrimarySlot:   "_meta",
		SecondarySlot: "_ecto",
	}))

	got := n.Strip(map[string]any{
		"_meta":        map[string]any{"a": 1},
		"__metadata__": map[string]any{"b": 2},
	})

	assert.Equal(t, map[string]any{
		"_meta":        map[string]any{},
		"__metadata__": map[string]any{"b": 2},
	}, got)
}

func TestStrip_Outcomes(t *testing.T) {
	got := StripMetadata(outcome.Ok([]any{author("ann")}))
	assert.Equal(t, outcome.Ok([]any{StripMetadata(author("ann"))}), got)

	failure := outcome.Failure{Err: errors.New("boom")}
	assert.Equal(t, failure, StripMetadata(failure))
	assert.Equal(t, outcome.SuccessUnit{}, StripMetadata(outcome.SuccessUnit{}))
}

func TestStrip_Idempotent(t *testing.T) {
	count := 1
	values := []any{
		loadedPost("t", author("ann")),
		[]any{author("a"), []any{author("b")}},
		[3]any{author("a"), 1, Page{Results: []any{author("c")}}},
		Page{Kind: PageOffset, Results: []any{loadedPost("p", author("d"))}, Count: &count},
		map[string]any{"__metadata__": map[string]any{"k": 1}, "child": author("e")},
		outcome.Ok(&Resource{Metadata: map[string]any{"x": 1}}),
		"scalar",
	}

	for _, v := range values {
		once := StripMetadata(v)
		twice := StripMetadata(once)
		assert.Empty(t, cmp.Diff(once, twice))
	}
}

func TestDiff(t *testing.T) {
	a := loadedPost("same", author("ann"))
	b := loadedPost("same", author("ann"))
	b.Metadata["calculated"] = 99
	b.Meta["state"] = "built"

	assert.Empty(t, Diff(a, b))

	c := loadedPost("different", author("ann"))
	diff := Diff(a, c)
	assert.Contains(t, diff, "same")
	assert.Contains(t, diff, "different")
}

func TestPageKind_String(t *testing.T) {
	assert.Equal(t, "offset", PageOffset.String())
	assert.Equal(t, "keyset", PageKeyset.String())
	assert.Equal(t, "unknown", PageKind(7).String())
}

func TestConstructors(t *testing.T) {
	r := NewResource("post", map[string]any{"id": 1})
	assert.NotNil(t, r.Metadata)
	assert.NotNil(t, r.Meta)

	rec := NewRecord("author", nil)
	assert.NotNil(t, rec.Metadata)
	assert.Equal(t, rec, StripMetadata(rec))
}
