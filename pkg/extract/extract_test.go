package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSimpleKey(t *testing.T) {
	e := New()
	record := map[string]any{"name": "Ada"}
	assert.Equal(t, "Ada", e.Get(record, "name"))
}

func TestGetNestedPath(t *testing.T) {
	e := New()
	record := map[string]any{"address": map[string]any{"city": "Lima"}}
	assert.Equal(t, "Lima", e.Get(record, "address.city"))
}

func TestGetArrayIndex(t *testing.T) {
	e := New()
	record := map[string]any{"tags": []any{
		map[string]any{"label": "first"},
		map[string]any{"label": "second"},
	}}
	assert.Equal(t, "second", e.Get(record, "tags.1.label"))
}

func TestGetMissingKeyIsUndefined(t *testing.T) {
	e := New()
	record := map[string]any{"name": "Ada"}
	assert.True(t, IsUndefined(e.Get(record, "missing")))
}

func TestGetOutOfRangeIndexIsUndefined(t *testing.T) {
	e := New()
	record := map[string]any{"tags": []any{"a"}}
	assert.True(t, IsUndefined(e.Get(record, "tags.5")))
}

func TestGetThroughNonContainerIsUndefined(t *testing.T) {
	e := New()
	record := map[string]any{"name": "Ada"}
	assert.True(t, IsUndefined(e.Get(record, "name.first")))
}

func TestRepeatedPathIsACacheHit(t *testing.T) {
	e := New()
	record := map[string]any{"a": map[string]any{"b": 1}}

	e.Get(record, "a.b")
	e.Get(record, "a.b")

	m := e.Metrics()
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, 1, m.Size)
}

func TestClearCacheResetsSize(t *testing.T) {
	e := New()
	record := map[string]any{"a": 1}
	e.Get(record, "a")

	e.ClearCache()
	assert.Equal(t, 0, e.Metrics().Size)
}

func TestCacheNeverExceedsCapacity(t *testing.T) {
	e := NewWithCapacity(3)
	record := map[string]any{"a": 1, "b": 1, "c": 1, "d": 1, "e": 1}

	for _, p := range []string{"a", "b", "c", "d", "e"} {
		e.Get(record, p)
	}

	assert.LessOrEqual(t, e.Metrics().Size, 3)
}
