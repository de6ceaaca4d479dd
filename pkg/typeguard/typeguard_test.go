package typeguard

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsString(t *testing.T) {
	assert.True(t, IsString("hi"))
	assert.False(t, IsString(5))
	assert.False(t, IsString(nil))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber(5))
	assert.True(t, IsNumber(5.5))
	assert.False(t, IsNumber(math.NaN()))
	assert.False(t, IsNumber("5"))
}

func TestIsBoolean(t *testing.T) {
	assert.True(t, IsBoolean(true))
	assert.False(t, IsBoolean(1))
}

func TestIsArray(t *testing.T) {
	assert.True(t, IsArray([]any{1, 2}))
	assert.False(t, IsArray(map[string]any{}))
	var nilSlice []any
	assert.False(t, IsArray(nilSlice))
}

func TestIsObject(t *testing.T) {
	assert.True(t, IsObject(map[string]any{"a": 1}))
	assert.False(t, IsObject([]any{1}))
	assert.False(t, IsObject(nil))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate(time.Now()))
	assert.False(t, IsDate("2020-01-01"))
}

func TestIsEmpty(t *testing.T) {
	empty, ok := IsEmpty("")
	assert.True(t, ok)
	assert.True(t, empty)

	empty, ok = IsEmpty([]any{1})
	assert.True(t, ok)
	assert.False(t, empty)

	_, ok = IsEmpty(42)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	found, ok := Contains([]any{1, 2, 3}, 2)
	assert.True(t, ok)
	assert.True(t, found)

	found, ok = Contains("hello world", "world")
	assert.True(t, ok)
	assert.True(t, found)

	_, ok = Contains(42, 1)
	assert.False(t, ok)
}

func TestHasProperty(t *testing.T) {
	found, ok := HasProperty(map[string]any{"a": 1}, "a")
	assert.True(t, ok)
	assert.True(t, found)

	found, ok = HasProperty(map[string]any{"a": 1}, "b")
	assert.True(t, ok)
	assert.False(t, found)

	_, ok = HasProperty([]any{1}, "a")
	assert.False(t, ok)
}
