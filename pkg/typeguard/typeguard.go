// Package typeguard provides the primitive and collection type predicates
// used by the helper catalogue (pkg/helper). These are narrow, reflection-based shape checks — they
// answer "is this value shaped like a string/number/array/...", not "does
// this value satisfy a business rule".
package typeguard

import (
	"reflect"
	"strings"
	"time"
)

// IsString reports whether v is a string, including values convertible to
// string via the underlying kind (e.g. a named string type).
func IsString(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(string); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// IsNumber reports whether v is any numeric kind, excluding NaN.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch n := v.(type) {
	case float64:
		return !isNaN(n)
	case float32:
		return !isNaN(float64(n))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		return !isNaN(rv.Float())
	}
	return false
}

func isNaN(f float64) bool {
	return f != f
}

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	if v == nil {
		return false
	}
	_, ok := v.(bool)
	return ok
}

// IsArray reports whether v is a slice or array (but not a nil slice, which
// is treated as absent rather than an empty array).
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

// IsObject reports whether v is a mapping, excluding arrays/slices and nil.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return false
	}
	return !rv.IsNil()
}

// IsDate reports whether v is a time.Time.
func IsDate(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

// Len returns the length of a map, slice, array, or string, and whether v
// supported a length at all.
func Len(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok {
		return len([]rune(s)), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len(), true
	}
	return 0, false
}

// IsEmpty reports whether v is the zero-length form of a string, array,
// slice, or map. ok is false when v is not one of those shapes.
func IsEmpty(v any) (empty bool, ok bool) {
	n, ok := Len(v)
	if !ok {
		return false, false
	}
	return n == 0, true
}

// Contains reports whether collection v contains needle, for maps (checked
// against values), slices/arrays (checked elementwise), and strings (checked
// as a substring). ok is false when v is not one of those shapes.
func Contains(v any, needle any) (found bool, ok bool) {
	if v == nil {
		return false, false
	}
	if s, isStr := v.(string); isStr {
		sub, isSub := needle.(string)
		if !isSub {
			return false, false
		}
		return strings.Contains(s, sub), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), needle) {
				return true, true
			}
		}
		return false, true
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if reflect.DeepEqual(iter.Value().Interface(), needle) {
				return true, true
			}
		}
		return false, true
	}
	return false, false
}

// HasProperty reports whether v (a map keyed by string) has the given key.
// ok is false when v is not a string-keyed map.
func HasProperty(v any, key string) (found bool, ok bool) {
	if v == nil {
		return false, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return false, false
	}
	if rv.Type().Key().Kind() != reflect.String {
		return false, false
	}
	val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	return val.IsValid(), true
}
