package helper

import (
	"context"
	"fmt"
)

func init() {
	Register(Entry{
		Name:        "gt",
		Description: "Passes when the field value is greater than \"value\".",
		Example:     `{op: "gt", field: "age", params: {value: 17}}`,
		Category:    "ordering",
		Params:      []string{"value"},
		Resolver:    resolveGt,
	})
	Register(Entry{
		Name:        "gte",
		Description: "Passes when the field value is greater than or equal to \"value\".",
		Example:     `{op: "gte", field: "age", params: {value: 18}}`,
		Category:    "ordering",
		Params:      []string{"value"},
		Resolver:    resolveGte,
	})
	Register(Entry{
		Name:        "lt",
		Description: "Passes when the field value is less than \"value\".",
		Example:     `{op: "lt", field: "age", params: {value: 65}}`,
		Category:    "ordering",
		Params:      []string{"value"},
		Resolver:    resolveLt,
	})
	Register(Entry{
		Name:        "lte",
		Description: "Passes when the field value is less than or equal to \"value\".",
		Example:     `{op: "lte", field: "retries", params: {value: 3}}`,
		Category:    "ordering",
		Params:      []string{"value"},
		Resolver:    resolveLte,
	})
	Register(Entry{
		Name:        "between",
		Description: "Passes when the field value is within [\"min\", \"max\"] inclusive.",
		Example:     `{op: "between", field: "score", params: {min: 0, max: 100}}`,
		Category:    "ordering",
		Params:      []string{"min", "max"},
		Resolver:    resolveBetween,
	})
}

// asFloat coerces common numeric representations to float64 for comparison,
// reporting false for anything else. The ordering resolvers turn a
// non-numeric operand into an error, which the engine records as a
// type_mismatch diagnostic on the result rather than aborting validation.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

func resolveGt(_ context.Context, args []any) (bool, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return false, fmt.Errorf("gt: non-numeric operand")
	}
	return a > b, nil
}

func resolveGte(_ context.Context, args []any) (bool, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return false, fmt.Errorf("gte: non-numeric operand")
	}
	return a >= b, nil
}

func resolveLt(_ context.Context, args []any) (bool, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return false, fmt.Errorf("lt: non-numeric operand")
	}
	return a < b, nil
}

func resolveLte(_ context.Context, args []any) (bool, error) {
	a, ok1 := asFloat(args[0])
	b, ok2 := asFloat(args[1])
	if !ok1 || !ok2 {
		return false, fmt.Errorf("lte: non-numeric operand")
	}
	return a <= b, nil
}

func resolveBetween(_ context.Context, args []any) (bool, error) {
	v, ok1 := asFloat(args[0])
	min, ok2 := asFloat(args[1])
	max, ok3 := asFloat(args[2])
	if !ok1 || !ok2 || !ok3 {
		return false, fmt.Errorf("between: non-numeric operand")
	}
	return v >= min && v <= max, nil
}
