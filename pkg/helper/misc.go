package helper

import (
	"context"
	"encoding/json"
)

func init() {
	Register(Entry{
		Name:        "isInteger",
		Description: "Passes when the field value is a number with no fractional part.",
		Example:     `{op: "isInteger", field: "quantity"}`,
		Category:    "type",
		Resolver:    resolveIsInteger,
	})
	Register(Entry{
		Name:        "isPositive",
		Description: "Passes when the field value is a number greater than zero.",
		Example:     `{op: "isPositive", field: "price"}`,
		Category:    "type",
		Resolver:    resolveIsPositive,
	})
	Register(Entry{
		Name:        "isNegative",
		Description: "Passes when the field value is a number less than zero.",
		Example:     `{op: "isNegative", field: "adjustment"}`,
		Category:    "type",
		Resolver:    resolveIsNegative,
	})
	Register(Entry{
		Name:        "isJSON",
		Description: "Passes when the field value is a string containing valid JSON.",
		Example:     `{op: "isJSON", field: "payload"}`,
		Category:    "string",
		Resolver:    resolveIsJSON,
	})
}

func resolveIsInteger(_ context.Context, args []any) (bool, error) {
	n, ok := asFloat(args[0])
	if !ok {
		return false, nil
	}
	return n == float64(int64(n)), nil
}

func resolveIsPositive(_ context.Context, args []any) (bool, error) {
	n, ok := asFloat(args[0])
	if !ok {
		return false, nil
	}
	return n > 0, nil
}

func resolveIsNegative(_ context.Context, args []any) (bool, error) {
	n, ok := asFloat(args[0])
	if !ok {
		return false, nil
	}
	return n < 0, nil
}

func resolveIsJSON(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	return json.Valid([]byte(s)), nil
}
