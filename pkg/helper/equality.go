package helper

import (
	"context"
	"reflect"
)

func init() {
	Register(Entry{
		Name:        "eq",
		Description: "Passes when the field value equals the \"value\" parameter.",
		Example:     `{op: "eq", field: "status", params: {value: "active"}}`,
		Category:    "equality",
		Params:      []string{"value"},
		Resolver:    resolveEq,
	})
	Register(Entry{
		Name:        "neq",
		Description: "Passes when the field value does not equal the \"value\" parameter.",
		Example:     `{op: "neq", field: "status", params: {value: "banned"}}`,
		Category:    "equality",
		Params:      []string{"value"},
		Resolver:    resolveNeq,
	})
	Register(Entry{
		Name:        "oneOf",
		Description: "Passes when the field value is one of the \"values\" parameter.",
		Example:     `{op: "oneOf", field: "role", params: {values: ["admin", "editor"]}}`,
		Category:    "equality",
		Params:      []string{"values"},
		Resolver:    resolveOneOf,
	})
	Register(Entry{
		Name:        "notOneOf",
		Description: "Passes when the field value is none of the \"values\" parameter.",
		Example:     `{op: "notOneOf", field: "role", params: {values: ["banned", "spam"]}}`,
		Category:    "equality",
		Params:      []string{"values"},
		Resolver:    resolveNotOneOf,
	})
	Register(Entry{
		Name:        "matchesField",
		Description: "Passes when the field value equals the \"otherValue\" parameter, usually a reference to another field of the record.",
		Example:     `{op: "matchesField", field: "confirmPassword", params: {otherValue: {$field: "password"}}}`,
		Category:    "equality",
		Params:      []string{"otherValue"},
		Resolver:    resolveMatchesField,
	})
}

func resolveEq(_ context.Context, args []any) (bool, error) {
	return reflect.DeepEqual(args[0], args[1]), nil
}

func resolveNeq(_ context.Context, args []any) (bool, error) {
	return !reflect.DeepEqual(args[0], args[1]), nil
}

func resolveOneOf(_ context.Context, args []any) (bool, error) {
	values, _ := args[1].([]any)
	for _, v := range values {
		if reflect.DeepEqual(args[0], v) {
			return true, nil
		}
	}
	return false, nil
}

func resolveNotOneOf(ctx context.Context, args []any) (bool, error) {
	ok, err := resolveOneOf(ctx, args)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// resolveMatchesField compares the field value against a sibling value. The
// "otherValue" parameter arrives pre-resolved: the engine recognises a
// rule.FieldRef parameter value and substitutes the referenced field's
// extracted value before building the argument vector (see pkg/engine's
// buildArgs), so this resolver itself is a plain equality check — it reads
// a sibling field's value but never rewrites it.
func resolveMatchesField(_ context.Context, args []any) (bool, error) {
	return reflect.DeepEqual(args[0], args[1]), nil
}
