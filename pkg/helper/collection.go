package helper

import (
	"context"
	"fmt"

	"github.com/Fmanuel809/validra-sub002/pkg/typeguard"
)

func init() {
	Register(Entry{
		Name:        "isEmpty",
		Description: "Passes when the field value is an empty string, array, or object; any other value, including an absent field, fails.",
		Example:     `{op: "isEmpty", field: "tags"}`,
		Category:    "collection",
		Resolver:    resolveIsEmpty,
	})
	Register(Entry{
		Name:        "contains",
		Description: "Passes when the field value (string, array, or object) contains \"value\".",
		Example:     `{op: "contains", field: "roles", params: {value: "admin"}}`,
		Category:    "collection",
		Params:      []string{"value"},
		Resolver:    resolveContains,
	})
	Register(Entry{
		Name:        "hasProperty",
		Description: "Passes when the field value is an object with the \"key\" property.",
		Example:     `{op: "hasProperty", field: "metadata", params: {key: "source"}}`,
		Category:    "collection",
		Params:      []string{"key"},
		Resolver:    resolveHasProperty,
	})
}

func resolveIsEmpty(_ context.Context, args []any) (bool, error) {
	empty, ok := typeguard.IsEmpty(args[0])
	if !ok {
		return false, nil
	}
	return empty, nil
}

func resolveContains(_ context.Context, args []any) (bool, error) {
	found, ok := typeguard.Contains(args[0], args[1])
	if !ok {
		return false, fmt.Errorf("contains: field value is not a string, array, or object")
	}
	return found, nil
}

func resolveHasProperty(_ context.Context, args []any) (bool, error) {
	key, ok := asString(args[1])
	if !ok {
		return false, fmt.Errorf("hasProperty: key parameter must be a string")
	}
	found, ok := typeguard.HasProperty(args[0], key)
	if !ok {
		return false, nil
	}
	return found, nil
}
