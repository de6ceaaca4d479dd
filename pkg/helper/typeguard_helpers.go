package helper

import (
	"context"

	"github.com/Fmanuel809/validra-sub002/pkg/typeguard"
)

func init() {
	Register(Entry{
		Name:        "isString",
		Description: "Passes when the field value is a string.",
		Example:     `{op: "isString", field: "name"}`,
		Category:    "type",
		Resolver:    resolveIsString,
	})
	Register(Entry{
		Name:        "isNumber",
		Description: "Passes when the field value is a number other than NaN.",
		Example:     `{op: "isNumber", field: "age"}`,
		Category:    "type",
		Resolver:    resolveIsNumber,
	})
	Register(Entry{
		Name:        "isBoolean",
		Description: "Passes when the field value is a boolean.",
		Example:     `{op: "isBoolean", field: "active"}`,
		Category:    "type",
		Resolver:    resolveIsBoolean,
	})
	Register(Entry{
		Name:        "isArray",
		Description: "Passes when the field value is a non-nil array or slice.",
		Example:     `{op: "isArray", field: "tags"}`,
		Category:    "type",
		Resolver:    resolveIsArray,
	})
	Register(Entry{
		Name:        "isObject",
		Description: "Passes when the field value is a non-nil object (map).",
		Example:     `{op: "isObject", field: "metadata"}`,
		Category:    "type",
		Resolver:    resolveIsObject,
	})
	Register(Entry{
		Name:        "isDate",
		Description: "Passes when the field value is a time.Time.",
		Example:     `{op: "isDate", field: "createdAt"}`,
		Category:    "type",
		Resolver:    resolveIsDate,
	})
}

func resolveIsString(_ context.Context, args []any) (bool, error) {
	return typeguard.IsString(args[0]), nil
}

func resolveIsNumber(_ context.Context, args []any) (bool, error) {
	return typeguard.IsNumber(args[0]), nil
}

func resolveIsBoolean(_ context.Context, args []any) (bool, error) {
	return typeguard.IsBoolean(args[0]), nil
}

func resolveIsArray(_ context.Context, args []any) (bool, error) {
	return typeguard.IsArray(args[0]), nil
}

func resolveIsObject(_ context.Context, args []any) (bool, error) {
	return typeguard.IsObject(args[0]), nil
}

func resolveIsDate(_ context.Context, args []any) (bool, error) {
	return typeguard.IsDate(args[0]), nil
}
