package helper

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Fmanuel809/validra-sub002/pkg/typeguard"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	alphaPattern = regexp.MustCompile(`^[A-Za-z]+$`)
	alnumPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

func init() {
	Register(Entry{
		Name:        "isEmail",
		Description: "Passes when the field value is a syntactically valid email address.",
		Example:     `{op: "isEmail", field: "contact.email"}`,
		Category:    "string",
		Resolver:    resolveIsEmail,
	})
	Register(Entry{
		Name:        "regexMatch",
		Description: "Passes when the field value matches the \"pattern\" regular expression.",
		Example:     `{op: "regexMatch", field: "sku", params: {pattern: "^[A-Z]{3}-\\d+$"}}`,
		Category:    "string",
		Params:      []string{"pattern"},
		Resolver:    resolveRegexMatch,
	})
	Register(Entry{
		Name:        "minLength",
		Description: "Passes when the field value's length is at least \"value\".",
		Example:     `{op: "minLength", field: "password", params: {value: 8}}`,
		Category:    "string",
		Params:      []string{"value"},
		Resolver:    resolveMinLength,
	})
	Register(Entry{
		Name:        "maxLength",
		Description: "Passes when the field value's length is at most \"value\".",
		Example:     `{op: "maxLength", field: "bio", params: {value: 280}}`,
		Category:    "string",
		Params:      []string{"value"},
		Resolver:    resolveMaxLength,
	})
	Register(Entry{
		Name:        "startsWith",
		Description: "Passes when the field value starts with the \"prefix\" parameter.",
		Example:     `{op: "startsWith", field: "path", params: {prefix: "/api/"}}`,
		Category:    "string",
		Params:      []string{"prefix"},
		Resolver:    resolveStartsWith,
	})
	Register(Entry{
		Name:        "endsWith",
		Description: "Passes when the field value ends with the \"suffix\" parameter.",
		Example:     `{op: "endsWith", field: "filename", params: {suffix: ".json"}}`,
		Category:    "string",
		Params:      []string{"suffix"},
		Resolver:    resolveEndsWith,
	})
	Register(Entry{
		Name:        "isAlpha",
		Description: "Passes when the field value contains only letters.",
		Example:     `{op: "isAlpha", field: "firstName"}`,
		Category:    "string",
		Resolver:    resolveIsAlpha,
	})
	Register(Entry{
		Name:        "isAlphanumeric",
		Description: "Passes when the field value contains only letters and digits.",
		Example:     `{op: "isAlphanumeric", field: "username"}`,
		Category:    "string",
		Resolver:    resolveIsAlphanumeric,
	})
	Register(Entry{
		Name:        "isURL",
		Description: "Passes when the field value is a syntactically valid absolute URL.",
		Example:     `{op: "isURL", field: "website"}`,
		Category:    "string",
		Resolver:    resolveIsURL,
	})
	Register(Entry{
		Name:        "isUUID",
		Description: "Passes when the field value is a canonical-form UUID.",
		Example:     `{op: "isUUID", field: "id"}`,
		Category:    "string",
		Resolver:    resolveIsUUID,
	})
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func resolveIsEmail(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	return emailPattern.MatchString(s), nil
}

func resolveRegexMatch(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	pattern, ok := asString(args[1])
	if !ok {
		return false, fmt.Errorf("regexMatch: pattern parameter must be a string")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("regexMatch: invalid pattern: %w", err)
	}
	return re.MatchString(s), nil
}

func resolveMinLength(_ context.Context, args []any) (bool, error) {
	n, ok := typeguard.Len(args[0])
	if !ok {
		return false, nil
	}
	min, ok := asFloat(args[1])
	if !ok {
		return false, fmt.Errorf("minLength: value parameter must be numeric")
	}
	return float64(n) >= min, nil
}

func resolveMaxLength(_ context.Context, args []any) (bool, error) {
	n, ok := typeguard.Len(args[0])
	if !ok {
		return false, nil
	}
	max, ok := asFloat(args[1])
	if !ok {
		return false, fmt.Errorf("maxLength: value parameter must be numeric")
	}
	return float64(n) <= max, nil
}

func resolveStartsWith(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	prefix, ok := asString(args[1])
	if !ok {
		return false, fmt.Errorf("startsWith: prefix parameter must be a string")
	}
	return strings.HasPrefix(s, prefix), nil
}

func resolveEndsWith(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	suffix, ok := asString(args[1])
	if !ok {
		return false, fmt.Errorf("endsWith: suffix parameter must be a string")
	}
	return strings.HasSuffix(s, suffix), nil
}

func resolveIsAlpha(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok || s == "" {
		return false, nil
	}
	return alphaPattern.MatchString(s), nil
}

func resolveIsAlphanumeric(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok || s == "" {
		return false, nil
	}
	return alnumPattern.MatchString(s), nil
}

func resolveIsURL(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false, nil
	}
	return u.Scheme != "" && u.Host != "", nil
}

func resolveIsUUID(_ context.Context, args []any) (bool, error) {
	s, ok := asString(args[0])
	if !ok {
		return false, nil
	}
	return uuidPattern.MatchString(s), nil
}
