// Package helper is the catalogue of named validation operators (the
// engine's DSL): equality, ordering, string/collection predicates, and type
// guards. Helpers are registered at process start via per-category init()
// functions (see equality.go, ordering.go, stringpred.go, collection.go,
// typeguard_helpers.go, misc.go) and looked up by name through a Registry.
package helper

import "context"

// Resolver is the pure function backing a helper. args[0] is always the
// extracted field value; args[1:] are the declared parameters in order.
// A sync Resolver ignores ctx and never blocks.
type Resolver func(ctx context.Context, args []any) (bool, error)

// Entry describes one registered helper: its public metadata plus the
// private resolver machinery the engine needs to invoke it.
type Entry struct {
	// Name must be unique across the registry.
	Name string
	// Description is a one-line human summary, shown by listHelpers/explain.
	Description string
	// Example is a short illustrative rule snippet.
	Example string
	// Category groups related helpers for display (e.g. "equality",
	// "ordering", "string", "collection", "type").
	Category string

	// Async marks whether Resolver may block on ctx; sync and async
	// resolvers are never mixed under one name.
	Async bool
	// Params lists the declared parameter names in positional order (not
	// counting the implicit field-value slot 0).
	Params []string

	Resolver Resolver
}

// Info is the public metadata view of an Entry — it strips Resolver,
// Params, and Async so that listHelpers() never leaks executable state.
type Info struct {
	Name        string
	Description string
	Example     string
	Category    string
}

// ResolverSchema is what resolverSchemaFor returns: the executable surface
// of a helper without its display metadata.
type ResolverSchema struct {
	Resolver Resolver
	Async    bool
	Params   []string
}

func (e Entry) info() Info {
	return Info{
		Name:        e.Name,
		Description: e.Description,
		Example:     e.Example,
		Category:    e.Category,
	}
}

func (e Entry) schema() ResolverSchema {
	return ResolverSchema{
		Resolver: e.Resolver,
		Async:    e.Async,
		Params:   e.Params,
	}
}
