// Package rule defines the user-supplied Rule and the FieldRef parameter
// marker. The compiled form, CompiledRule, lives in pkg/compiler.
package rule

// Rule is a single user-supplied validation rule: run the named operator
// against the value at Field, optionally negating its verdict.
type Rule struct {
	// Op is the helper name (e.g. "isEmail", "gte"). Must resolve in the
	// helper registry; an unknown op is a configuration error raised at
	// compile time.
	Op string

	// Field is a dotted path naming the location in a record to extract,
	// e.g. "address.city" or "items.0.sku".
	Field string

	// Params holds named parameters keyed by the names the helper declares;
	// the helper's declared order fixes their positions in the argument
	// vector. May be nil when the helper takes no parameters beyond the field value.
	Params map[string]any

	// Negative inverts the helper's boolean verdict when true.
	Negative bool

	// Message overrides the default diagnostic message template when set.
	Message string
}

// Fingerprint returns a string uniquely identifying this rule's structure
// (op + field + canonicalised params + negative), used as the rule
// compiler's cache key. Two Rules with the same Fingerprint compile to
// structurally equal CompiledRules.
func (r Rule) Fingerprint() string {
	return fingerprint(r.Op, r.Field, r.Params, r.Negative)
}

// FieldRef marks a parameter value that should be read from another field
// of the same record, rather than taken literally. The engine resolves it
// via the extractor before building a helper's argument vector, so
// Resolvers themselves never see a FieldRef — only the value it pointed to
// (see "matchesField" in pkg/helper).
type FieldRef struct {
	Path string
}
