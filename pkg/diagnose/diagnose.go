// Package diagnose normalises a helper's outcome — fail, type mismatch, or
// a panic the engine recovered as an error — into a Diagnostic the engine
// can attach to a validation result. It follows a builder-method style, narrowed to two
// kinds: a failed helper check, and a helper given a value it cannot reason
// about.
package diagnose

import "fmt"

// Kind distinguishes why a rule failed to pass.
type Kind string

const (
	// KindHelperFailure means the helper ran and returned false.
	KindHelperFailure Kind = "helper_failure"
	// KindTypeMismatch means the field value's shape didn't fit what the
	// helper expects (e.g. "gt" given a string).
	KindTypeMismatch Kind = "type_mismatch"
)

// Diagnostic is one failed rule's explanation, attached to a record's
// ValidationResult under its field name.
type Diagnostic struct {
	Field   string
	Op      string
	Kind    Kind
	Message string
	Details map[string]any
}

// New creates a Diagnostic with the required fields.
func New(field, op string, kind Kind, message string) *Diagnostic {
	return &Diagnostic{Field: field, Op: op, Kind: kind, Message: message}
}

// WithDetail attaches one piece of structured context to the diagnostic.
func (d *Diagnostic) WithDetail(key string, value any) *Diagnostic {
	if d.Details == nil {
		d.Details = make(map[string]any)
	}
	d.Details[key] = value
	return d
}

// String renders a human-readable line, e.g. "[type_mismatch] age.gt: ...".
func (d *Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s.%s: %s", d.Kind, d.Field, d.Op, d.Message)
}

// HelperFailure builds the Diagnostic for a helper that ran cleanly and
// returned false, optionally negated by the rule.
func HelperFailure(field, op string, negative bool) *Diagnostic {
	msg := fmt.Sprintf("field %q failed rule %q", field, op)
	if negative {
		msg = fmt.Sprintf("field %q unexpectedly passed negated rule %q", field, op)
	}
	return New(field, op, KindHelperFailure, msg)
}

// TypeMismatch builds the Diagnostic for a helper that could not evaluate
// the field's value because of its shape, surfacing the resolver's error
// as structured detail rather than aborting validation.
func TypeMismatch(field, op string, cause error) *Diagnostic {
	d := New(field, op, KindTypeMismatch, fmt.Sprintf("field %q is not a valid operand for rule %q: %s", field, op, cause))
	return d.WithDetail("cause", cause.Error())
}

// List is a slice of diagnostics with teacher-style query helpers.
type List []*Diagnostic

// ByField returns diagnostics for one field.
func (l List) ByField(field string) List {
	out := make(List, 0, len(l))
	for _, d := range l {
		if d.Field == field {
			out = append(out, d)
		}
	}
	return out
}

// ByKind returns diagnostics of one kind.
func (l List) ByKind(kind Kind) List {
	out := make(List, 0, len(l))
	for _, d := range l {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// CountByField returns a map of field name to diagnostic count.
func (l List) CountByField() map[string]int {
	counts := make(map[string]int)
	for _, d := range l {
		counts[d.Field]++
	}
	return counts
}
