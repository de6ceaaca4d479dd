// Package validresult holds the outcome of validating a single record.
package validresult

import "github.com/Fmanuel809/validra-sub002/pkg/diagnose"

// Result is the outcome of validating one record: whether it passed, and
// every failed rule's diagnostic grouped by field.
type Result struct {
	IsValid bool
	Data    map[string]any
	Errors  map[string]diagnose.List
}

// New creates an empty, passing Result over data.
func New(data map[string]any) *Result {
	return &Result{IsValid: true, Data: data, Errors: make(map[string]diagnose.List)}
}

// Add attaches a diagnostic to the result and marks it invalid.
func (r *Result) Add(d *diagnose.Diagnostic) {
	r.IsValid = false
	r.Errors[d.Field] = append(r.Errors[d.Field], d)
}

// ErrorCount returns the total number of diagnostics across all fields.
func (r *Result) ErrorCount() int {
	n := 0
	for _, list := range r.Errors {
		n += len(list)
	}
	return n
}

// FieldErrors returns the diagnostics for one field, or nil if it has none.
func (r *Result) FieldErrors(field string) diagnose.List {
	return r.Errors[field]
}
