// Package verrors defines the validation engine's typed error kinds.
//
// Configuration errors (UnknownHelper, InvalidRule, HelperNotFound,
// CallbackNotFound, InvalidInput, AsyncHelperInSync) are fatal and surface to
// the caller as regular Go errors. Data-quality failures (HelperFailure,
// TypeMismatch) never reach this package as errors returned from engine
// methods — they are accumulated into diagnostics on the result instead; see
// pkg/diagnose.
package verrors

import "fmt"

// Kind identifies a class of engine error.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindUnknownHelper     Kind = "unknown_helper"
	KindInvalidRule       Kind = "invalid_rule"
	KindHelperNotFound    Kind = "helper_not_found"
	KindCallbackNotFound  Kind = "callback_not_found"
	KindAsyncHelperInSync Kind = "async_helper_in_sync"
)

// Error is the concrete type behind every error this package returns.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target shares this error's Kind, so callers can do
// errors.Is(err, verrors.InvalidInput("")) without caring about Message/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// InvalidInput reports that the record passed to Validate/ValidateAsync is
// not an object/mapping.
func InvalidInput(msg string) *Error { return newErr(KindInvalidInput, msg) }

// UnknownHelper reports that a rule references an operator the helper
// registry does not know, raised at compile time.
func UnknownHelper(msg string) *Error { return newErr(KindUnknownHelper, msg) }

// InvalidRule reports a malformed rule (missing required parameter, etc.),
// raised at compile time.
func InvalidRule(msg string) *Error { return newErr(KindInvalidRule, msg) }

// HelperNotFound reports that Registry.Resolve was called with an unknown
// helper name.
func HelperNotFound(msg string) *Error { return newErr(KindHelperNotFound, msg) }

// CallbackNotFound reports that Validate was called with a string callback
// reference that is not registered.
func CallbackNotFound(msg string) *Error { return newErr(KindCallbackNotFound, msg) }

// AsyncHelperInSync reports that the synchronous Validate path encountered a
// compiled rule backed by an async helper.
func AsyncHelperInSync(msg string) *Error { return newErr(KindAsyncHelperInSync, msg) }

// WithCause returns a copy of e with Cause set, for wrapping an underlying
// error while preserving the Kind.
func (e *Error) WithCause(cause error) *Error {
	cp := *e
	cp.Cause = cause
	return &cp
}
