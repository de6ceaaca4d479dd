// Package callback dispatches user-supplied completion callbacks, registered
// by name (e.g. "onRecordComplete") or passed inline. The engine dispatches
// one callback reference per validated record, passing the record's
// *validresult.Result. It mirrors pkg/helper's registry shape but narrowed to an unordered set,
// since callbacks have no categories to browse.
package callback

import (
	"context"
	"sync"

	"github.com/Fmanuel809/validra-sub002/pkg/verrors"
)

// Func is a user-supplied callback. args is whatever the call site passes
// (a field name, a Diagnostic, a Result — callers agree on the shape by
// convention, same as the helper Resolver's positional args).
type Func func(ctx context.Context, args ...any) error

// Manager holds named callbacks registered for the lifetime of an engine.
type Manager struct {
	mu        sync.RWMutex
	callbacks map[string]Func
}

// NewManager creates an empty callback manager.
func NewManager() *Manager {
	return &Manager{callbacks: make(map[string]Func)}
}

// Register adds or replaces a named callback.
func (m *Manager) Register(name string, fn Func) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks[name] = fn
}

// Dispatch invokes ref, which may be nil (no-op, the common case when a
// caller passes no callback reference at all), a string (looked up in the
// registry, failing with verrors.CallbackNotFound on miss), or a Func value
// (invoked directly without needing prior registration). Any other type is
// a configuration error, also reported as CallbackNotFound.
func (m *Manager) Dispatch(ctx context.Context, ref any, args ...any) error {
	switch v := ref.(type) {
	case nil:
		return nil
	case string:
		m.mu.RLock()
		fn, ok := m.callbacks[v]
		m.mu.RUnlock()

		if !ok {
			return verrors.CallbackNotFound("callback \"" + v + "\" not found")
		}
		return fn(ctx, args...)
	case Func:
		return v(ctx, args...)
	default:
		return verrors.CallbackNotFound("callback reference must be a string or Func")
	}
}

// ActiveCallbacks returns the names of all registered callbacks.
func (m *Manager) ActiveCallbacks() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.callbacks))
	for name := range m.callbacks {
		names = append(names, name)
	}
	return names
}
