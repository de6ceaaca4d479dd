package callback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchInvokesRegisteredCallback(t *testing.T) {
	m := NewManager()
	var seen []any
	m.Register("onFieldFailed", func(_ context.Context, args ...any) error {
		seen = args
		return nil
	})

	err := m.Dispatch(context.Background(), "onFieldFailed", "age", "too young")
	require.NoError(t, err)
	assert.Equal(t, []any{"age", "too young"}, seen)
}

func TestDispatchUnknownCallbackFails(t *testing.T) {
	m := NewManager()
	err := m.Dispatch(context.Background(), "missing")
	require.Error(t, err)
}

func TestActiveCallbacksListsRegisteredNames(t *testing.T) {
	m := NewManager()
	m.Register("a", func(context.Context, ...any) error { return nil })
	m.Register("b", func(context.Context, ...any) error { return nil })

	assert.ElementsMatch(t, []string{"a", "b"}, m.ActiveCallbacks())
}

func TestDispatchNilRefIsNoop(t *testing.T) {
	m := NewManager()
	err := m.Dispatch(context.Background(), nil)
	require.NoError(t, err)
}

func TestDispatchInlineFuncInvokesDirectlyWithoutRegistration(t *testing.T) {
	m := NewManager()
	var seen []any
	fn := Func(func(_ context.Context, args ...any) error {
		seen = args
		return nil
	})

	err := m.Dispatch(context.Background(), fn, "inline")
	require.NoError(t, err)
	assert.Equal(t, []any{"inline"}, seen)
}
