package recordsource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSourceYieldsInOrderThenExhausts(t *testing.T) {
	src := FromSlice([]Record{{"a": 1}, {"a": 2}})
	ctx := context.Background()

	rec, ok, err := src.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, rec["a"])

	rec, ok, err = src.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, rec["a"])

	_, ok, err = src.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChanSourceYieldsUntilClosed(t *testing.T) {
	ch := make(chan Record, 2)
	ch <- Record{"a": 1}
	ch <- Record{"a": 2}
	close(ch)

	src := FromChan(ch)
	ctx := context.Background()

	count := 0
	for {
		_, ok, err := src.Next(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 2, count)
}

func TestChanSourceRespectsCancellation(t *testing.T) {
	ch := make(chan Record)
	src := FromChan(ch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := src.Next(ctx)
	require.Error(t, err)
	assert.False(t, ok)
}
