package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllRunsInReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()

	var order []string
	c.AddNamed("pool", func(context.Context) error {
		order = append(order, "pool")
		return nil
	})
	c.AddNamed("server", func(context.Context) error {
		order = append(order, "server")
		return nil
	})

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"server", "pool"}, order)

	select {
	case <-c.Done():
	default:
		t.Fatal("done channel is not closed")
	}
}

func TestCloseAllJoinsErrorsAndRunsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	errBoom := errors.New("boom")

	calls := 0
	c.AddNamed("broken", func(context.Context) error {
		calls++
		return errBoom
	})
	c.AddNamed("fine", func(context.Context) error {
		calls++
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "broken")

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestCloseAllSkipsHooksAfterContextDone(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("late", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
