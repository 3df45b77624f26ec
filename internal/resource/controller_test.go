package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	require.NoError(t, c.WaitMemory(t.Context(), 1<<40))
	require.NoError(t, c.WaitMemory(t.Context(), 1000))
	assert.Equal(t, int64(1<<40+1000), c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())

	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(1000), c.MemoryUsage())
}

func TestController_WaitMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})
	assert.Equal(t, int64(100), c.MemoryLimit())

	// Larger than the whole budget never fits.
	err := c.WaitMemory(t.Context(), 101)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

	require.NoError(t, c.WaitMemory(t.Context(), 80))

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	err = c.WaitMemory(ctx, 30)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int64(80), c.MemoryUsage())

	done := make(chan error, 1)
	go func() { done <- c.WaitMemory(t.Context(), 30) }()
	c.ReleaseMemory(80)
	require.NoError(t, <-done)
	assert.Equal(t, int64(30), c.MemoryUsage())
}

func TestController_Concurrency(t *testing.T) {
	c := NewController(Config{MaxConcurrentRuns: 2})

	require.NoError(t, c.AcquireRun(t.Context()))
	require.NoError(t, c.AcquireRun(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireRun(ctx), context.DeadlineExceeded)

	c.ReleaseRun()
	require.NoError(t, c.AcquireRun(t.Context()))
}

func TestController_DefaultsToOneRun(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireRun(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, c.AcquireRun(ctx))
}

func TestController_StartRate(t *testing.T) {
	c := NewController(Config{RunsPerSecond: 0.001, Burst: 2})

	require.NoError(t, c.WaitStart(t.Context()))
	require.NoError(t, c.WaitStart(t.Context()))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, c.WaitStart(ctx))
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.WaitMemory(t.Context(), 10))
	c.ReleaseMemory(10)
	assert.Zero(t, c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())

	require.NoError(t, c.AcquireRun(t.Context()))
	c.ReleaseRun()

	require.NoError(t, c.WaitStart(t.Context()))
}
