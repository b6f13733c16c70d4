package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_SleepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := NewRealClock().Sleep(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRealClock_ShortSleep(t *testing.T) {
	require.NoError(t, NewRealClock().Sleep(context.Background(), time.Millisecond))
	require.NoError(t, NewRealClock().Sleep(context.Background(), 0))
}

func TestSimulatedClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSimulatedClock(start)

	require.NoError(t, c.Sleep(context.Background(), 2*time.Hour))
	require.NoError(t, c.Sleep(context.Background(), 30*time.Second))

	assert.Equal(t, start.Add(2*time.Hour+30*time.Second), c.Now())
	assert.Equal(t, []time.Duration{2 * time.Hour, 30 * time.Second}, c.Sleeps())
}

func TestSimulatedClock_OnSleepCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewSimulatedClockNow()
	c.OnSleep(func(time.Duration) { cancel() })

	err := c.Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)

	err = c.Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, c.Sleeps(), 1)
}
