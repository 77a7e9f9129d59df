package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests control cache expiry without real timers.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestMemoryGetRespectsTTL(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	m := NewMemory(clock.now)
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), time.Minute)

	data, ok := m.Get(ctx, "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), data)

	// One nanosecond before expiry: still served.
	clock.advance(time.Minute - time.Nanosecond)
	_, ok = m.Get(ctx, "k", time.Minute)
	assert.True(t, ok)

	// Exactly at the TTL boundary the entry must not be served.
	clock.advance(time.Nanosecond)
	_, ok = m.Get(ctx, "k", time.Minute)
	assert.False(t, ok)
}

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	_, ok := m.Get(ctx, "missing", time.Minute)
	assert.False(t, ok)
	assert.False(t, m.Has(ctx, "missing", time.Minute))
}

func TestMemoryOverwrite(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	m := NewMemory(clock.now)
	ctx := context.Background()

	m.Set(ctx, "k", []byte("old"), time.Minute)
	clock.advance(30 * time.Second)
	m.Set(ctx, "k", []byte("new"), time.Minute)

	// Overwriting resets the entry's age.
	clock.advance(45 * time.Second)
	data, ok := m.Get(ctx, "k", time.Minute)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), data)
	assert.Equal(t, 1, m.Size())
}

func TestFetchInvokesProducerAtMostOnceWithinTTL(t *testing.T) {
	clock := &fakeClock{current: time.Unix(1700000000, 0)}
	m := NewMemory(clock.now)
	ctx := context.Background()

	calls := 0
	producer := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	first, err := Fetch(ctx, m, "op", time.Minute, producer)
	require.NoError(t, err)
	assert.Equal(t, "value", first)

	clock.advance(30 * time.Second)
	second, err := Fetch(ctx, m, "op", time.Minute, producer)
	require.NoError(t, err)
	assert.Equal(t, "value", second)
	assert.Equal(t, 1, calls)

	// Past the TTL the producer runs again.
	clock.advance(time.Minute)
	_, err = Fetch(ctx, m, "op", time.Minute, producer)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchKeysAreIndependent(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	a, err := Fetch(ctx, m, "tps-history-chainA-7", time.Minute, func(ctx context.Context) ([]int, error) {
		return []int{1}, nil
	})
	require.NoError(t, err)

	b, err := Fetch(ctx, m, "tps-history-chainB-7", time.Minute, func(ctx context.Context) ([]int, error) {
		return []int{2}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{2}, b)
}

func TestFetchProducerErrorStoresNothing(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	_, err := Fetch(ctx, m, "op", time.Minute, func(ctx context.Context) (string, error) {
		return "", assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, 0, m.Size())

	// Next call tries the producer again.
	calls := 0
	v, err := Fetch(ctx, m, "op", time.Minute, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 1, calls)
}
