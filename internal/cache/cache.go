package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// DefaultTTL is the freshness window for most datasets. Health probes use a
// much shorter window; TTLs are chosen per call site, not globally.
const (
	DefaultTTL = 15 * time.Minute
	HealthTTL  = 30 * time.Second
)

// Store is a keyed byte cache. Entries are only ever overwritten by a fresh
// fetch under the same key; expiry is passive.
type Store interface {
	Get(ctx context.Context, key string, ttl time.Duration) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Has(ctx context.Context, key string, ttl time.Duration) bool
}

type entry struct {
	data     []byte
	storedAt time.Time
}

// Memory is the default process-wide in-memory cache. The clock is injected
// so tests can control expiry without real timers.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get returns the entry for key if it is strictly younger than ttl.
func (m *Memory) Get(_ context.Context, key string, ttl time.Duration) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.storedAt) >= ttl {
		return nil, false
	}
	return e.data, true
}

func (m *Memory) Set(_ context.Context, key string, data []byte, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{data: data, storedAt: m.now()}
}

func (m *Memory) Has(ctx context.Context, key string, ttl time.Duration) bool {
	_, ok := m.Get(ctx, key, ttl)
	return ok
}

// Size returns the number of stored entries, expired ones included.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

// Fetch serves the cached value under key when fresh, otherwise invokes
// producer, stores its result and returns it. A producer error is returned
// as-is and nothing is stored, so a stale-but-present entry is never
// replaced by a failure.
func Fetch[T any](ctx context.Context, s Store, key string, ttl time.Duration, producer func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok := s.Get(ctx, key, ttl); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		// Undecodable entry: treat as a miss and refetch.
	}

	value, err := producer(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if raw, err := json.Marshal(value); err == nil {
		s.Set(ctx, key, raw, ttl)
	}

	return value, nil
}
