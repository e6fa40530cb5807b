package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// sweepInterval is the minimum time between expiry sweeps run by Set.
const sweepInterval = time.Minute

// MemoryCache keeps entries in process memory. The server uses it when no
// Redis or MongoDB backend is configured. Expired entries are dropped on read
// and by a periodic sweep on write, so keys that are never read again do not
// accumulate.
type MemoryCache struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	nextSweep time.Time
	now       func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get returns a copy of the stored value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	now := c.now()
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if e.expired(now) {
		c.mu.Lock()
		// A concurrent Set may have replaced the entry since the read.
		if cur, ok := c.entries[key]; ok && cur.expired(now) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(e.data), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	now := c.now()
	e := memoryEntry{data: slices.Clone(data)}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.sweepLocked(now)
	c.mu.Unlock()
	return nil
}

// sweepLocked drops expired entries at most once per sweepInterval.
// c.mu must be held for writing.
func (c *MemoryCache) sweepLocked(now time.Time) {
	if now.Before(c.nextSweep) {
		return
	}
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
		}
	}
	c.nextSweep = now.Add(sweepInterval)
}

func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries. Entries that expired since the
// last read or sweep are still counted.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) Close() error { return nil }

var _ Cache = (*MemoryCache)(nil)
