package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ComputeFunc produces the value for a key on a cache miss. Returning an
// error leaves the cache untouched.
type ComputeFunc func(key string) (interface{}, error)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLCache is a process-wide key -> value cache where entries expire after a
// fixed time-to-live. Recomputation of an expired key is de-duplicated with
// singleflight, so concurrent requests for the same key share one compute.
type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group

	// now is swappable for tests.
	now func() time.Time
}

// NewTTLCache creates a TTLCache with the given time-to-live.
func NewTTLCache(ttl time.Duration) *TTLCache {
	return &TTLCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the live value for key, if present and not expired.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// GetOrCompute returns the cached value for key, computing and storing it if
// the entry is absent or expired.
func (c *TTLCache) GetOrCompute(key string, compute ComputeFunc) (interface{}, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another flight may have filled the entry while we waited.
		if value, ok := c.Get(key); ok {
			return value, nil
		}
		value, err := compute(key)
		if err != nil {
			return nil, err
		}
		c.set(key, value)
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// GetOrComputeBatch resolves each key through GetOrCompute and returns a map
// of the successful ones. Keys whose compute fails (e.g. unknown venue ids)
// are silently omitted.
func (c *TTLCache) GetOrComputeBatch(keys []string, compute ComputeFunc) map[string]interface{} {
	results := make(map[string]interface{}, len(keys))
	for _, key := range keys {
		value, err := c.GetOrCompute(key, compute)
		if err != nil {
			continue
		}
		results[key] = value
	}
	return results
}

// Invalidate drops the entry for key, if any.
func (c *TTLCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of stored entries, expired ones included.
func (c *TTLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *TTLCache) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}
