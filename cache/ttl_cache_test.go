package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetOrCompute_CachesValue(t *testing.T) {
	c := NewTTLCache(time.Minute)

	calls := 0
	compute := func(key string) (interface{}, error) {
		calls++
		return "value-" + key, nil
	}

	v1, err := c.GetOrCompute("v1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "value-v1", v1)

	v2, err := c.GetOrCompute("v1", compute)
	assert.NoError(t, err)
	assert.Equal(t, "value-v1", v2)

	assert.Equal(t, 1, calls, "second lookup must hit the cache")
}

func TestTTLCache_ExpiredEntryIsRecomputed(t *testing.T) {
	c := NewTTLCache(time.Minute)

	current := time.Date(2025, 1, 6, 22, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	calls := 0
	compute := func(key string) (interface{}, error) {
		calls++
		return calls, nil
	}

	first, _ := c.GetOrCompute("v1", compute)
	assert.Equal(t, 1, first)

	// Within TTL: still cached.
	current = current.Add(30 * time.Second)
	second, _ := c.GetOrCompute("v1", compute)
	assert.Equal(t, 1, second)

	// Past TTL: recomputed.
	current = current.Add(2 * time.Minute)
	third, _ := c.GetOrCompute("v1", compute)
	assert.Equal(t, 2, third)
}

func TestTTLCache_ComputeErrorNotCached(t *testing.T) {
	c := NewTTLCache(time.Minute)

	boom := errors.New("unknown venue")
	_, err := c.GetOrCompute("bad", func(string) (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	// A later compute can still succeed.
	v, err := c.GetOrCompute("bad", func(string) (interface{}, error) {
		return 7, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestTTLCache_GetOrComputeBatch_OmitsFailedKeys(t *testing.T) {
	c := NewTTLCache(time.Minute)

	known := map[string]bool{"v1": true, "v3": true}
	results := c.GetOrComputeBatch([]string{"v1", "v2", "v3", "v4"}, func(key string) (interface{}, error) {
		if !known[key] {
			return nil, errors.New("unknown venue")
		}
		return "busy-" + key, nil
	})

	assert.Len(t, results, 2)
	assert.Equal(t, "busy-v1", results["v1"])
	assert.Equal(t, "busy-v3", results["v3"])
	_, present := results["v2"]
	assert.False(t, present)
}

func TestTTLCache_ConcurrentRecomputeIsSingleFlight(t *testing.T) {
	c := NewTTLCache(time.Minute)

	var calls int64
	compute := func(key string) (interface{}, error) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return "shared", nil
	}

	const goroutines = 32
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			v, err := c.GetOrCompute("hot", compute)
			assert.NoError(t, err)
			assert.Equal(t, "shared", v)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&calls),
		"concurrent misses for one key must share a single compute")
}

func TestTTLCache_Invalidate(t *testing.T) {
	c := NewTTLCache(time.Minute)

	calls := 0
	compute := func(string) (interface{}, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrCompute("v1", compute)
	c.Invalidate("v1")
	v, _ := c.GetOrCompute("v1", compute)

	assert.Equal(t, 2, v)
}
