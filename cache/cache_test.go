package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")

	require.NoError(t, err)
	assert.NotNil(t, cache)

	testValue := "test string"
	cache.Set("test-key", testValue, int64(len(testValue)))

	// Wait a bit for the cache to process the set
	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	if value, found := cache.Get("test-key"); found {
		assert.Equal(t, testValue, value)
	} else {
		t.Error("Expected to find cached value")
	}
}

func TestCacheClear(t *testing.T) {
	cache, err := New[int](func(int) int64 { return 1 }, "Test Cache")
	require.NoError(t, err)

	cache.Set("key", 42, 1)
	cache.Wait()
	cache.Clear()

	_, found := cache.Get("key")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	cache, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	cache.Set("key1", "value", 5)
	cache.Wait()
	time.Sleep(10 * time.Millisecond)

	cache.Get("key1") // hit
	cache.Get("key2") // miss

	stats := cache.Stats()

	assert.Equal(t, "Test Cache", stats["cache_type"])
	assert.Contains(t, stats, "hits")
	assert.Contains(t, stats, "misses")
	assert.Contains(t, stats, "hit_rate")

	hitRate := stats["hit_rate"].(float64)
	assert.GreaterOrEqual(t, hitRate, 0.0)
	assert.LessOrEqual(t, hitRate, 100.0)
}
