package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/internal/registry"
)

func TestCache_PutThenGetReturnsSameStatus(t *testing.T) {
	c := registry.NewCache(t.TempDir(), time.Hour, 8)
	c.Put("pypi", "requests", "exists")

	status, ok := c.Get("pypi", "requests")
	require.True(t, ok)
	assert.Equal(t, "exists", status)
}

func TestCache_MissingEntryIsNotFound(t *testing.T) {
	c := registry.NewCache(t.TempDir(), time.Hour, 8)
	_, ok := c.Get("pypi", "nonexistent")
	assert.False(t, ok)
}

func TestCache_ExpiredEntryIsNotFound(t *testing.T) {
	c := registry.NewCache(t.TempDir(), time.Nanosecond, 8)
	c.Put("npm", "left-pad", "not_found")
	time.Sleep(time.Millisecond)

	_, ok := c.Get("npm", "left-pad")
	assert.False(t, ok)
}

func TestCache_SurvivesAcrossInstancesViaDisk(t *testing.T) {
	dir := t.TempDir()
	c1 := registry.NewCache(dir, time.Hour, 8)
	c1.Put("crates", "serde", "exists")

	c2 := registry.NewCache(dir, time.Hour, 8)
	status, ok := c2.Get("crates", "serde")
	require.True(t, ok)
	assert.Equal(t, "exists", status)
}

func TestCache_EvictsLeastRecentlyUsedInMemoryEntry(t *testing.T) {
	c := registry.NewCache(t.TempDir(), time.Hour, 1)
	c.Put("pypi", "a", "exists")
	c.Put("pypi", "b", "exists")

	// "a" was evicted from the in-memory LRU but its disk file remains,
	// so Get still finds it by falling back to disk.
	status, ok := c.Get("pypi", "a")
	require.True(t, ok)
	assert.Equal(t, "exists", status)
}
