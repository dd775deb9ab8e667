package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetFromCache(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("int", 42, 0)
	c.Set("str", "hello", 0)

	n, ok := GetFromCache[int](c, "int")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = GetFromCache[int](c, "str")
	assert.False(t, ok, "type mismatch must report not found")

	_, ok = GetFromCache[string](c, "missing")
	assert.False(t, ok)
}

func TestCacheTouch(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	assert.False(t, c.Touch("k", time.Minute))

	c.Set("k", "v", 20*time.Millisecond)
	assert.True(t, c.Touch("k", time.Hour))
	assert.Equal(t, 1, c.ItemCount())

	time.Sleep(40 * time.Millisecond)
	_, ok := c.Get("k")
	assert.True(t, ok, "touched item uses the new expiration")
}

func TestCacheOnEvicted(t *testing.T) {
	c := NewCache(time.Minute, 10*time.Millisecond)
	evicted := make(chan string, 1)
	c.OnEvicted(func(key string, _ interface{}) { evicted <- key })

	c.Set("k", "v", 5*time.Millisecond)

	select {
	case key := <-evicted:
		assert.Equal(t, "k", key)
	case <-time.After(time.Second):
		t.Fatal("expired item was not evicted")
	}
	assert.Equal(t, 0, c.ItemCount())
}

func TestNewCacheReturnsIndependentInstances(t *testing.T) {
	a := NewCache(time.Minute, time.Minute)
	b := NewCache(time.Minute, time.Minute)
	a.Set("k", 1, 0)

	_, ok := b.Get("k")
	assert.False(t, ok)
}
