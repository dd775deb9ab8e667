package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache interface {
	Set(key string, value interface{}, duration time.Duration)
	Get(key string) (interface{}, bool)
	// Touch re-sets an existing key so its expiration starts over.
	Touch(key string, duration time.Duration) bool
	ItemCount() int
	// OnEvicted registers f to run after an item is removed on expiry.
	OnEvicted(f func(key string, value interface{}))
}

type goCache struct {
	internal *cache.Cache
}

// NewCache returns a new Cache instance with default expiration and cleanup interval
func NewCache(defaultExpiration, cleanupInterval time.Duration) Cache {
	return &goCache{
		internal: cache.New(defaultExpiration, cleanupInterval),
	}
}

func (c *goCache) Set(key string, value interface{}, duration time.Duration) {
	c.internal.Set(key, value, duration)
}

func (c *goCache) Get(key string) (interface{}, bool) {
	return c.internal.Get(key)
}

func (c *goCache) Touch(key string, duration time.Duration) bool {
	val, found := c.internal.Get(key)
	if !found {
		return false
	}
	c.internal.Set(key, val, duration)
	return true
}

func (c *goCache) OnEvicted(f func(key string, value interface{})) {
	c.internal.OnEvicted(f)
}

func (c *goCache) ItemCount() int {
	return c.internal.ItemCount()
}

// GetFromCache returns the typed value stored at key.
func GetFromCache[T any](c Cache, key string) (T, bool) {
	var zero T
	val, found := c.Get(key)
	if !found {
		return zero, false
	}
	typedVal, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typedVal, true
}
