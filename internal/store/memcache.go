package store

import "sync"

// memCache is the in-process implementation of [Cache]: a plain map under
// an RWMutex. Entries live until overwritten or deleted; the only keys
// ever stored are "user-<id>" and "questions-<id>" records, both of which
// are refreshed on every write path.
type memCache struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewMemCache constructs an empty in-process [Cache].
func NewMemCache() Cache {
	return &memCache{
		items: make(map[string]any),
	}
}

func (c *memCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.items[key]
	return value, ok
}

func (c *memCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = value
}

func (c *memCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}
