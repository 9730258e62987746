package router

import (
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/route"
)

// Releaser is implemented by content that holds resources which must be
// freed when the cache drops it.
type Releaser interface {
	Release()
}

// ContentCache keeps built screen content for recently shown routes.
type ContentCache struct {
	content map[route.Identity]any
	order   []route.Identity // tracks insertion order for LRU eviction
	maxSize int
}

func NewContentCache() *ContentCache {
	return NewContentCacheWithSize(constants.DefaultContentCacheSize)
}

func NewContentCacheWithSize(maxSize int) *ContentCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &ContentCache{
		content: make(map[route.Identity]any),
		order:   make([]route.Identity, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *ContentCache) Get(key route.Identity) (any, bool) {
	if content, exists := c.content[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return content, true
	}
	return nil, false
}

// Set stores content for key. Replacing an existing entry does not release
// the previous content; the caller still owns it.
func (c *ContentCache) Set(key route.Identity, content any) {
	// If key already exists, just update and move to end
	if _, exists := c.content[key]; exists {
		c.content[key] = content
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.content[key] = content
	c.order = append(c.order, key)
}

func (c *ContentCache) Len() int {
	return len(c.order)
}

// Retain drops every entry whose route is not in keep.
func (c *ContentCache) Retain(keep []route.Identity) {
	live := make(map[route.Identity]struct{}, len(keep))
	for _, id := range keep {
		live[id] = struct{}{}
	}
	order := c.order[:0]
	for _, key := range c.order {
		if _, ok := live[key]; ok {
			order = append(order, key)
			continue
		}
		release(c.content[key])
		delete(c.content, key)
	}
	c.order = order
}

func (c *ContentCache) moveToEnd(key route.Identity) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *ContentCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if content, exists := c.content[oldest]; exists {
		release(content)
		delete(c.content, oldest)
	}
}

// Purge releases and drops everything.
func (c *ContentCache) Purge() {
	for _, content := range c.content {
		release(content)
	}
	c.content = make(map[route.Identity]any)
	c.order = c.order[:0]
}

func release(content any) {
	if r, ok := content.(Releaser); ok {
		r.Release()
	}
}
