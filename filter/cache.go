package filter

import (
	"container/list"
	"sync"
)

// lruCache keeps the most recently compiled projections
type lruCache struct {
	capacity int
	order    *list.List
	byExpr   map[string]*list.Element
	mu       sync.Mutex
}

type cached struct {
	expression string
	projection Projection
}

func newLRUCache(capacity int) *lruCache {
	return &lruCache{
		capacity: capacity,
		order:    list.New(),
		byExpr:   make(map[string]*list.Element, capacity),
	}
}

// Get returns the projection compiled for expression, if still cached
func (c *lruCache) Get(expression string) (Projection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.byExpr[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cached).projection, true
}

// Put stores a projection, evicting the least recently used one when full
func (c *lruCache) Put(expression string, p Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.byExpr[expression]; ok {
		el.Value.(*cached).projection = p
		c.order.MoveToFront(el)
		return
	}

	c.byExpr[expression] = c.order.PushFront(&cached{expression: expression, projection: p})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.byExpr, oldest.Value.(*cached).expression)
	}
}

func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byExpr = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

func (c *lruCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
