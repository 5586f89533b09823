// Package cache keeps a small LRU of rendered note previews so scrolling
// back to a note does not re-run the markdown renderer.
package cache

import (
	"container/list"
	"fmt"
	"time"
)

type Cache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

func New(size int) *Cache {
	return &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Key builds a cache key that changes whenever the note content or the
// render width changes, so a stale render can never be served.
func Key(id string, updatedAt time.Time, width int) string {
	return fmt.Sprintf("%s|%d|%d", id, updatedAt.UnixNano(), width)
}

func (c *Cache) Get(key string) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *Cache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *Cache) Len() int {
	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
