// Package cache bounds the set of rendered markdown previews kept in
// memory. Rendering goes through glamour and is expensive enough to be
// worth reusing while the user flips between tabs.
package cache

import (
	"container/list"
	"fmt"
)

// Key identifies one rendered preview. Revision changes whenever the note
// content or the render width does, so stale renders simply miss.
type Key struct {
	NoteID   string
	Revision string
}

// RevisionFor derives a revision tag from the inputs that affect rendering.
func RevisionFor(updatedAt string, width int, style string) string {
	return fmt.Sprintf("%s|%d|%s", updatedAt, width, style)
}

// PreviewCache is a fixed-capacity LRU over rendered previews.
type PreviewCache struct {
	size      int
	evictList *list.List
	items     map[Key]*list.Element
}

type entry struct {
	key   Key
	value string
}

func NewPreviewCache(size int) *PreviewCache {
	return &PreviewCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[Key]*list.Element),
	}
}

func (c *PreviewCache) Get(key Key) (string, bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return "", false
}

func (c *PreviewCache) Put(key Key, rendered string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = rendered
		return
	}

	ele := c.evictList.PushFront(&entry{key, rendered})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Invalidate drops every cached render for the note, regardless of revision.
func (c *PreviewCache) Invalidate(noteID string) {
	for key, ele := range c.items {
		if key.NoteID == noteID {
			c.removeElement(ele)
		}
	}
}

func (c *PreviewCache) Len() int { return c.evictList.Len() }

func (c *PreviewCache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
