package measuretext

import (
	"container/list"
	"sync"

	"golang.org/x/image/font"
)

// faceLRUEntry is one cached face keyed by its owning Font's cacheKey.
type faceLRUEntry struct {
	key  string
	face font.Face
}

// faceLRU is a thread-safe LRU cache of font.Face values, adapted
// directly from the teacher's internal/render/font_lru.go: same
// map-plus-list shape, kept mutex-protected since, unlike the
// single-threaded-per-call layout caches in package cache, a text
// Measurer may be shared across concurrent layout passes.
type faceLRU struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func newFaceLRU(capacity int) *faceLRU {
	if capacity < 1 {
		capacity = 1
	}
	return &faceLRU{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *faceLRU) get(key string) (font.Face, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*faceLRUEntry).face, true
	}
	return nil, false
}

func (c *faceLRU) put(key string, face font.Face) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.MoveToBack(el)
		el.Value.(*faceLRUEntry).face = face
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			ent := oldest.Value.(*faceLRUEntry)
			if closer, ok := ent.face.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
			delete(c.items, ent.key)
			c.order.Remove(oldest)
		}
	}

	el := c.order.PushBack(&faceLRUEntry{key: key, face: face})
	c.items[key] = el
}

func (c *faceLRU) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.items {
		ent := el.Value.(*faceLRUEntry)
		if closer, ok := ent.face.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
	c.items = make(map[string]*list.Element)
	c.order.Init()
}

var faceCache = newFaceLRU(32)

// SetFaceCacheCapacity changes the max number of cached font faces.
func SetFaceCacheCapacity(capacity int) {
	faceCache = newFaceLRU(capacity)
}

// ClearFaceCache releases all cached font.Face objects.
func ClearFaceCache() {
	faceCache.clear()
}
