// Package cache implements the per-node layout cache: a small
// capacity-bounded LRU of size results keyed by (request size, max
// content flag, parent inner size), plus a single position slot.
//
// The LRU itself follows the same container/list + map shape as the
// teacher repo's font face cache (internal/render/font_lru.go): a map for
// O(1) lookup and a doubly linked list tracking recency for O(1)
// eviction. Layout is single-threaded per call (spec §5), so unlike the
// font cache this one carries no mutex.
package cache

import "container/list"

// Key identifies one cached size result. All components must already be
// projected through numeric.Num.Hashable by the caller (engine), which is
// why every field here is a plain uint64: the cache itself is agnostic to
// which concrete numeric type L produced them.
type Key struct {
	Kind                 uint8
	ReqW, ReqH           uint64
	MaxContentW          uint64
	MaxContentH          uint64
	ParentInnerW         uint64
	ParentInnerH         uint64
}

type entry[V any] struct {
	key   Key
	value V
}

// Cache is a node's layout cache: a bounded LRU of size results plus one
// position slot. The zero value is not usable; construct with New.
type Cache[V any] struct {
	capacity int
	items    map[Key]*list.Element
	order    *list.List

	parentSizeAffected bool
	dirty              bool

	hasPosition bool
	positionKey Key
	position    V
}

// New constructs a Cache with the given capacity. Spec §4.3 fixes this at
// 8 per node; capacity is still a parameter so tests can exercise
// eviction with a smaller number without growing a tree of 9+ nodes.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		items:    make(map[Key]*list.Element),
		order:    list.New(),
		dirty:    true,
	}
}

// SetParentSizeAffected records whether this node's style has any Percent
// length depending on the parent's inner size (computed once from style,
// not re-derived per call). When false, Get/Put force the parent-inner
// component of the key to zero so results are reused across parents.
func (c *Cache[V]) SetParentSizeAffected(affected bool) {
	c.parentSizeAffected = affected
}

func (c *Cache[V]) normalize(k Key) Key {
	if !c.parentSizeAffected {
		k.ParentInnerW, k.ParentInnerH = 0, 0
	}
	return k
}

// Get looks up a cached size result. A hit moves the entry to the back of
// the recency list (most-recently-used).
func (c *Cache[V]) Get(k Key) (V, bool) {
	var zero V
	k = c.normalize(k)
	if el, ok := c.items[k]; ok {
		c.order.MoveToBack(el)
		return el.Value.(*entry[V]).value, true
	}
	return zero, false
}

// Put stores a size result under k, evicting the least-recently-used
// entry if the cache is at capacity. Re-storing under additional keys
// (e.g. the concrete axis a result was computed from, per spec §4.3) is
// the caller's responsibility: call Put once per key it wants to hit on.
func (c *Cache[V]) Put(k Key, v V) {
	k = c.normalize(k)
	if el, ok := c.items[k]; ok {
		c.order.MoveToBack(el)
		el.Value.(*entry[V]).value = v
		return
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			delete(c.items, oldest.Value.(*entry[V]).key)
			c.order.Remove(oldest)
		}
	}
	el := c.order.PushBack(&entry[V]{key: k, value: v})
	c.items[k] = el
}

// GetPosition returns the single cached position result for k, if any.
func (c *Cache[V]) GetPosition(k Key) (V, bool) {
	var zero V
	if !c.hasPosition {
		return zero, false
	}
	if c.normalize(k) != c.positionKey {
		return zero, false
	}
	return c.position, true
}

// PutPosition overwrites the single position slot. An element has at
// most one final position per parent layout pass, so unlike size results
// there is nothing to evict.
func (c *Cache[V]) PutPosition(k Key, v V) {
	c.positionKey = c.normalize(k)
	c.position = v
	c.hasPosition = true
}

// MarkDirty clears both caches and sets the dirty flag. It affects this
// cache only; nothing propagates the flag to ancestor nodes' caches.
func (c *Cache[V]) MarkDirty() {
	c.dirty = true
	c.items = make(map[Key]*list.Element)
	c.order.Init()
	c.hasPosition = false
}

// ClearDirty marks the cache clean after a fresh layout has been written.
func (c *Cache[V]) ClearDirty() {
	c.dirty = false
}

// Dirty reports whether this node must be recomputed before its cached
// results can be trusted.
func (c *Cache[V]) Dirty() bool {
	return c.dirty
}
