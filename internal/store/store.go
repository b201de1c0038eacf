// Package store holds the per-course entity caches the console renders from.
package store

// Entity is anything addressable by an opaque server id.
type Entity interface {
	GetID() string
}

// Collection is an id-keyed set of entities that remembers display order.
// It is not safe for concurrent use; the owner serializes access.
type Collection[T Entity] struct {
	order []string
	items map[string]T
}

func NewCollection[T Entity](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.Replace(items)
	return c
}

// Replace drops every entity and loads items in the given order. Later
// duplicates of an id overwrite the earlier value but keep its position.
func (c *Collection[T]) Replace(items []T) {
	c.order = make([]string, 0, len(items))
	c.items = make(map[string]T, len(items))
	for _, item := range items {
		c.Upsert(item)
	}
}

// Upsert replaces the entity with the same id in place, or appends it.
// It reports whether the entity was new.
func (c *Collection[T]) Upsert(item T) bool {
	id := item.GetID()
	if _, ok := c.items[id]; ok {
		c.items[id] = item
		return false
	}
	c.items[id] = item
	c.order = append(c.order, id)
	return true
}

// Prepend inserts item at the front, or replaces it in place if present.
func (c *Collection[T]) Prepend(item T) bool {
	id := item.GetID()
	if _, ok := c.items[id]; ok {
		c.items[id] = item
		return false
	}
	c.items[id] = item
	c.order = append([]string{id}, c.order...)
	return true
}

func (c *Collection[T]) Remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *Collection[T]) Get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Len() int {
	return len(c.order)
}

// List returns a copy of the entities in display order.
func (c *Collection[T]) List() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Collection[T]) Clear() {
	c.Replace(nil)
}
