// File: container/container.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owning indexable collection with signed indexing.
// Items live as long as the container does; a negative index counts from
// the end, and any out-of-range index yields nil instead of faulting.

package container

// Container owns a growable sequence of items accessed by signed index.
// The zero value is ready to use. Not safe for concurrent mutation.
type Container[T any] struct {
	items []*T
}

// Create appends a copy of v and returns the owned pointer.
func (c *Container[T]) Create(v T) *T {
	item := &v
	c.items = append(c.items, item)
	return item
}

// Append takes ownership of an existing pointer.
func (c *Container[T]) Append(item *T) *T {
	c.items = append(c.items, item)
	return item
}

// At returns the item at index i, counting from the end when i is
// negative: At(-1) is the last item. Returns nil out of bounds.
func (c *Container[T]) At(i int) *T {
	idx := i
	if i < 0 {
		idx = len(c.items) + i
	}
	if idx < 0 || idx >= len(c.items) {
		return nil
	}
	return c.items[idx]
}

// Len returns the number of owned items.
func (c *Container[T]) Len() int {
	return len(c.items)
}

// PopBack removes and returns the last item, nil when empty.
func (c *Container[T]) PopBack() *T {
	n := len(c.items)
	if n == 0 {
		return nil
	}
	item := c.items[n-1]
	c.items[n-1] = nil
	c.items = c.items[:n-1]
	return item
}

// Clear drops every owned item.
func (c *Container[T]) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
}

// All returns the owned items in insertion order. The returned slice is
// shared with the container; callers must not mutate it.
func (c *Container[T]) All() []*T {
	return c.items
}
