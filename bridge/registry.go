// File: bridge/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle-based callback registry over a fixed-capacity slot pool.
// Each slot is permanently bound to one trampoline func value created at
// registry construction; registration fills a slot and hands out its
// trampoline, unregistration empties it and leaves the trampoline inert.

package bridge

import (
	"sync"

	"github.com/momentics/cbridge/api"
)

// slot holds one registration: the bridged closure and its owning handle.
// A nil closure marks the slot free.
type slot[A, R any] struct {
	fn     api.Fn[A, R]
	handle api.Handle
}

// Registry is a thread-safe, fixed-capacity callback registry for one
// bridged signature func(A) R. Register/Unregister take an exclusive lock
// over a bounded slot scan; trampoline invocation takes a shared lock only
// long enough to copy the current closure, then calls it unlocked.
type Registry[A, R any] struct {
	mu          sync.RWMutex
	slots       []slot[A, R]
	trampolines []api.Fn[A, R]
	nextHandle  api.Handle
}

// NewRegistry creates a standalone registry with the given capacity.
// Non-positive capacity falls back to DefaultCapacity. Most callers should
// use For or Default instead, which return process-wide instances.
func NewRegistry[A, R any](capacity int) *Registry[A, R] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Registry[A, R]{
		slots:       make([]slot[A, R], capacity),
		trampolines: make([]api.Fn[A, R], capacity),
		nextHandle:  api.InvalidHandle + 1,
	}
	// One trampoline per slot, closing over nothing but its index. The
	// whole table exists before any registration so addresses can be
	// handed out immediately and never change.
	for i := range r.trampolines {
		index := i
		r.trampolines[i] = func(arg A) R {
			return r.invoke(index, arg)
		}
	}
	return r
}

// invoke is the trampoline body for one slot index. It copies the current
// closure under the shared lock and calls it with no lock held, so a
// closure may itself register or unregister callbacks (including its own
// handle) without deadlocking, and a concurrent unregistration can never
// invalidate what an in-flight call is using.
func (r *Registry[A, R]) invoke(index int, arg A) R {
	r.mu.RLock()
	fn := r.slots[index].fn
	r.mu.RUnlock()

	if fn != nil {
		return fn(arg)
	}
	// Dead slot: foreign code may keep calling a stale trampoline.
	var zero R
	return zero
}

// Register stores fn in the first free slot and returns the assigned handle
// together with that slot's trampoline. Returns api.ErrRegistryFull when
// every slot is occupied; no slot is mutated in that case. Handles are
// strictly increasing and never reused for the life of the registry.
func (r *Registry[A, R]) Register(fn api.Fn[A, R]) (api.Handle, api.Fn[A, R], error) {
	if fn == nil {
		return api.InvalidHandle, nil, api.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if r.slots[i].fn == nil {
			handle := r.nextHandle
			r.nextHandle++
			r.slots[i].fn = fn
			r.slots[i].handle = handle
			return handle, r.trampolines[i], nil
		}
	}
	return api.InvalidHandle, nil, api.ErrRegistryFull
}

// Unregister frees the slot owned by handle. Returns false for
// api.InvalidHandle, for handles never issued by this registry, and for
// handles already unregistered; calling it twice is safe.
func (r *Registry[A, R]) Unregister(handle api.Handle) bool {
	if handle == api.InvalidHandle {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		if r.slots[i].handle == handle && r.slots[i].fn != nil {
			r.slots[i].fn = nil
			r.slots[i].handle = api.InvalidHandle
			return true
		}
	}
	return false
}

// UnregisterAll clears every slot. Trampolines already handed to foreign
// callers become inert rather than dangling.
func (r *Registry[A, R]) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.slots {
		r.slots[i].fn = nil
		r.slots[i].handle = api.InvalidHandle
	}
}

// Size returns the number of occupied slots.
func (r *Registry[A, R]) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for i := range r.slots {
		if r.slots[i].fn != nil {
			count++
		}
	}
	return count
}

// Capacity returns the fixed slot count.
func (r *Registry[A, R]) Capacity() int {
	return len(r.slots)
}

// TrampolineFor returns the fixed trampoline bound to the given slot index,
// or nil if index is out of range. The result is constant for a given index
// and remains callable after the slot is freed.
func (r *Registry[A, R]) TrampolineFor(index int) api.Fn[A, R] {
	if index < 0 || index >= len(r.trampolines) {
		return nil
	}
	return r.trampolines[index]
}
