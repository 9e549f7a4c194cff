// File: bridge/scoped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped wrapper binding one registration's lifetime to its owner.
// Registers on construction, unregisters on Close/Reset. A registration has
// exactly one owner: do not copy a Scoped value; transfer ownership with
// Move or detach it with Release.

package bridge

import "github.com/momentics/cbridge/api"

// Scoped owns one registration in a registry. The zero value is invalid and
// safe to Reset/Close.
type Scoped[A, R any] struct {
	reg        *Registry[A, R]
	handle     api.Handle
	trampoline api.Fn[A, R]
}

// NewScoped registers fn against reg. If the registry is full (or fn is
// nil), the wrapper is still constructed but invalid; check Valid before
// handing Get's result to a host.
func NewScoped[A, R any](reg *Registry[A, R], fn api.Fn[A, R]) *Scoped[A, R] {
	s := &Scoped[A, R]{reg: reg}
	if reg == nil {
		return s
	}
	handle, trampoline, err := reg.Register(fn)
	if err == nil {
		s.handle = handle
		s.trampoline = trampoline
	}
	return s
}

// ScopedFor registers fn against the process-wide instance selected by
// (A, R, Tag, capacity).
func ScopedFor[A, R, Tag any](capacity int, fn api.Fn[A, R]) *Scoped[A, R] {
	return NewScoped(For[A, R, Tag](capacity), fn)
}

// Get returns the trampoline usable in a host API, or nil if invalid.
func (s *Scoped[A, R]) Get() api.Fn[A, R] {
	return s.trampoline
}

// Handle returns the owned handle, api.InvalidHandle if invalid.
func (s *Scoped[A, R]) Handle() api.Handle {
	return s.handle
}

// Valid reports whether the wrapper currently owns a registration.
func (s *Scoped[A, R]) Valid() bool {
	return s.handle != api.InvalidHandle
}

// Reset unregisters the owned registration early. Idempotent; the wrapper
// is invalid afterwards.
func (s *Scoped[A, R]) Reset() {
	if s.handle != api.InvalidHandle {
		s.reg.Unregister(s.handle)
		s.handle = api.InvalidHandle
		s.trampoline = nil
	}
}

// Close unregisters the owned registration. It exists so call sites can
// `defer scoped.Close()`; it never returns a non-nil error.
func (s *Scoped[A, R]) Close() error {
	s.Reset()
	return nil
}

// Release detaches the trampoline from lifetime management and returns it
// without unregistering. The caller takes over the registration; the
// wrapper is invalid afterwards and Close becomes a no-op.
func (s *Scoped[A, R]) Release() api.Fn[A, R] {
	trampoline := s.trampoline
	s.handle = api.InvalidHandle
	s.trampoline = nil
	return trampoline
}

// Move transfers ownership to a new wrapper and leaves the receiver
// invalid, so a later Close on the source unregisters nothing.
func (s *Scoped[A, R]) Move() *Scoped[A, R] {
	dst := &Scoped[A, R]{
		reg:        s.reg,
		handle:     s.handle,
		trampoline: s.trampoline,
	}
	s.handle = api.InvalidHandle
	s.trampoline = nil
	return dst
}
