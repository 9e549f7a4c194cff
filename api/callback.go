// File: api/callback.go
// Package api defines the callback bridging contract types.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Handle is an opaque token referring to one registered callback.
// Handle values are assigned from a strictly increasing counter and are
// never reused within a registry instance, so a stale handle is detected
// as "not found" rather than silently hitting a later registration.
type Handle uint32

// InvalidHandle is the reserved zero handle. It never refers to a
// registration.
const InvalidHandle Handle = 0

// Valid reports whether h could refer to a registration.
func (h Handle) Valid() bool { return h != InvalidHandle }

// Fn is the bridged callback signature. A registry instance is fixed to one
// argument type A and one return type R; hosts with multi-argument
// prototypes bind A to a struct carrying the arguments.
type Fn[A, R any] func(A) R

// Void is the return type for bridged signatures that return nothing.
type Void = struct{}
