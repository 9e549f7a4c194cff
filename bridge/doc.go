// Package bridge
// Author: momentics <momentics@gmail.com>
//
// Callback bridging core for cbridge.
// Implements the fixed-capacity slot pool with its trampoline table, the
// handle-based registry on top of it, and the scoped wrapper that ties one
// registration to an owner's lifetime. Trampolines are plain func values,
// one per slot, built once per registry and stable for the process lifetime,
// so they can be handed to host APIs that accept only bare callbacks.
// See registry.go, instance.go, scoped.go for implementation details.
package bridge
