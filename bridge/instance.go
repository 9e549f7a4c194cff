// File: bridge/instance.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide registry instances.
// One registry exists per identity (argument type, return type, tag type,
// capacity). Instances are created lazily on first access and live for the
// remainder of the process; they are never torn down.

package bridge

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/momentics/cbridge/api"
)

// DefaultCapacity is the slot count used when no capacity is requested.
const DefaultCapacity = 256

// DefaultTag is the marker type used when call sites do not need an
// independent pool of their own. Declare an empty struct type to get a
// disjoint registry for an identical signature and capacity.
type DefaultTag struct{}

type instanceKey struct {
	arg      reflect.Type
	ret      reflect.Type
	tag      reflect.Type
	capacity int
}

type instanceEntry struct {
	registry any
	size     func() int
	capacity int
	key      instanceKey
}

var (
	instMu    sync.Mutex
	instances = make(map[instanceKey]*instanceEntry)
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// For returns the process-wide registry for the identity
// (A, R, Tag, capacity), creating it on first access. Two call sites using
// the same three types and capacity share one instance; a distinct Tag type
// yields a disjoint instance for an otherwise identical signature.
func For[A, R, Tag any](capacity int) *Registry[A, R] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	key := instanceKey{
		arg:      typeOf[A](),
		ret:      typeOf[R](),
		tag:      typeOf[Tag](),
		capacity: capacity,
	}

	instMu.Lock()
	defer instMu.Unlock()

	if entry, ok := instances[key]; ok {
		return entry.registry.(*Registry[A, R])
	}
	reg := NewRegistry[A, R](capacity)
	instances[key] = &instanceEntry{
		registry: reg,
		size:     reg.Size,
		capacity: capacity,
		key:      key,
	}
	return reg
}

// Default returns the registry for (A, R, DefaultTag, DefaultCapacity).
func Default[A, R any]() *Registry[A, R] {
	return For[A, R, DefaultTag](DefaultCapacity)
}

// Register registers fn against the process-wide instance selected by the
// type parameters, using DefaultCapacity.
func Register[A, R, Tag any](fn api.Fn[A, R]) (api.Handle, api.Fn[A, R], error) {
	return For[A, R, Tag](DefaultCapacity).Register(fn)
}

// Unregister removes a registration from the process-wide instance selected
// by the type parameters, using DefaultCapacity.
func Unregister[A, R, Tag any](handle api.Handle) bool {
	return For[A, R, Tag](DefaultCapacity).Unregister(handle)
}

// InstanceInfo is a point-in-time snapshot of one process-wide registry.
type InstanceInfo struct {
	Signature string
	Tag       string
	Capacity  int
	Size      int
}

// Instances reports a snapshot of every process-wide registry, for debug
// probes and metrics. Sizes are sampled per instance outside the instance
// table lock ordering concerns; each sample takes that registry's shared
// lock only.
func Instances() []InstanceInfo {
	instMu.Lock()
	entries := make([]*instanceEntry, 0, len(instances))
	for _, e := range instances {
		entries = append(entries, e)
	}
	instMu.Unlock()

	out := make([]InstanceInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, InstanceInfo{
			Signature: fmt.Sprintf("func(%s) %s", e.key.arg, e.key.ret),
			Tag:       e.key.tag.String(),
			Capacity:  e.capacity,
			Size:      e.size(),
		})
	}
	return out
}
