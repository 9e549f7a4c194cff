// File: adapters/callback_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Middleware glue for bridged callbacks. Closures are wrapped before they
// are handed to a registry, so everything here runs inside the trampoline's
// unlocked call and never under a registry lock.

package adapters

import (
	"log"

	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/control"
)

// Middleware transforms one bridged callback into another of the same
// signature.
type Middleware[A, R any] func(api.Fn[A, R]) api.Fn[A, R]

// Chain applies middleware to fn, first middleware outermost.
func Chain[A, R any](fn api.Fn[A, R], mws ...Middleware[A, R]) api.Fn[A, R] {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](fn)
	}
	return fn
}

// Recovery fences panics out of a closure about to cross a host boundary.
// A panic escaping into foreign code is not survivable, so it is converted
// into the signature's zero return; onPanic, when non-nil, observes the
// recovered value.
func Recovery[A, R any](onPanic func(recovered any)) Middleware[A, R] {
	return func(next api.Fn[A, R]) api.Fn[A, R] {
		return func(arg A) (out R) {
			defer func() {
				if r := recover(); r != nil {
					if onPanic != nil {
						onPanic(r)
					} else {
						log.Printf("[cbridge] panic recovered in bridged callback: %v", r)
					}
				}
			}()
			return next(arg)
		}
	}
}

// Logging logs entry and argument type of each invocation under name.
func Logging[A, R any](name string) Middleware[A, R] {
	return func(next api.Fn[A, R]) api.Fn[A, R] {
		return func(arg A) R {
			log.Printf("[%s] invoking bridged callback: %T", name, arg)
			return next(arg)
		}
	}
}

// Metrics counts invocations under key in the given registry.
func Metrics[A, R any](mr *control.MetricsRegistry, key string) Middleware[A, R] {
	return func(next api.Fn[A, R]) api.Fn[A, R] {
		return func(arg A) R {
			mr.Inc(key)
			return next(arg)
		}
	}
}
