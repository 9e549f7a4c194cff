package adapters_test

import (
	"testing"

	"github.com/momentics/cbridge/adapters"
	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/bridge"
	"github.com/momentics/cbridge/control"
)

func TestRecoveryFencesPanic(t *testing.T) {
	var recovered any
	fn := adapters.Chain(
		func(x int) int { panic("boom") },
		adapters.Recovery[int, int](func(r any) { recovered = r }),
	)

	if got := fn(1); got != 0 {
		t.Errorf("panicking callback returned %d, want zero value", got)
	}
	if recovered != "boom" {
		t.Errorf("recovered = %v", recovered)
	}
}

func TestChainOrder(t *testing.T) {
	var trace []string
	mw := func(name string) adapters.Middleware[int, int] {
		return func(next api.Fn[int, int]) api.Fn[int, int] {
			return func(x int) int {
				trace = append(trace, name)
				return next(x)
			}
		}
	}

	fn := adapters.Chain(func(x int) int { return x }, mw("outer"), mw("inner"))
	fn(0)

	if len(trace) != 2 || trace[0] != "outer" || trace[1] != "inner" {
		t.Errorf("trace = %v", trace)
	}
}

func TestMetricsMiddlewareCounts(t *testing.T) {
	mr := control.NewMetricsRegistry()
	fn := adapters.Chain(
		func(x int) int { return x },
		adapters.Metrics[int, int](mr, "callback.invoked"),
	)
	for i := 0; i < 3; i++ {
		fn(i)
	}
	if got, _ := mr.GetSnapshot()["callback.invoked"].(int64); got != 3 {
		t.Errorf("counter = %d", got)
	}
}

// Wrapped closures bridge like any other: the recovery fence keeps a panic
// from escaping through a trampoline into foreign code.
func TestRecoveryThroughBridge(t *testing.T) {
	reg := bridge.NewRegistry[int, int](2)
	h, tramp, err := reg.Register(adapters.Chain(
		func(x int) int { panic("across the boundary") },
		adapters.Recovery[int, int](nil),
	))
	if err != nil {
		t.Fatal(err)
	}
	defer reg.Unregister(h)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped the bridge: %v", r)
		}
	}()
	if got := tramp(1); got != 0 {
		t.Errorf("got %d, want zero value", got)
	}
}
