package bridge_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/bridge"
)

func TestRegisterUntilFull(t *testing.T) {
	reg := bridge.NewRegistry[int, int](4)

	handles := make([]api.Handle, 0, 4)
	trampolines := make([]api.Fn[int, int], 0, 4)
	for i := 0; i < 4; i++ {
		ordinal := i + 1
		h, tramp, err := reg.Register(func(x int) int { return ordinal * 100 * x })
		if err != nil {
			t.Fatalf("register %d failed: %v", i, err)
		}
		if !h.Valid() {
			t.Fatalf("register %d returned invalid handle", i)
		}
		if tramp == nil {
			t.Fatalf("register %d returned nil trampoline", i)
		}
		handles = append(handles, h)
		trampolines = append(trampolines, tramp)
	}

	// Handles must be distinct.
	seen := make(map[api.Handle]bool)
	for _, h := range handles {
		if seen[h] {
			t.Fatalf("duplicate handle %d", h)
		}
		seen[h] = true
	}

	// One past capacity fails and mutates nothing.
	_, _, err := reg.Register(func(x int) int { return -1 })
	if !errors.Is(err, api.ErrRegistryFull) {
		t.Fatalf("expected ErrRegistryFull, got %v", err)
	}
	if reg.Size() != 4 {
		t.Fatalf("size changed after failed register: %d", reg.Size())
	}

	// Trampolines are distinct addresses: each still routes to its own slot.
	for i, tramp := range trampolines {
		want := (i + 1) * 100 * 3
		if got := tramp(3); got != want {
			t.Errorf("trampoline %d routed wrong: got %d want %d", i, got, want)
		}
	}
}

func TestUnregisterTwice(t *testing.T) {
	reg := bridge.NewRegistry[int, int](2)
	h, _, err := reg.Register(func(x int) int { return x })
	if err != nil {
		t.Fatal(err)
	}
	if !reg.Unregister(h) {
		t.Error("first unregister should succeed")
	}
	if reg.Unregister(h) {
		t.Error("second unregister should fail")
	}
	if reg.Unregister(api.InvalidHandle) {
		t.Error("unregister of invalid handle should fail")
	}
	if reg.Size() != 0 {
		t.Errorf("size = %d after teardown", reg.Size())
	}
}

func TestHandleNeverReused(t *testing.T) {
	reg := bridge.NewRegistry[int, int](1)

	var highest api.Handle
	for i := 0; i < 50; i++ {
		h, tramp, err := reg.Register(func(x int) int { return x + 1 })
		if err != nil {
			t.Fatal(err)
		}
		if h <= highest {
			t.Fatalf("handle %d not greater than previous %d", h, highest)
		}
		highest = h
		// Slot index is reused, handle is not.
		if got := tramp(1); got != 2 {
			t.Fatalf("trampoline routed wrong after slot reuse: %d", got)
		}
		if !reg.Unregister(h) {
			t.Fatal("unregister failed")
		}
	}
}

func TestDeadTrampolineIsInert(t *testing.T) {
	reg := bridge.NewRegistry[int, int](2)

	// Never-registered slot.
	tramp := reg.TrampolineFor(1)
	if tramp == nil {
		t.Fatal("in-range trampoline is nil")
	}
	if got := tramp(7); got != 0 {
		t.Errorf("free-slot call returned %d, want zero value", got)
	}

	// Registered, then unregistered.
	h, tramp, err := reg.Register(func(x int) int { return x * 2 })
	if err != nil {
		t.Fatal(err)
	}
	if got := tramp(4); got != 8 {
		t.Fatalf("live trampoline returned %d", got)
	}
	reg.Unregister(h)
	if got := tramp(4); got != 0 {
		t.Errorf("dead trampoline returned %d, want zero value", got)
	}

	// Out of range.
	if reg.TrampolineFor(-1) != nil || reg.TrampolineFor(2) != nil {
		t.Error("out-of-range trampoline should be nil")
	}
}

func TestVoidSignature(t *testing.T) {
	reg := bridge.NewRegistry[string, api.Void](2)

	called := ""
	h, tramp, err := reg.Register(func(s string) api.Void {
		called = s
		return api.Void{}
	})
	if err != nil {
		t.Fatal(err)
	}
	tramp("ping")
	if called != "ping" {
		t.Errorf("void callback not invoked: %q", called)
	}
	reg.Unregister(h)
	tramp("pong") // must be a no-op, not a fault
	if called != "ping" {
		t.Errorf("dead void trampoline invoked closure: %q", called)
	}
}

func TestUnregisterAll(t *testing.T) {
	reg := bridge.NewRegistry[int, int](8)
	trampolines := make([]api.Fn[int, int], 0, 8)
	for i := 0; i < 8; i++ {
		_, tramp, err := reg.Register(func(x int) int { return x + 1 })
		if err != nil {
			t.Fatal(err)
		}
		trampolines = append(trampolines, tramp)
	}
	reg.UnregisterAll()
	if reg.Size() != 0 {
		t.Fatalf("size = %d after UnregisterAll", reg.Size())
	}
	for i, tramp := range trampolines {
		if got := tramp(1); got != 0 {
			t.Errorf("trampoline %d still live after UnregisterAll: %d", i, got)
		}
	}
}

// Randomized register/unregister sequences: Size never exceeds Capacity and
// always matches a shadow model of occupied slots.
func TestRegistryPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		reg := bridge.NewRegistry[int, int](16)

		live := make(map[api.Handle]bool)
		for i := 0; i < 5000; i++ {
			switch rng.Intn(3) {
			case 0: // register
				h, _, err := reg.Register(func(x int) int { return x })
				if err == nil {
					live[h] = true
				} else if len(live) != 16 {
					t.Fatalf("register failed with %d/16 occupied", len(live))
				}
			case 1: // unregister a live handle
				for h := range live {
					if !reg.Unregister(h) {
						t.Fatalf("unregister of live handle %d failed", h)
					}
					delete(live, h)
					break
				}
			case 2: // unregister a bogus handle
				if reg.Unregister(api.Handle(1 << 30)) {
					t.Fatal("unregister of bogus handle succeeded")
				}
			}
			if reg.Size() != len(live) {
				t.Fatalf("size %d, model %d", reg.Size(), len(live))
			}
			if reg.Size() > reg.Capacity() {
				t.Fatalf("size %d exceeds capacity %d", reg.Size(), reg.Capacity())
			}
		}
	}
}
