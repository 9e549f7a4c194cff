package facade_test

import (
	"testing"
	"time"

	"github.com/momentics/cbridge/actions"
	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/facade"
	"github.com/momentics/cbridge/fake"
)

// Full lifecycle: pump submission, action registration through the facade,
// debug probes, and shutdown teardown.
func TestCBridgeFullLifecycle(t *testing.T) {
	host := fake.NewHost()
	cb, err := facade.New(facade.DefaultConfig(), host)
	if err != nil {
		t.Fatal(err)
	}
	if err := cb.Start(); err != nil {
		t.Fatal(err)
	}

	executed := make(chan struct{})
	if err := cb.Submit(func() { close(executed) }); err != nil {
		t.Fatal(err)
	}
	select {
	case <-executed:
	case <-time.After(2 * time.Second):
		t.Fatal("pump failed to run submitted task")
	}

	m := cb.Actions()
	if m == nil {
		t.Fatal("no action manager although host was supplied")
	}
	if m.AddAction(actions.FlagNone, api.ActionDesc{
		Name:     "facade:test",
		Update:   func(any, bool) api.ActionState { return api.ActionEnableAlways },
		Activate: func(any) int { return 1 },
	}) == nil {
		t.Fatal("AddAction failed")
	}
	if !host.Registered("facade:test") {
		t.Error("action not registered with host")
	}

	ctl := cb.GetControl()
	ctl.RegisterDebugProbe("test.probe", func() any { return 42 })
	state := ctl.DumpState()
	if state["test.probe"] != 42 {
		t.Error("probe missing from DumpState")
	}
	if _, ok := state["bridge.instances"]; !ok {
		t.Error("built-in bridge.instances probe missing")
	}

	if err := cb.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if host.Count() != 0 {
		t.Errorf("%d actions still registered after Shutdown", host.Count())
	}
	if err := cb.Submit(func() {}); err == nil {
		t.Error("Submit accepted work after Shutdown")
	}
}

func TestCBridgeWithoutHost(t *testing.T) {
	cb, err := facade.New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cb.Actions() != nil {
		t.Error("action manager exists without a host")
	}
	if err := cb.Start(); err != nil {
		t.Fatal(err)
	}
	if err := cb.Shutdown(); err != nil {
		t.Fatal(err)
	}
}

func TestCBridgeDisabledControl(t *testing.T) {
	cb, err := facade.New(&facade.Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctl := cb.GetControl()
	if got := ctl.Stats(); len(got) != 0 {
		t.Errorf("stats on disabled metrics: %v", got)
	}
	if got := ctl.DumpState(); len(got) != 0 {
		t.Errorf("probes on disabled debug: %v", got)
	}
	ctl.RegisterDebugProbe("noop", func() any { return nil })
	if err := cb.Shutdown(); err != nil {
		t.Fatal(err)
	}
}
