// File: facade/cbridge.go
// Unified facade layer for the cbridge library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the CBridge struct, which aggregates the library's
// components behind a single facade: the dispatch pump for host-thread
// marshaling, an action manager over the supplied host, and the metrics and
// debug-probe registries. The facade exposes methods to start/stop the
// pump, submit work to it, and retrieve the runtime services.

package facade

import (
	"sync"

	"github.com/momentics/cbridge/actions"
	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/control"
	"github.com/momentics/cbridge/dispatch"
)

// Config holds parameters immutable per facade instance.
type Config struct {
	EnableMetrics        bool // collect invocation metrics
	EnableDebug          bool // install debug probes
	EnablePlatformProbes bool // add OS-specific probes to the debug set
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		EnableMetrics:        true,
		EnableDebug:          true,
		EnablePlatformProbes: false,
	}
}

// CBridge aggregates the library components for one embedding plugin.
type CBridge struct {
	cfg     *Config
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
	pump    *dispatch.Pump
	actions *actions.Manager

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// New builds a facade over the given host. host may be nil when the
// embedding plugin registers no actions; Actions then returns nil.
func New(cfg *Config, host api.ActionHost) (*CBridge, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cb := &CBridge{
		cfg:  cfg,
		pump: dispatch.NewPump(),
	}
	if cfg.EnableMetrics {
		cb.metrics = control.NewMetricsRegistry()
	}
	if cfg.EnableDebug {
		cb.probes = control.NewDebugProbes()
		if cfg.EnablePlatformProbes {
			control.RegisterPlatformProbes(cb.probes)
		}
		cb.probes.RegisterProbe("pump.len", func() any { return cb.pump.Len() })
	}
	if host != nil {
		cb.actions = actions.NewManager(host)
	}
	return cb, nil
}

// Start launches the pump's consumer goroutine. Idempotent.
func (cb *CBridge) Start() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.started {
		return nil
	}
	cb.started = true
	cb.done = make(chan struct{})
	go func() {
		cb.pump.Run()
		close(cb.done)
	}()
	return nil
}

// Shutdown tears the facade down: actions are unregistered from the host,
// the pump drains pending work and stops.
func (cb *CBridge) Shutdown() error {
	if cb.actions != nil {
		if err := cb.actions.Close(); err != nil {
			return err
		}
	}
	cb.pump.Close()

	cb.mu.Lock()
	done := cb.done
	cb.mu.Unlock()
	if done != nil {
		<-done
	}
	return nil
}

// Submit posts fn to the pump for execution on the pump goroutine.
func (cb *CBridge) Submit(fn func()) error {
	return cb.pump.Post(fn)
}

// Pump returns the dispatch pump.
func (cb *CBridge) Pump() *dispatch.Pump { return cb.pump }

// Actions returns the action manager, nil when no host was supplied.
func (cb *CBridge) Actions() *actions.Manager { return cb.actions }

// Metrics returns the metrics registry, nil when metrics are disabled.
func (cb *CBridge) Metrics() *control.MetricsRegistry { return cb.metrics }

// GetControl returns the control surface over metrics and probes.
func (cb *CBridge) GetControl() api.Control {
	return &controlFacade{metrics: cb.metrics, probes: cb.probes}
}

// controlFacade adapts the metrics and probe registries to api.Control.
type controlFacade struct {
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
}

func (c *controlFacade) Stats() map[string]any {
	if c.metrics == nil {
		return map[string]any{}
	}
	return c.metrics.GetSnapshot()
}

func (c *controlFacade) RegisterDebugProbe(name string, fn func() any) {
	if c.probes != nil {
		c.probes.RegisterProbe(name, fn)
	}
}

func (c *controlFacade) DumpState() map[string]any {
	if c.probes == nil {
		return map[string]any{}
	}
	return c.probes.DumpState()
}
