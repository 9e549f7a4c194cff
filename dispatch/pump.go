// File: dispatch/pump.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-consumer dispatch pump.
// Hosts usually require certain calls to happen on one designated thread
// (the UI thread). The pump serializes closures posted from arbitrary
// goroutines, including bridged callbacks, onto whatever goroutine drives
// Run, in strict post order.

package dispatch

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/cbridge/api"
)

// Pump is a FIFO of closures consumed by a single Run loop.
type Pump struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  *queue.Queue
	closed bool
}

// NewPump creates an idle pump; nothing executes until Run is called.
func NewPump() *Pump {
	p := &Pump{tasks: queue.New()}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Post enqueues fn for execution on the Run goroutine. Returns
// api.ErrPumpClosed after Close.
func (p *Pump) Post(fn func()) error {
	if fn == nil {
		return api.ErrInvalidArgument
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return api.ErrPumpClosed
	}
	p.tasks.Add(fn)
	p.cond.Signal()
	return nil
}

// PostWait enqueues fn and blocks until it has executed. Must not be
// called from the Run goroutine itself: the pump would wait on its own
// queue.
func (p *Pump) PostWait(fn func()) error {
	if fn == nil {
		return api.ErrInvalidArgument
	}
	done := make(chan struct{})
	if err := p.Post(func() {
		fn()
		close(done)
	}); err != nil {
		return err
	}
	<-done
	return nil
}

// Run consumes posted closures in FIFO order. It returns once Close has
// been called and the queue is drained. Each closure runs with no pump
// lock held, so it may post further work.
func (p *Pump) Run() {
	for {
		p.mu.Lock()
		for p.tasks.Length() == 0 && !p.closed {
			p.cond.Wait()
		}
		if p.tasks.Length() == 0 {
			p.mu.Unlock()
			return
		}
		fn := p.tasks.Remove().(func())
		p.mu.Unlock()

		fn()
	}
}

// Close stops intake. Work already posted still runs; Run returns after
// the drain. Idempotent.
func (p *Pump) Close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
}

// Len returns the number of closures waiting to run.
func (p *Pump) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.Length()
}
