// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake action host implementation for testing and examples.

package fake

import (
	"sync"

	"github.com/momentics/cbridge/api"
)

// Widget is a fake host widget with a fixed kind.
type Widget struct {
	Name string
	Kind api.WidgetKind
}

// Attachment records one popup attachment performed by the host.
type Attachment struct {
	Widget any
	Popup  any
	Name   string
	Path   string
}

// Host is an in-memory api.ActionHost recording every call.
type Host struct {
	mu           sync.Mutex
	actions      map[string]api.ActionDesc
	attachments  []Attachment
	FailRegister bool // force RegisterAction to fail
}

// NewHost creates an empty fake host.
func NewHost() *Host {
	return &Host{actions: make(map[string]api.ActionDesc)}
}

// RegisterAction implements api.ActionHost. Duplicate names fail, like
// real hosts.
func (h *Host) RegisterAction(desc api.ActionDesc) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.FailRegister || desc.Name == "" {
		return false
	}
	if _, exists := h.actions[desc.Name]; exists {
		return false
	}
	h.actions[desc.Name] = desc
	return true
}

// UnregisterAction implements api.ActionHost.
func (h *Host) UnregisterAction(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.actions[name]; !exists {
		return false
	}
	delete(h.actions, name)
	return true
}

// AttachToPopup implements api.ActionHost.
func (h *Host) AttachToPopup(widget, popup any, name, path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.actions[name]; !exists {
		return false
	}
	h.attachments = append(h.attachments, Attachment{
		Widget: widget,
		Popup:  popup,
		Name:   name,
		Path:   path,
	})
	return true
}

// WidgetKind implements api.ActionHost.
func (h *Host) WidgetKind(widget any) api.WidgetKind {
	if w, ok := widget.(*Widget); ok {
		return w.Kind
	}
	return api.WidgetUnknown
}

// Registered reports whether an action name is currently registered.
func (h *Host) Registered(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, exists := h.actions[name]
	return exists
}

// Count returns the number of registered actions.
func (h *Host) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.actions)
}

// Attachments returns a copy of the recorded popup attachments.
func (h *Host) Attachments() []Attachment {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Attachment, len(h.attachments))
	copy(out, h.attachments)
	return out
}

// Invoke runs a registered action's activate handler, returning its result
// or 0 for unknown actions, mirroring how a host fires activation.
func (h *Host) Invoke(name string, ctx any) int {
	h.mu.Lock()
	desc, exists := h.actions[name]
	h.mu.Unlock()
	if !exists || desc.Activate == nil {
		return 0
	}
	return desc.Activate(ctx)
}
