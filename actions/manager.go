// File: actions/manager.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Closure-backed action management for plugin hosts.
// The manager owns every action it registers, attaches enabled actions to
// popup menus when the host fires its popup-populating events, and tears
// everything down at once. The popup event hook it hands to the host is a
// bridged bare callback obtained through a scoped registration.

package actions

import (
	"github.com/momentics/cbridge/api"
	"github.com/momentics/cbridge/bridge"
	"github.com/momentics/cbridge/container"
)

// Flags select popup attach behavior for one action.
type Flags int

const (
	FlagNone Flags = 0
	// FlagUIPopup attaches the action when the host's main UI populates a
	// widget popup.
	FlagUIPopup Flags = 1 << iota
	// FlagViewerPopup attaches the action on popup events from a secondary
	// viewer subsystem (a decompiler view and the like).
	FlagViewerPopup
)

// PopupEvent is the argument of the bridged popup hook.
type PopupEvent struct {
	Widget    any
	Popup     any
	ViaViewer bool
}

// popupHookTag isolates the manager's hook registrations from other users
// of the same signature.
type popupHookTag struct{}

// Action is one registered, closure-backed host action.
type Action struct {
	Desc      api.ActionDesc
	popupPath string
}

// State evaluates the action's update handler against a bare widget.
func (a *Action) State(widget any) api.ActionState {
	if a.Desc.Update == nil {
		return api.ActionEnableAlways
	}
	return a.Desc.Update(widget, true)
}

// Manager registers closure-backed actions with a host and keeps them
// attached to the right popups. Not safe for concurrent mutation; hosts
// deliver UI events on one thread.
type Manager struct {
	host            api.ActionHost
	actions         container.Container[Action]
	popupPaths      container.Container[string]
	wantUIPopup     []*Action
	wantViewerPopup []*Action
	currentPath     string
	hook            *bridge.Scoped[PopupEvent, int]
}

// NewManager creates a manager bound to host and bridges its popup hook so
// PopupHook can be handed to the host's event registration API.
func NewManager(host api.ActionHost) *Manager {
	m := &Manager{host: host}
	m.hook = bridge.ScopedFor[PopupEvent, int, popupHookTag](
		bridge.DefaultCapacity,
		m.OnPopupPopulating,
	)
	return m
}

// PopupHook returns the bridged bare callback the host should invoke when
// populating a widget popup, or nil if bridging failed.
func (m *Manager) PopupHook() api.Fn[PopupEvent, int] {
	return m.hook.Get()
}

// SetPopupPath sets the popup menu path recorded for subsequently added
// actions. The path is interned in a container owned by the manager, so it
// outlives the call site. An empty path clears it.
func (m *Manager) SetPopupPath(path string) {
	if path == "" {
		m.currentPath = ""
		return
	}
	m.currentPath = *m.popupPaths.Create(path)
}

// AddAction registers desc with the host. On success the returned action
// is owned by the manager and, depending on flags, attached to popups as
// they populate. On host failure the just-created action is popped back
// out and nil is returned.
func (m *Manager) AddAction(flags Flags, desc api.ActionDesc) *Action {
	act := m.actions.Create(Action{
		Desc:      desc,
		popupPath: m.currentPath,
	})

	if !m.host.RegisterAction(desc) {
		m.actions.PopBack()
		return nil
	}

	if flags&FlagUIPopup != 0 {
		m.wantUIPopup = append(m.wantUIPopup, act)
	}
	if flags&FlagViewerPopup != 0 {
		m.wantViewerPopup = append(m.wantViewerPopup, act)
	}
	return act
}

// AttachToPopup attaches one action to a specific popup immediately. An
// empty path falls back to the path captured when the action was added.
func (m *Manager) AttachToPopup(act *Action, widget, popup any, path string) bool {
	if act == nil {
		return false
	}
	if path == "" {
		path = act.popupPath
	}
	return m.host.AttachToPopup(widget, popup, act.Desc.Name, path)
}

// OnPopupPopulating is the popup hook body: it walks the attach list
// selected by the event source and attaches every action whose update
// handler enables it for the widget. Always returns 0, the host convention
// for "event processed".
func (m *Manager) OnPopupPopulating(ev PopupEvent) int {
	list := m.wantUIPopup
	if ev.ViaViewer {
		list = m.wantViewerPopup
	}
	for _, act := range list {
		if act.State(ev.Widget).Enabled() {
			m.host.AttachToPopup(ev.Widget, ev.Popup, act.Desc.Name, act.popupPath)
		}
	}
	return 0
}

// Len returns the number of live actions.
func (m *Manager) Len() int {
	return m.actions.Len()
}

// At returns the i-th action, negative i counting from the end.
func (m *Manager) At(i int) *Action {
	return m.actions.At(i)
}

// RemoveAll unregisters every action from the host and drops them.
func (m *Manager) RemoveAll() {
	for _, act := range m.actions.All() {
		m.host.UnregisterAction(act.Desc.Name)
	}
	m.actions.Clear()
	m.popupPaths.Clear()
	m.wantUIPopup = nil
	m.wantViewerPopup = nil
}

// Close removes all actions and releases the bridged popup hook. The hook
// address already handed to the host goes inert rather than dangling.
func (m *Manager) Close() error {
	m.RemoveAll()
	return m.hook.Close()
}
