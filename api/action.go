// File: api/action.go
// Package api defines the host action registration surface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// WidgetKind classifies a host widget for action update handlers.
type WidgetKind int

const (
	WidgetUnknown WidgetKind = iota
	WidgetDisasm
	WidgetPseudocode
	WidgetOther
)

// ActionState is the result of an action's Update handler.
type ActionState int

const (
	ActionDisable ActionState = iota
	ActionDisableForWidget
	ActionEnableForWidget
	ActionEnableAlways
)

// Enabled reports whether the state allows the action to be shown/invoked.
func (s ActionState) Enabled() bool {
	return s == ActionEnableForWidget || s == ActionEnableAlways
}

// UpdateFunc decides the action state for a widget. isWidget is true when
// the host passed a bare widget rather than a full update context.
type UpdateFunc func(widget any, isWidget bool) ActionState

// ActivateFunc runs the action. The returned int follows the host
// convention: nonzero on success.
type ActivateFunc func(ctx any) int

// ActionDesc describes one host action backed by closures instead of a
// handler object.
type ActionDesc struct {
	Name     string
	Label    string
	Shortcut string
	Tooltip  string
	Icon     int
	Update   UpdateFunc
	Activate ActivateFunc
}

// ActionHost abstracts the plugin host's action registration facility.
// Implementations wrap the real host API; fake.Host provides an in-memory
// one for tests.
type ActionHost interface {
	// RegisterAction registers the described action. Returns false if the
	// host rejected it (duplicate name, invalid shortcut, ...).
	RegisterAction(desc ActionDesc) bool

	// UnregisterAction removes a previously registered action by name.
	UnregisterAction(name string) bool

	// AttachToPopup attaches a registered action to a widget's popup menu
	// under the given path ("" for the menu root).
	AttachToPopup(widget, popup any, name, path string) bool

	// WidgetKind classifies a host widget object.
	WidgetKind(widget any) WidgetKind
}
