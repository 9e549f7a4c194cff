// File: actions/defaults.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package actions

import "github.com/momentics/cbridge/api"

// EnableForDisasm builds an update handler enabling the action only in
// disassembly widgets.
func EnableForDisasm(host api.ActionHost) api.UpdateFunc {
	return func(widget any, isWidget bool) api.ActionState {
		if host.WidgetKind(widget) == api.WidgetDisasm {
			return api.ActionEnableForWidget
		}
		return api.ActionDisableForWidget
	}
}

// EnableForDisasmOrPseudocode builds an update handler enabling the action
// in disassembly and decompiler widgets.
func EnableForDisasmOrPseudocode(host api.ActionHost) api.UpdateFunc {
	return func(widget any, isWidget bool) api.ActionState {
		switch host.WidgetKind(widget) {
		case api.WidgetDisasm, api.WidgetPseudocode:
			return api.ActionEnableForWidget
		default:
			return api.ActionDisableForWidget
		}
	}
}
