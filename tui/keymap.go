package tui

import (
	ki "thicket/tui/keyinput"
	"thicket/tui/mode"
)

type keyAction = ki.KeyAction
type keyCond = ki.KeyCondition

// KeyInputFn returns the driver's own bindings. Keys without one
// in normal mode are looked up in the verb store.
func (m *Model) KeyInputFn() []ki.KeyAction {
	return []keyAction{
		// LINE DOWN
		{
			Bindings: ki.KeyBindings("j", "down"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.lineDown}},
		},

		// LINE UP
		{
			Bindings: ki.KeyBindings("k", "up"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.lineUp}},
		},

		// GO TO TOP
		{
			Bindings: ki.KeyBindings("g", "home"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.goToTop}},
		},

		// GO TO BOTTOM
		{
			Bindings: ki.KeyBindings("G", "end"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.goToBottom}},
		},

		// FOCUS SELECTED DIRECTORY
		{
			Bindings: ki.KeyBindings("enter"),
			Cond: []keyCond{
				{Mode: mode.Normal, Action: m.enter},
				{Mode: mode.Command, Action: m.confirmCommand},
				{Mode: mode.Filter, Action: m.confirmFilter},
			},
		},

		// RELOAD
		{
			Bindings: ki.KeyBindings("ctrl+r"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.reload}},
		},

		// YANK PATH
		{
			Bindings: ki.KeyBindings("y"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.yank}},
		},

		// COMMAND PROMPT
		{
			Bindings: ki.KeyBindings(":", "space"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.enterCmdMode}},
		},

		// FILTER PROMPT
		{
			Bindings: ki.KeyBindings("/"),
			Cond:     []keyCond{{Mode: mode.Normal, Action: m.enterFilterMode}},
		},

		// CANCEL
		{
			Bindings: ki.KeyBindings("esc"),
			Cond: []keyCond{
				{Mode: mode.Normal, Action: m.clearFilter},
				{Mode: mode.Command, Action: m.cancelPrompt},
				{Mode: mode.Filter, Action: m.cancelFilter},
			},
		},

		// HISTORY
		{
			Bindings: ki.KeyBindings("up"),
			Cond: []keyCond{
				{Mode: mode.Command, Action: m.historyOlder},
				{Mode: mode.Filter, Action: m.historyOlder},
			},
		},
		{
			Bindings: ki.KeyBindings("down"),
			Cond: []keyCond{
				{Mode: mode.Command, Action: m.historyNewer},
				{Mode: mode.Filter, Action: m.historyNewer},
			},
		},
	}
}
