package keyinput

import (
	"strings"

	"thicket/tui/message"
	"thicket/tui/mode"
)

// Handler runs a bound action and reports its outcome
type Handler func() message.StatusBarMsg

// KeyBinding lists the keys of one action.
// Two keys separated by a space, like "g g", form a sequence.
type KeyBinding struct {
	keys []string
}

func KeyBindings(keys ...string) KeyBinding {
	return KeyBinding{keys: keys}
}

// KeyAction makes its bindings available in the modes named by Cond
type KeyAction struct {
	Bindings KeyBinding
	Cond     []KeyCondition
}

type KeyCondition struct {
	Mode   mode.Mode
	Action Handler
}

// keyTable holds the resolved bindings of a single mode
type keyTable struct {
	handlers map[string]Handler
	prefixes map[string]struct{}
}

// Input resolves key presses to the handlers of the active mode
type Input struct {
	Mode mode.Mode

	tables  map[mode.Mode]*keyTable
	pending string
}

func New() *Input {
	return &Input{
		Mode:   mode.Normal,
		tables: map[mode.Mode]*keyTable{},
	}
}

// Bind replaces all bindings with the given actions.
// Later actions win if two of them bind the same key in one mode.
func (ki *Input) Bind(actions []KeyAction) {
	ki.tables = map[mode.Mode]*keyTable{}
	ki.pending = ""

	for _, action := range actions {
		for _, cond := range action.Cond {
			table := ki.table(cond.Mode)

			for _, key := range action.Bindings.keys {
				table.handlers[key] = cond.Action

				if first, _, ok := strings.Cut(key, " "); ok {
					table.prefixes[first] = struct{}{}
				}
			}
		}
	}
}

func (ki *Input) table(m mode.Mode) *keyTable {
	t, ok := ki.tables[m]
	if !ok {
		t = &keyTable{
			handlers: map[string]Handler{},
			prefixes: map[string]struct{}{},
		}
		ki.tables[m] = t
	}

	return t
}

// SetMode switches the active bindings and drops a pending sequence
func (ki *Input) SetMode(m mode.Mode) {
	if ki.Mode != m {
		ki.Mode = m
		ki.pending = ""
	}
}

// Pending returns the first key of an unfinished sequence
func (ki *Input) Pending() string {
	return ki.pending
}

// Handle runs the handler bound to key in the active mode.
// It returns false if the key neither ran a handler nor started or
// cancelled a sequence, leaving it to the caller.
func (ki *Input) Handle(key string) (message.StatusBarMsg, bool) {
	table := ki.table(ki.Mode)

	if ki.pending != "" {
		seq := ki.pending + " " + key
		ki.pending = ""

		if key == "esc" {
			return message.StatusBarMsg{}, true
		}

		if h, ok := table.handlers[seq]; ok {
			return h(), true
		}

		return message.StatusBarMsg{}, false
	}

	if h, ok := table.handlers[key]; ok {
		return h(), true
	}

	if _, ok := table.prefixes[key]; ok {
		ki.pending = key
		return message.StatusBarMsg{}, true
	}

	return message.StatusBarMsg{}, false
}
