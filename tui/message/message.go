package message

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

type Type int

const (
	Success Type = iota
	Error
	Prompt
)

var msgColours = map[Type]color.Color{
	Success: lipgloss.NoColor{},
	Error:   lipgloss.Color("#d75a7d"),
	Prompt:  lipgloss.NoColor{},
}

func (m Type) Colour() color.Color {
	return msgColours[m]
}

// StatusBarMsg is a message shown in the status bar
type StatusBarMsg struct {
	Content string
	Type    Type
}

// Empty reports whether there's nothing to show
func (m StatusBarMsg) Empty() bool {
	return m.Content == ""
}

func NewSuccess(content string) StatusBarMsg {
	return StatusBarMsg{Content: content, Type: Success}
}

func NewError(err error) StatusBarMsg {
	return StatusBarMsg{Content: err.Error(), Type: Error}
}

var StatusBar = struct {
	UnknownVerb, Yanked, NoClipboard, Refreshed string
}{
	UnknownVerb: "No verb bound to `%s`",
	Yanked:      "Yanked `%s`",
	NoClipboard: "Clipboard not available",
	Refreshed:   "Reloaded `%s`",
}
