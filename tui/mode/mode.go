package mode

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
)

type Mode int

const (
	Normal Mode = iota
	Command
	Filter
)

var modeName = map[Mode]string{
	Normal:  "n",
	Command: "c",
	Filter:  "f",
}

var fullName = map[Mode]string{
	Normal:  "-- NORMAL --",
	Command: "-- COMMAND --",
	Filter:  "-- FILTER --",
}

// prompt is the character shown in front of the status bar input
var prompt = map[Mode]string{
	Command: ":",
	Filter:  "/",
}

var colour = map[Mode]color.Color{
	Normal:  lipgloss.NoColor{},
	Command: lipgloss.NoColor{},
	Filter:  lipgloss.Color("#b7b27b"),
}

func (m Mode) String() string {
	return modeName[m]
}

func (m Mode) FullString() string {
	return fullName[m]
}

func (m Mode) Colour() color.Color {
	return colour[m]
}

// Prompt returns the prompt character of input modes
func (m Mode) Prompt() string {
	return prompt[m]
}

// IsPrompt reports whether the mode reads its input from the status bar
func (m Mode) IsPrompt() bool {
	_, ok := prompt[m]
	return ok
}
