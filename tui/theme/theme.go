package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
	"golang.org/x/term"
)

var (
	ColourBorder        = lipgloss.Color("#424B5D")
	ColourBorderFocused = lipgloss.Color("#69c8dc")
	ColourBgSelected    = lipgloss.Color("#3d4452")
	ColourMatch         = lipgloss.Color("#b7b27b")
	ColourDim           = lipgloss.Color("#6c7386")
	ColourFg            = lipgloss.NoColor{}
	BorderStyle         = lipgloss.RoundedBorder()
)

type Icon int

const (
	IconDir Icon = iota
	IconFile
	IconVerb
	IconBuiltin
)

// icons holds the nerd font glyph and a plain fallback for every icon
var icons = map[Icon][2]string{
	IconDir:     {"\uf07b", "▸"},
	IconFile:    {"\uf15b", "·"},
	IconVerb:    {"\uf054", ">"},
	IconBuiltin: {"\uf0e7", "*"},
}

// IconString returns the glyph of an icon
func IconString(icon Icon, nerdFonts bool) string {
	if nerdFonts {
		return icons[icon][0]
	}
	return icons[icon][1]
}

// BaseColumnLayout provides the basic layout style for a column.
// The border is drawn around the content, so the content has to be
// two cells smaller than the column in both directions.
func BaseColumnLayout(focused bool) lipgloss.Style {
	borderColour := ColourBorder
	if focused {
		borderColour = ColourBorderFocused
	}

	return lipgloss.NewStyle().
		Border(BorderStyle).
		BorderForeground(borderColour).
		Foreground(ColourFg)
}

// InnerSize returns the space left inside a bordered column
func InnerSize(size bl.Size) (int, int) {
	return max(size.Width-2, 0), max(size.Height-2, 0)
}

// TerminalSize determines the current terminal size providing
// a fallback if stdout isn't a terminal
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return width, height
}

// IsTerminal reports whether stdin and stdout are attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}
