package details

import (
	"fmt"
	"strings"

	"thicket/app/tree"
	"thicket/app/utils"
	"thicket/app/verbs"
	"thicket/tui/theme"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	bl "github.com/winder/bubblelayout"
)

// keyColumnWidth is the width of the invocation column of the verb table
const keyColumnWidth = 4

// Details shows the selected entry and the verbs that can be run on it
type Details struct {
	ID   bl.ID
	Size bl.Size

	NerdFonts bool

	title lipgloss.Style
	dim   lipgloss.Style
}

func New(nerdFonts bool) *Details {
	base := lipgloss.NewStyle().Foreground(lipgloss.NoColor{})

	return &Details{
		NerdFonts: nerdFonts,
		title:     base.Bold(true),
		dim:       base.Foreground(theme.ColourDim),
	}
}

func (d *Details) SetSize(size bl.Size) {
	d.Size = size
}

// View renders the details of line and the verb table.
// A nil line renders the verbs only.
func (d *Details) View(line *tree.Line, store *verbs.Store) string {
	width, height := theme.InnerSize(d.Size)

	var lines []string

	if line != nil {
		kind := "file"
		if line.IsDir {
			kind = "directory"
		}

		lines = append(lines, d.title.Render(utils.TruncateText(line.Name, width)))
		lines = append(lines, d.dim.Render(kind))
		lines = append(lines, strings.Split(wrap.String(utils.DisplayPath(line.Path), max(width, 1)), "\n")...)
		lines = append(lines, "")
	}

	lines = append(lines, d.title.Render("verbs"))
	lines = append(lines, VerbRows(store, width, d.NerdFonts)...)

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))

	return theme.BaseColumnLayout(false).Render(content)
}

// VerbRows formats the registry as aligned rows of invocation key,
// name and execution pattern, cut to width cells.
// A width below 1 leaves rows uncut.
func VerbRows(store *verbs.Store, width int, nerdFonts bool) []string {
	keys := store.Keys()

	nameWidth := 0
	for _, key := range keys {
		v, _ := store.Get(key)
		nameWidth = max(nameWidth, runewidth.StringWidth(v.Name()))
	}

	rows := make([]string, 0, len(keys))

	for _, key := range keys {
		v, _ := store.Get(key)

		icon := theme.IconString(theme.IconVerb, nerdFonts)
		if v.Kind().IsBuiltin() {
			icon = theme.IconString(theme.IconBuiltin, nerdFonts)
		}

		row := fmt.Sprintf("%s %s %s %s",
			icon,
			padding.String(key, keyColumnWidth),
			padding.String(v.Name(), uint(nameWidth)),
			v.ExecPattern(),
		)

		if width > 0 {
			row = truncate.StringWithTail(row, uint(width), "…")
		}

		rows = append(rows, strings.TrimRight(row, " "))
	}

	return rows
}
