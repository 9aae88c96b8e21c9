package treeview

import (
	"fmt"
	"strings"

	"thicket/app/tree"
	"thicket/app/utils"
	"thicket/tui/theme"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	bl "github.com/winder/bubblelayout"
)

// headerLines is the number of lines above the rows
const headerLines = 1

type styles struct {
	base, indent, selected, matched, header lipgloss.Style
}

func defaultStyles() styles {
	base := lipgloss.NewStyle().Foreground(lipgloss.NoColor{})

	return styles{
		base:     base,
		indent:   base.Foreground(theme.ColourBorder),
		selected: base.Background(theme.ColourBgSelected).Bold(true),
		matched:  base.Foreground(theme.ColourMatch),
		header:   base.Foreground(theme.ColourDim).Bold(true),
	}
}

// TreeView renders the displayed tree of a navigation frame
type TreeView struct {
	ID   bl.ID
	Size bl.Size

	NerdFonts   bool
	IndentLines bool

	viewport viewport.Model
	styles   styles
}

func New(nerdFonts bool, indentLines bool) *TreeView {
	vp := viewport.New()
	vp.KeyMap = viewport.KeyMap{}

	return &TreeView{
		NerdFonts:   nerdFonts,
		IndentLines: indentLines,
		viewport:    vp,
		styles:      defaultStyles(),
	}
}

// SetSize resizes the column
func (t *TreeView) SetSize(size bl.Size) {
	t.Size = size
	w, h := theme.InnerSize(size)
	t.viewport.SetWidth(w)
	t.viewport.SetHeight(max(h-headerLines, 0))
}

// View renders tr with its selection scrolled into view
func (t *TreeView) View(tr *tree.Tree, focused bool) string {
	width, _ := theme.InnerSize(t.Size)

	t.viewport.SetContent(t.rows(tr, width))
	t.viewport.EnsureVisible(tr.Selection, 0, 0)

	header := t.header(tr, width)

	return theme.BaseColumnLayout(focused).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, t.viewport.View()),
	)
}

func (t *TreeView) header(tr *tree.Tree, width int) string {
	title := utils.DisplayPath(tr.Root)
	if tr.Truncated {
		title = fmt.Sprintf("%s (%d+)", title, tr.Len())
	}
	return t.styles.header.Render(fit(title, width))
}

func (t *TreeView) rows(tr *tree.Tree, width int) string {
	var out strings.Builder

	for i, line := range tr.Lines {
		if i > 0 {
			out.WriteByte('\n')
		}

		indent := t.indent(line.Depth)
		row := fit(t.icon(line)+" "+line.Name, max(width-runewidth.StringWidth(indent), 0))

		style := t.styles.base
		switch {
		case i == tr.Selection:
			style = t.styles.selected
		case line.Matched:
			style = t.styles.matched
		}

		out.WriteString(t.styles.indent.Render(indent))
		out.WriteString(style.Render(row))
	}

	return out.String()
}

// indent returns the prefix for a line at depth
func (t *TreeView) indent(depth int) string {
	if depth <= 1 {
		return strings.Repeat("  ", depth)
	}

	unit := "  "
	if t.IndentLines {
		unit = "│ "
	}

	return "  " + strings.Repeat(unit, depth-1)
}

func (t *TreeView) icon(line tree.Line) string {
	if line.IsDir {
		return theme.IconString(theme.IconDir, t.NerdFonts)
	}
	return theme.IconString(theme.IconFile, t.NerdFonts)
}

// fit truncates s to width cells and pads it so that the selection
// background spans the whole row
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}

	s = ansi.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}
