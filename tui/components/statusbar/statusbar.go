package statusbar

import (
	"strings"

	"thicket/app/utils"
	"thicket/tui/message"
	"thicket/tui/mode"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// infoWidth is the width of the right column
const infoWidth = 30

// StatusBar represents the bottom bar UI component that displays messages,
// input prompts, and application mode information.
type StatusBar struct {
	Width int

	Content string
	Type    message.Type
	Prompt  textinput.Model

	// The current mode, prompt modes show the input
	Mode mode.Mode

	// Info is shown right aligned, e.g. the frame depth
	Info string
}

// New creates and returns a new StatusBar with default settings.
func New() *StatusBar {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 256
	ti.VirtualCursor = true

	return &StatusBar{
		Prompt: ti,
	}
}

// SetMessage replaces the message shown in the general column
func (sb *StatusBar) SetMessage(msg message.StatusBarMsg) {
	sb.Content = msg.Content
	sb.Type = msg.Type
}

// OpenPrompt switches to a prompt mode and focuses the input
func (sb *StatusBar) OpenPrompt(m mode.Mode) tea.Cmd {
	sb.Mode = m
	sb.Content = ""
	sb.Type = message.Prompt
	sb.Prompt.Prompt = m.Prompt()
	sb.Prompt.Reset()
	return sb.Prompt.Focus()
}

// ClosePrompt leaves the prompt mode and returns the last input
func (sb *StatusBar) ClosePrompt() string {
	value := sb.Prompt.Value()

	sb.Mode = mode.Normal
	sb.Prompt.Blur()
	sb.Prompt.Reset()

	if sb.Type == message.Prompt {
		sb.Type = message.Success
	}

	return value
}

// Value returns the current prompt input
func (sb *StatusBar) Value() string {
	return sb.Prompt.Value()
}

// SetValue replaces the prompt input and moves the cursor to its end
func (sb *StatusBar) SetValue(value string) {
	sb.Prompt.SetValue(value)
	sb.Prompt.CursorEnd()
}

// Update forwards key presses to the prompt while it's focused
func (sb *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if !sb.Prompt.Focused() {
		return nil
	}

	var cmd tea.Cmd
	sb.Prompt, cmd = sb.Prompt.Update(msg)
	return cmd
}

// View renders the StatusBar as a string
func (sb *StatusBar) View() string {
	style := lipgloss.NewStyle()

	colGeneral := sb.Content
	if sb.Mode.IsPrompt() {
		colGeneral = strings.TrimSpace(sb.Prompt.View())
	} else if colGeneral == "" {
		colGeneral = sb.ModeView()
	}

	wInfo := min(infoWidth, max(sb.Width/3, 0))
	wGeneral := max(sb.Width-wInfo, 1)

	colInfo := utils.TruncateText(sb.Info, max(wInfo-1, 0))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Width(wGeneral).MaxHeight(1).Foreground(sb.Type.Colour()).Render(colGeneral),
		style.Width(wInfo).Align(lipgloss.Right).PaddingRight(1).Render(colInfo),
	)
}

// ModeView returns the rendered mode string
func (sb *StatusBar) ModeView() string {
	return lipgloss.NewStyle().
		Foreground(sb.Mode.Colour()).
		PaddingLeft(1).
		PaddingRight(1).
		Render(sb.Mode.FullString())
}
