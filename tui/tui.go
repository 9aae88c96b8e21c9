package tui

import (
	"errors"
	"fmt"

	"thicket/app/config"
	"thicket/app/debug"
	"thicket/app/external"
	"thicket/app/nav"
	"thicket/app/state"
	"thicket/app/tree"
	"thicket/app/utils"
	"thicket/app/utils/clipboard"
	"thicket/app/verbs"
	"thicket/tui/components/details"
	"thicket/tui/components/statusbar"
	"thicket/tui/components/treeview"
	"thicket/tui/keyinput"
	"thicket/tui/message"
	"thicket/tui/mode"
	"thicket/tui/theme"
	"thicket/tui/watcher"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	bl "github.com/winder/bubblelayout"
)

// Options configure a new Model
type Options struct {
	Root string
	Tree tree.Options

	Store    *verbs.Store
	Launcher verbs.Launcher

	// History is optional, a nil history keeps prompts in memory only
	History *state.State

	// Watcher is optional, nil disables refreshing on changes
	Watcher *watcher.Watcher

	NerdFonts   bool
	IndentLines bool
}

// OptionsFromConfig fills the display and tree options from conf
func OptionsFromConfig(conf *config.Config) Options {
	return Options{
		Tree: tree.Options{
			ShowHidden:  conf.Bool(config.General, config.ShowHidden),
			OnlyFolders: conf.Bool(config.General, config.OnlyFolders),
			MaxDepth:    conf.MaxDepth(),
		},
		NerdFonts:   conf.NerdFonts(),
		IndentLines: conf.Bool(config.Tree, config.IndentLines),
	}
}

// launchFinishedMsg is sent after an external process exited
type launchFinishedMsg struct {
	launchable *external.Launchable
	err        error
}

// Model is the Bubble Tea model for the TUI.
// It owns a stack of navigation frames, the top one is displayed.
type Model struct {
	layout bl.BubbleLayout

	frames []*nav.AppState

	store    *verbs.Store
	executor verbs.Executor
	history  *state.State
	watcher  *watcher.Watcher

	mode     mode.Mode
	keyInput *keyinput.Input

	treeView  *treeview.TreeView
	details   *details.Details
	statusBar *statusbar.StatusBar

	// cmd is set by key actions that need to run a command
	cmd tea.Cmd

	quitting bool
}

// New reads the initial frame and sets up the components
func New(opts Options) (*Model, error) {
	root, err := nav.NewAppState(opts.Root, opts.Tree)
	if err != nil {
		return nil, err
	}

	if opts.Store == nil {
		opts.Store = verbs.NewStore()
	}

	if opts.Launcher == nil {
		opts.Launcher = external.System{}
	}

	if opts.History == nil {
		opts.History = state.NewWithFile("")
	}

	m := &Model{
		layout:    bl.New(),
		frames:    []*nav.AppState{root},
		store:     opts.Store,
		executor:  verbs.NewExecutor(opts.Launcher),
		history:   opts.History,
		watcher:   opts.Watcher,
		mode:      mode.Normal,
		keyInput:  keyinput.New(),
		treeView:  treeview.New(opts.NerdFonts, opts.IndentLines),
		details:   details.New(opts.NerdFonts),
		statusBar: statusbar.New(),
	}

	m.treeView.ID = m.layout.Add("grow")
	m.details.ID = m.layout.Add("width 40")

	m.keyInput.Bind(m.KeyInputFn())

	m.watchCurrent()
	m.updateInfo()

	return m, nil
}

func (m *Model) Init() tea.Cmd {
	width, height := theme.TerminalSize()
	m.statusBar.Width = width

	cmds := []tea.Cmd{
		func() tea.Msg {
			return m.layout.Resize(width, max(height-1, 1))
		},
	}

	if m.watcher != nil {
		cmds = append(cmds, m.watcher.Wait())
	}

	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg.String(), msg))

	case tea.WindowSizeMsg:
		m.statusBar.Width = msg.Width

		// Convert WindowSizeMsg to BubbleLayoutMsg,
		// one line is reserved for the status bar
		return m, func() tea.Msg {
			return m.layout.Resize(msg.Width, max(msg.Height-1, 1))
		}

	case bl.BubbleLayoutMsg:
		treeSize, _ := msg.Size(m.treeView.ID)
		detailsSize, _ := msg.Size(m.details.ID)
		m.treeView.SetSize(treeSize)
		m.details.SetSize(detailsSize)

	case watcher.RefreshMsg:
		if err := m.refresh(); err != nil {
			m.statusBar.SetMessage(message.NewError(err))
		}
		cmds = append(cmds, m.watcher.Wait())

	case launchFinishedMsg:
		if msg.err != nil {
			debug.LogErr("launch failed:", msg.launchable, msg.err)
			m.statusBar.SetMessage(message.NewError(msg.err))
		} else if err := m.refresh(); err != nil {
			m.statusBar.SetMessage(message.NewError(err))
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the TUI layout
func (m *Model) View() tea.View {
	var view tea.View

	if m.quitting {
		view.SetContent("")
		return view
	}

	frame := m.current()

	view.SetContent(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.treeView.View(frame.DisplayedTree(), true),
			m.details.View(frame.SelectedLine(), m.store),
		),
		m.statusBar.View(),
	))

	return view
}

// handleKey resolves a key press. Prompt modes forward unbound keys
// to the status bar input, normal mode looks them up as verbs.
func (m *Model) handleKey(key string, msg tea.Msg) tea.Cmd {
	if key == "ctrl+c" {
		return m.quit()
	}

	m.cmd = nil
	statusMsg, handled := m.keyInput.Handle(key)

	if !statusMsg.Empty() {
		m.statusBar.SetMessage(statusMsg)
	}

	if handled {
		return m.cmd
	}

	switch m.mode {
	case mode.Normal:
		return m.runVerb(key)

	case mode.Filter:
		cmd := m.statusBar.Update(msg)
		m.current().SetPattern(m.statusBar.Value())
		m.updateInfo()
		return cmd

	default:
		return m.statusBar.Update(msg)
	}
}

// current returns the displayed frame
func (m *Model) current() *nav.AppState {
	return m.frames[len(m.frames)-1]
}

// Depth returns the number of frames on the stack
func (m *Model) Depth() int {
	return len(m.frames)
}

// runVerb executes the verb bound to key against the current frame
func (m *Model) runVerb(key string) tea.Cmd {
	v, ok := m.store.Get(key)
	if !ok {
		m.statusBar.SetMessage(message.StatusBarMsg{
			Content: fmt.Sprintf(message.StatusBar.UnknownVerb, key),
			Type:    message.Error,
		})
		return nil
	}

	res, err := m.executor.Execute(v, m.current())
	if err != nil {
		debug.LogErr("verb", v.Name(), err)
		m.statusBar.SetMessage(message.NewError(err))
		return nil
	}

	debug.LogDebug("verb", v.Name(), "->", res.Kind)
	return m.applyResult(res)
}

// applyResult performs the transition a verb asked for
func (m *Model) applyResult(res nav.CmdResult) tea.Cmd {
	switch res.Kind {
	case nav.PopState:
		if len(m.frames) <= 1 {
			return m.quit()
		}
		m.frames = m.frames[:len(m.frames)-1]

	case nav.NewRoot:
		frame, err := nav.NewAppState(res.Path, m.current().Options)
		if err != nil {
			m.statusBar.SetMessage(message.NewError(err))
			return nil
		}
		m.frames = append(m.frames, frame)

	case nav.NewOptions:
		cur := m.current()

		frame, err := nav.NewAppState(cur.Tree.Root, res.Options)
		if err != nil {
			m.statusBar.SetMessage(message.NewError(err))
			return nil
		}

		if line := cur.SelectedLine(); line != nil {
			frame.Tree.TrySelectPath(line.Path)
		}
		m.frames = append(m.frames, frame)

	case nav.Launch:
		l := res.Launchable
		return tea.ExecProcess(l.Cmd(), func(err error) tea.Msg {
			return launchFinishedMsg{launchable: l, err: err}
		})

	case nav.Quit:
		return m.quit()
	}

	m.statusBar.SetMessage(message.StatusBarMsg{})
	m.watchCurrent()
	m.updateInfo()
	return nil
}

// refresh rebuilds the current frame keeping its selection and filter
func (m *Model) refresh() error {
	cur := m.current()

	frame, err := nav.NewAppState(cur.Tree.Root, cur.Options)
	if err != nil {
		return err
	}

	if line := cur.Tree.SelectedLine(); line != nil {
		frame.Tree.TrySelectPath(line.Path)
	}

	if cur.Pattern != "" {
		frame.SetPattern(cur.Pattern)
		if line := cur.SelectedLine(); line != nil {
			frame.FilteredTree.TrySelectPath(line.Path)
		}
	}

	m.frames[len(m.frames)-1] = frame
	m.watchCurrent()
	m.updateInfo()
	return nil
}

// watchCurrent watches every directory of the current frame whose
// children are shown
func (m *Model) watchCurrent() {
	if m.watcher == nil {
		return
	}

	cur := m.current()
	maxDepth := max(cur.Options.MaxDepth, 1)

	var dirs []string
	for _, line := range cur.Tree.Lines {
		if line.IsDir && line.Depth < maxDepth {
			dirs = append(dirs, line.Path)
		}
	}

	m.watcher.Watch(dirs...)
}

func (m *Model) updateInfo() {
	m.statusBar.Info = fmt.Sprintf("%d/%d", m.current().DisplayedTree().Len(), m.Depth())
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true

	if err := m.history.Write(); err != nil {
		debug.LogErr(err)
	}

	return tea.Quit
}

func (m *Model) setMode(md mode.Mode) {
	m.mode = md
	m.keyInput.SetMode(md)
}

func (m *Model) lineDown() message.StatusBarMsg {
	m.current().DisplayedTree().MoveSelection(1)
	return message.StatusBarMsg{}
}

func (m *Model) lineUp() message.StatusBarMsg {
	m.current().DisplayedTree().MoveSelection(-1)
	return message.StatusBarMsg{}
}

func (m *Model) goToTop() message.StatusBarMsg {
	m.current().DisplayedTree().SelectFirst()
	return message.StatusBarMsg{}
}

func (m *Model) goToBottom() message.StatusBarMsg {
	m.current().DisplayedTree().SelectLast()
	return message.StatusBarMsg{}
}

// enter focuses the selected directory
func (m *Model) enter() message.StatusBarMsg {
	line := m.current().SelectedLine()
	if line == nil || !line.IsDir {
		return message.StatusBarMsg{}
	}

	m.cmd = m.applyResult(nav.NewRootResult(line.Path))
	return message.StatusBarMsg{}
}

// reload reads the current root again
func (m *Model) reload() message.StatusBarMsg {
	if err := m.refresh(); err != nil {
		return message.NewError(err)
	}
	return message.NewSuccess(fmt.Sprintf(message.StatusBar.Refreshed, utils.DisplayPath(m.current().Tree.Root)))
}

func (m *Model) yank() message.StatusBarMsg {
	line := m.current().SelectedLine()
	if line == nil {
		return message.StatusBarMsg{}
	}

	if err := clipboard.Write(line.Path); err != nil {
		if errors.Is(err, clipboard.ErrNotInitialized) {
			return message.StatusBarMsg{Content: message.StatusBar.NoClipboard, Type: message.Error}
		}
		return message.NewError(err)
	}

	return message.NewSuccess(fmt.Sprintf(message.StatusBar.Yanked, line.Path))
}

func (m *Model) enterCmdMode() message.StatusBarMsg {
	m.history.ResetCursor(state.Command)
	m.setMode(mode.Command)
	m.cmd = m.statusBar.OpenPrompt(mode.Command)
	return message.StatusBarMsg{}
}

func (m *Model) enterFilterMode() message.StatusBarMsg {
	m.history.ResetCursor(state.Filter)
	m.setMode(mode.Filter)
	m.cmd = m.statusBar.OpenPrompt(mode.Filter)
	m.statusBar.SetValue(m.current().Pattern)
	return message.StatusBarMsg{}
}

// confirmCommand runs the verb whose invocation was typed into the prompt
func (m *Model) confirmCommand() message.StatusBarMsg {
	key := m.statusBar.ClosePrompt()
	m.setMode(mode.Normal)

	if key == "" {
		return message.StatusBarMsg{}
	}

	m.history.Append(state.NewEntry(state.Command, key))
	m.cmd = m.runVerb(key)
	return message.StatusBarMsg{}
}

// confirmFilter keeps the filter and returns to normal mode
func (m *Model) confirmFilter() message.StatusBarMsg {
	pattern := m.statusBar.ClosePrompt()
	m.setMode(mode.Normal)

	m.history.Append(state.NewEntry(state.Filter, pattern))
	m.current().SetPattern(pattern)
	m.updateInfo()
	return message.StatusBarMsg{}
}

func (m *Model) cancelPrompt() message.StatusBarMsg {
	m.statusBar.ClosePrompt()
	m.setMode(mode.Normal)
	return message.StatusBarMsg{}
}

func (m *Model) cancelFilter() message.StatusBarMsg {
	m.cancelPrompt()
	return m.clearFilter()
}

func (m *Model) clearFilter() message.StatusBarMsg {
	m.current().SetPattern("")
	m.updateInfo()
	return message.StatusBarMsg{}
}

func (m *Model) historyType() state.HistoryType {
	if m.mode == mode.Filter {
		return state.Filter
	}
	return state.Command
}

func (m *Model) historyOlder() message.StatusBarMsg {
	return m.cycleHistory(true)
}

func (m *Model) historyNewer() message.StatusBarMsg {
	return m.cycleHistory(false)
}

func (m *Model) cycleHistory(older bool) message.StatusBarMsg {
	entry, ok := m.history.Cycle(m.historyType(), older)

	value := ""
	if ok {
		value = entry.Content()
	}

	m.statusBar.SetValue(value)
	if m.mode == mode.Filter {
		m.current().SetPattern(value)
	}

	return message.StatusBarMsg{}
}
