package verbs

import (
	"errors"
	"path/filepath"

	"thicket/app/debug"
	"thicket/app/external"
	"thicket/app/nav"
)

var (
	// ErrNoSelection is returned if the state has no selected line
	ErrNoSelection = errors.New("no selection")

	// ErrNoParent is returned by :parent on a filesystem root
	ErrNoParent = errors.New("selection has no parent directory")
)

// Launcher builds launch requests without starting anything
type Launcher interface {
	Opener(path string) (*external.Launchable, error)
	Command(line string) (*external.Launchable, error)
}

// Executor turns a verb and the current state into the next transition
type Executor struct {
	launcher Launcher
}

func NewExecutor(l Launcher) Executor {
	return Executor{launcher: l}
}

// Execute runs v with the system launcher
func (v Verb) Execute(state *nav.AppState) (nav.CmdResult, error) {
	return NewExecutor(external.System{}).Execute(v, state)
}

// Execute decides what the application has to do for v.
// It never touches state, the file system or any process. Errors of
// the launcher are returned unchanged.
func (e Executor) Execute(v Verb, state *nav.AppState) (nav.CmdResult, error) {
	line := state.SelectedLine()
	if line == nil {
		return nav.CmdResult{}, ErrNoSelection
	}

	path := line.Path

	switch v.Kind() {
	case Back:
		return nav.PopStateResult(), nil

	case Focus:
		return nav.NewRootResult(path), nil

	case ToggleHidden:
		opts := state.Options
		opts.ShowHidden = !opts.ShowHidden
		return nav.NewOptionsResult(opts), nil

	case Open:
		l, err := e.launcher.Opener(path)
		if err != nil {
			return nav.CmdResult{}, err
		}
		return nav.LaunchResult(l), nil

	case Parent:
		parent := filepath.Dir(path)
		if parent == path {
			return nav.CmdResult{}, ErrNoParent
		}
		return nav.NewRootResult(parent), nil

	case Quit:
		return nav.QuitResult(), nil
	}

	cmdLine := Substitute(v.ExecPattern(), path)
	debug.LogDebug("verb", v.Name(), "resolved to", cmdLine)

	l, err := e.launcher.Command(cmdLine)
	if err != nil {
		return nav.CmdResult{}, err
	}

	return nav.LaunchResult(l), nil
}
