package nav

import (
	"thicket/app/external"
	"thicket/app/tree"
)

// AppState is one navigation frame: a tree read with a set of options
// and optionally a filtered view of it.
type AppState struct {
	Tree         *tree.Tree
	FilteredTree *tree.Tree
	Options      tree.Options

	// Pattern is the filter the FilteredTree was built from
	Pattern string
}

// NewAppState reads root with the given options
func NewAppState(root string, opts tree.Options) (*AppState, error) {
	t, err := tree.Build(root, opts)
	if err != nil {
		return nil, err
	}

	return &AppState{
		Tree:    t,
		Options: opts,
	}, nil
}

// SelectedLine returns the selection of the filtered tree if there is one
// and falls back to the unfiltered tree.
func (s *AppState) SelectedLine() *tree.Line {
	if s.FilteredTree != nil {
		return s.FilteredTree.SelectedLine()
	}
	return s.Tree.SelectedLine()
}

// DisplayedTree returns the tree that is currently shown
func (s *AppState) DisplayedTree() *tree.Tree {
	if s.FilteredTree != nil {
		return s.FilteredTree
	}
	return s.Tree
}

// SetPattern filters the tree. An empty pattern removes the filter.
func (s *AppState) SetPattern(pattern string) {
	s.Pattern = pattern

	if pattern == "" {
		s.FilteredTree = nil
		return
	}

	s.FilteredTree = s.Tree.Filter(pattern)
}

// CmdResultKind is the closed set of transitions a verb can request
type CmdResultKind int

const (
	PopState CmdResultKind = iota
	NewRoot
	NewOptions
	Launch
	Quit
)

var cmdResultKinds = map[CmdResultKind]string{
	PopState:   "PopState",
	NewRoot:    "NewRoot",
	NewOptions: "NewOptions",
	Launch:     "Launch",
	Quit:       "Quit",
}

func (k CmdResultKind) String() string {
	return cmdResultKinds[k]
}

// CmdResult tells the driver what to do next.
// Only the field belonging to Kind is set.
type CmdResult struct {
	Kind CmdResultKind

	// Path is the new root of a NewRoot result
	Path string

	// Options replace the current options on NewOptions
	Options tree.Options

	// Launchable is handed to the launcher on Launch
	Launchable *external.Launchable
}

func PopStateResult() CmdResult {
	return CmdResult{Kind: PopState}
}

func NewRootResult(path string) CmdResult {
	return CmdResult{Kind: NewRoot, Path: path}
}

func NewOptionsResult(opts tree.Options) CmdResult {
	return CmdResult{Kind: NewOptions, Options: opts}
}

func LaunchResult(l *external.Launchable) CmdResult {
	return CmdResult{Kind: Launch, Launchable: l}
}

func QuitResult() CmdResult {
	return CmdResult{Kind: Quit}
}
