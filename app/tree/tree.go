package tree

import (
	"path/filepath"
	"strings"

	"thicket/app/debug"
	"thicket/app/directories"
	"thicket/app/utils"
)

// maxLines caps the amount of lines a single tree holds so that
// focusing a huge directory doesn't stall the UI
const maxLines = 10_000

// Options control which entries end up in a tree
type Options struct {
	ShowHidden  bool
	OnlyFolders bool

	// MaxDepth is the number of directory levels below the root
	// that are read. Values below 1 are treated as 1.
	MaxDepth int
}

func DefaultOptions() Options {
	return Options{MaxDepth: 2}
}

// Line is a single row of a tree
type Line struct {
	Path  string
	Name  string
	Depth int
	IsDir bool

	// Matched is set on lines of a filtered tree that
	// match the pattern themselves rather than being an ancestor
	Matched bool
}

// Tree is a flattened, depth-first view of a directory.
// The root is always the first line.
type Tree struct {
	Root      string
	Lines     []Line
	Selection int

	// Truncated is set if the tree hit the line limit
	Truncated bool
}

// Build reads root and its children up to opts.MaxDepth.
// Only an unreadable root is an error, unreadable sub directories
// are left empty.
func Build(root string, opts Options) (*Tree, error) {
	root = filepath.Clean(root)

	entries, err := directories.List(root, opts.ShowHidden, opts.OnlyFolders)
	if err != nil {
		return nil, err
	}

	t := &Tree{Root: root}
	t.Lines = append(t.Lines, Line{
		Path:  root,
		Name:  utils.DisplayPath(root),
		Depth: 0,
		IsDir: true,
	})

	t.appendEntries(entries, 1, max(opts.MaxDepth, 1), opts)
	return t, nil
}

func (t *Tree) appendEntries(
	entries []directories.Entry,
	depth int,
	maxDepth int,
	opts Options,
) {
	for _, entry := range entries {
		if len(t.Lines) >= maxLines {
			t.Truncated = true
			return
		}

		t.Lines = append(t.Lines, Line{
			Path:  entry.Path,
			Name:  utils.DisplayPath(entry.Name()),
			Depth: depth,
			IsDir: entry.IsDir,
		})

		if !entry.IsDir || depth >= maxDepth {
			continue
		}

		children, err := directories.List(entry.Path, opts.ShowHidden, opts.OnlyFolders)
		if err != nil {
			debug.LogWarn("skipping unreadable directory", entry.Path)
			continue
		}

		t.appendEntries(children, depth+1, maxDepth, opts)
	}
}

// Len returns the amount of lines
func (t *Tree) Len() int {
	return len(t.Lines)
}

// SelectedLine returns the currently selected line or nil if
// the tree is empty
func (t *Tree) SelectedLine() *Line {
	if t == nil || t.Selection < 0 || t.Selection >= len(t.Lines) {
		return nil
	}
	return &t.Lines[t.Selection]
}

// MoveSelection moves the selection by delta lines, clamped to the tree
func (t *Tree) MoveSelection(delta int) {
	if len(t.Lines) == 0 {
		return
	}
	t.Selection = utils.Clamp(t.Selection+delta, 0, len(t.Lines)-1)
}

func (t *Tree) SelectFirst() {
	t.Selection = 0
}

func (t *Tree) SelectLast() {
	t.Selection = max(len(t.Lines)-1, 0)
}

// TrySelectPath selects the line with the given path.
// It returns false and leaves the selection untouched if there's none.
func (t *Tree) TrySelectPath(path string) bool {
	for i := range t.Lines {
		if t.Lines[i].Path == path {
			t.Selection = i
			return true
		}
	}
	return false
}

// Filter returns a new tree containing the lines whose name contains
// pattern (case-insensitive) and all of their ancestors.
// The root is always kept and the first match is selected.
func (t *Tree) Filter(pattern string) *Tree {
	pattern = strings.ToLower(pattern)

	filtered := &Tree{
		Root:      t.Root,
		Truncated: t.Truncated,
	}

	keep := make([]bool, len(t.Lines))
	matched := make([]bool, len(t.Lines))

	// ancestors[d] holds the index of the most recent line at depth d
	ancestors := []int{}

	for i, line := range t.Lines {
		if line.Depth < len(ancestors) {
			ancestors = ancestors[:line.Depth]
		}
		ancestors = append(ancestors, i)

		if i == 0 {
			keep[i] = true
			continue
		}

		if !strings.Contains(strings.ToLower(line.Name), pattern) {
			continue
		}

		matched[i] = true
		for _, a := range ancestors {
			keep[a] = true
		}
	}

	firstMatch := -1
	for i, line := range t.Lines {
		if !keep[i] {
			continue
		}

		line.Matched = matched[i]
		if line.Matched && firstMatch < 0 {
			firstMatch = len(filtered.Lines)
		}

		filtered.Lines = append(filtered.Lines, line)
	}

	filtered.Selection = max(firstMatch, 0)
	return filtered
}
