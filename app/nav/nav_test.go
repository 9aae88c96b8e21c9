package nav_test

import (
	"os"
	"path/filepath"
	"testing"

	"thicket/app/nav"
	"thicket/app/tree"
)

func TestSelectedLinePrefersFilteredTree(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"alpha.txt", "beta.txt"} {
		if err := os.WriteFile(filepath.Join(root, f), nil, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	state, err := nav.NewAppState(root, tree.DefaultOptions())
	if err != nil {
		t.Fatalf("NewAppState failed: %v", err)
	}

	if sel := state.SelectedLine(); sel.Path != root {
		t.Fatalf("Expected root to be selected, got '%s'", sel.Path)
	}

	state.SetPattern("beta")

	if sel := state.SelectedLine(); sel.Name != "beta.txt" {
		t.Errorf("Expected filtered selection 'beta.txt', got '%s'", sel.Name)
	}

	if state.DisplayedTree() != state.FilteredTree {
		t.Error("Expected the filtered tree to be displayed")
	}

	state.SetPattern("")

	if state.FilteredTree != nil {
		t.Error("Expected an empty pattern to remove the filter")
	}
	if sel := state.SelectedLine(); sel.Path != root {
		t.Errorf("Expected unfiltered selection to be root, got '%s'", sel.Path)
	}
}

func TestCmdResultKindString(t *testing.T) {
	tests := map[nav.CmdResultKind]string{
		nav.PopState:   "PopState",
		nav.NewRoot:    "NewRoot",
		nav.NewOptions: "NewOptions",
		nav.Launch:     "Launch",
		nav.Quit:       "Quit",
	}

	for kind, want := range tests {
		if kind.String() != want {
			t.Errorf("Expected '%s', got '%s'", want, kind.String())
		}
	}
}
