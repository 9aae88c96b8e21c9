package verbs_test

import (
	"errors"
	"testing"

	"thicket/app/external"
	"thicket/app/nav"
	"thicket/app/tree"
	"thicket/app/verbs"

	"github.com/google/go-cmp/cmp"
)

// recordingLauncher counts calls and returns the configured results
type recordingLauncher struct {
	calls int
	lines []string
	err   error
}

func (r *recordingLauncher) Opener(path string) (*external.Launchable, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &external.Launchable{Kind: external.Open, Path: path}, nil
}

func (r *recordingLauncher) Command(line string) (*external.Launchable, error) {
	r.calls++
	r.lines = append(r.lines, line)
	if r.err != nil {
		return nil, r.err
	}
	return external.FromCommand(line)
}

func TestExecuteBuiltins(t *testing.T) {
	tests := []struct {
		pattern string
		kind    nav.CmdResultKind
	}{
		{":back", nav.PopState},
		{":focus", nav.NewRoot},
		{":toggle_hidden", nav.NewOptions},
		{":parent", nav.NewRoot},
		{":quit", nav.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			launcher := &recordingLauncher{}
			exec := verbs.NewExecutor(launcher)

			res, err := exec.Execute(verbs.New("v", tt.pattern), stateAt("/a/b"))
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			if res.Kind != tt.kind {
				t.Errorf("Expected %s, got %s", tt.kind, res.Kind)
			}

			if launcher.calls != 0 {
				t.Errorf("Expected launcher not to be called, got %d calls", launcher.calls)
			}
		})
	}
}

func TestExecuteFocus(t *testing.T) {
	res, err := verbs.New("focus", ":focus").Execute(stateAt("/a/b"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Kind != nav.NewRoot || res.Path != "/a/b" {
		t.Errorf("Expected NewRoot '/a/b', got %s '%s'", res.Kind, res.Path)
	}
}

func TestExecuteParent(t *testing.T) {
	res, err := verbs.New("parent", ":parent").Execute(stateAt("/a/b"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Kind != nav.NewRoot || res.Path != "/a" {
		t.Errorf("Expected NewRoot '/a', got %s '%s'", res.Kind, res.Path)
	}
}

func TestExecuteParentOfRoot(t *testing.T) {
	_, err := verbs.New("parent", ":parent").Execute(stateAt("/"))

	if !errors.Is(err, verbs.ErrNoParent) {
		t.Errorf("Expected ErrNoParent, got %v", err)
	}
}

func TestExecuteNoSelection(t *testing.T) {
	state := &nav.AppState{Tree: &tree.Tree{Root: "/a"}}
	launcher := &recordingLauncher{}

	_, err := verbs.NewExecutor(launcher).Execute(verbs.New("edit", "vi {file}"), state)

	if !errors.Is(err, verbs.ErrNoSelection) {
		t.Errorf("Expected ErrNoSelection, got %v", err)
	}
	if launcher.calls != 0 {
		t.Errorf("Expected launcher not to be called, got %d calls", launcher.calls)
	}
}

func TestExecuteUsesFilteredSelection(t *testing.T) {
	state := stateAt("/a")
	state.FilteredTree = &tree.Tree{
		Root: "/a",
		Lines: []tree.Line{
			{Path: "/a", Name: "a", IsDir: true},
			{Path: "/a/match", Name: "match", Depth: 1},
		},
		Selection: 1,
	}

	res, err := verbs.New("focus", ":focus").Execute(state)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Path != "/a/match" {
		t.Errorf("Expected filtered selection '/a/match', got '%s'", res.Path)
	}
}

func TestToggleHiddenCopiesOptions(t *testing.T) {
	state := stateAt("/a")
	state.Options = tree.Options{ShowHidden: false, OnlyFolders: true, MaxDepth: 3}
	original := state.Options

	toggle := verbs.New("hidden", ":toggle_hidden")

	first, err := toggle.Execute(state)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !first.Options.ShowHidden {
		t.Error("Expected ShowHidden to be flipped")
	}

	if diff := cmp.Diff(original, state.Options); diff != "" {
		t.Errorf("Expected state options to be unchanged (-want +got):\n%s", diff)
	}

	next := stateAt("/a")
	next.Options = first.Options

	second, err := toggle.Execute(next)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if diff := cmp.Diff(original, second.Options); diff != "" {
		t.Errorf("Expected toggling twice to restore options (-want +got):\n%s", diff)
	}
}

func TestExecuteOpen(t *testing.T) {
	store := verbs.NewStore()
	store.Insert("o", verbs.New("open", ":open"))

	v, ok := store.Get("o")
	if !ok {
		t.Fatal("Expected verb 'o'")
	}

	res, err := v.Execute(stateAt("/tmp/x"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Kind != nav.Launch {
		t.Fatalf("Expected Launch, got %s", res.Kind)
	}

	if res.Launchable.Kind != external.Open || res.Launchable.Path != "/tmp/x" {
		t.Errorf("Expected open request for '/tmp/x', got %s '%s'",
			res.Launchable.Kind, res.Launchable.Path)
	}
}

func TestExecuteTemplate(t *testing.T) {
	store := verbs.NewStore()
	store.Insert("e", verbs.New("edit", "edit {file}"))

	v, _ := store.Get("e")
	launcher := &recordingLauncher{}

	res, err := verbs.NewExecutor(launcher).Execute(v, stateAt("/tmp/x.txt"))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if diff := cmp.Diff([]string{"edit /tmp/x.txt"}, launcher.lines); diff != "" {
		t.Errorf("Resolved command mismatch (-want +got):\n%s", diff)
	}

	want := &external.Launchable{
		Kind: external.Program,
		Exe:  "edit",
		Args: []string{"/tmp/x.txt"},
	}

	if res.Kind != nav.Launch || !res.Launchable.Equal(want) {
		t.Errorf("Expected Launch of %s, got %s %v", want, res.Kind, res.Launchable)
	}
}

func TestExecuteLauncherErrorPropagates(t *testing.T) {
	failure := errors.New("no handler")
	launcher := &recordingLauncher{err: failure}
	exec := verbs.NewExecutor(launcher)

	for _, pattern := range []string{":open", "vi {file}"} {
		_, err := exec.Execute(verbs.New("v", pattern), stateAt("/tmp/x"))
		if err != failure {
			t.Errorf("Expected launcher error for '%s', got %v", pattern, err)
		}
	}
}

func TestExecuteEmptyCommand(t *testing.T) {
	_, err := verbs.New("blank", "   ").Execute(stateAt("/tmp/x"))

	if !errors.Is(err, external.ErrEmptyCommand) {
		t.Errorf("Expected ErrEmptyCommand, got %v", err)
	}

	var launchErr *external.LaunchError
	if !errors.As(err, &launchErr) {
		t.Errorf("Expected a LaunchError, got %T", err)
	}
}

func TestExecuteUnbalancedQuotes(t *testing.T) {
	_, err := verbs.New("broken", "vi '{file}").Execute(stateAt("/tmp/x"))

	var launchErr *external.LaunchError
	if !errors.As(err, &launchErr) {
		t.Errorf("Expected a LaunchError, got %v", err)
	}
}
