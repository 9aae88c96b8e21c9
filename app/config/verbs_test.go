package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"thicket/app/config"

	"github.com/google/go-cmp/cmp"
)

func TestParseVerbs(t *testing.T) {
	data := []byte(`{
		// object and array entries can be mixed
		"verbs": [
			{"invocation": "o", "name": "open", "execution": ":open"},
			{"invocation": "l", "execution": "less {file}"},
			["t", "tig"],
			["v", "vi {file}", "vim"],
		],
	}`)

	got, err := config.ParseVerbs(data)
	if err != nil {
		t.Fatalf("ParseVerbs failed: %v", err)
	}

	want := []config.VerbEntry{
		{Invocation: "o", Name: "open", Execution: ":open"},
		{Invocation: "l", Name: "less {file}", Execution: "less {file}"},
		{Invocation: "t", Name: "tig", Execution: "tig"},
		{Invocation: "v", Name: "vim", Execution: "vi {file}"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseVerbs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseVerbsInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      `{"verbs": [`,
		"short array": `{"verbs": [["x"]]}`,
		"long array":  `{"verbs": [["x", "y", "z", "w"]]}`,
	}

	for name, data := range tests {
		if _, err := config.ParseVerbs([]byte(data)); err == nil {
			t.Errorf("Expected error for %s", name)
		}
	}
}

func TestLoadVerbsDefaults(t *testing.T) {
	verbs, err := config.LoadVerbs(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadVerbs failed: %v", err)
	}

	byKey := make(map[string]string)
	for _, v := range verbs {
		byKey[v.Invocation] = v.Execution
	}

	want := map[string]string{
		"b": ":back",
		"f": ":focus",
		"h": ":toggle_hidden",
		"o": ":open",
		"p": ":parent",
		"q": ":quit",
		"e": "vi {file}",
	}

	if diff := cmp.Diff(want, byKey); diff != "" {
		t.Errorf("Default verbs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadVerbsBrokenUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	verbs, err := config.LoadVerbs(path)
	if err == nil {
		t.Error("Expected an error for a broken verbs file")
	}

	if len(verbs) == 0 {
		t.Error("Expected default verbs despite the broken file")
	}
}

func TestParseVerbsSkipsEntriesWithoutInvocation(t *testing.T) {
	data := `{"verbs": [
		{"execution": ":quit"},
		{"invocation": "q", "execution": ":quit"},
	]}`

	got, err := config.ParseVerbs([]byte(data))
	if err != nil {
		t.Fatalf("ParseVerbs failed: %v", err)
	}

	want := []config.VerbEntry{{Invocation: "q", Name: ":quit", Execution: ":quit"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseVerbs mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadVerbsKeepsEmptyExecution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.json")
	data := `{"verbs": [
		["z", "zip -r {file}.zip {file}"],
		{"invocation": "w", "execution": ""},
	]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	verbs, err := config.LoadVerbs(path)
	if err != nil {
		t.Fatalf("LoadVerbs failed: %v", err)
	}

	byKey := make(map[string]string)
	for _, v := range verbs {
		byKey[v.Invocation] = v.Execution
	}

	if got := byKey["z"]; got != "zip -r {file}.zip {file}" {
		t.Errorf("Expected user verb 'z' to be loaded, got '%s'", got)
	}

	if got, ok := byKey["w"]; !ok || got != "" {
		t.Errorf("Expected 'w' with an empty execution, got '%s' %v", got, ok)
	}

	if len(verbs) != 9 {
		t.Errorf("Expected 7 defaults and 2 user verbs, got %d", len(verbs))
	}
}
