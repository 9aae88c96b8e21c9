package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thicket/app/config"
	"thicket/app/debug"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	debug.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

func TestNewCreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	conf := config.New()

	if conf.File() != filepath.Join(dir, "thicket.conf") {
		t.Errorf("Expected config file in '%s', got '%s'", dir, conf.File())
	}

	if _, err := os.Stat(conf.File()); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
}

func TestValueDefaults(t *testing.T) {
	t.Setenv("THICKET_CONFIG_DIR", t.TempDir())
	conf := config.New()

	v, err := conf.Value(config.General, config.MaxDepth)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v.Value != "2" {
		t.Errorf("Expected default MaxDepth '2', got '%s'", v.Value)
	}

	if conf.Bool(config.General, config.ShowHidden) {
		t.Error("Expected ShowHidden to default to false")
	}

	if !conf.Bool(config.Tree, config.WatchChanges) {
		t.Error("Expected WatchChanges to default to true")
	}

	if !conf.NerdFonts() {
		t.Error("Expected nerd fonts to be enabled by default")
	}
}

func TestValueUserOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	userConf := "[General]\nShowHidden = true\nMaxDepth = 4\n"
	if err := os.WriteFile(filepath.Join(dir, "thicket.conf"), []byte(userConf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	conf := config.New()

	if !conf.Bool(config.General, config.ShowHidden) {
		t.Error("Expected user value for ShowHidden")
	}

	if conf.MaxDepth() != 4 {
		t.Errorf("Expected MaxDepth 4, got %d", conf.MaxDepth())
	}

	// not set by the user, default is used
	if conf.Bool(config.General, config.OnlyFolders) {
		t.Error("Expected OnlyFolders to fall back to default")
	}
}

func TestMaxDepthInvalid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	userConf := "[General]\nMaxDepth = deep\n"
	if err := os.WriteFile(filepath.Join(dir, "thicket.conf"), []byte(userConf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if got := config.New().MaxDepth(); got != 2 {
		t.Errorf("Expected fallback MaxDepth 2, got %d", got)
	}
}

func TestSetValue(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	conf := config.New()
	if err := conf.SetValue(config.General, config.ShowHidden, "true"); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	content, err := os.ReadFile(conf.File())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if !strings.Contains(string(content), "ShowHidden = true") {
		t.Errorf("Expected value to be saved, got:\n%s", content)
	}

	conf.Reload()
	if !conf.Bool(config.General, config.ShowHidden) {
		t.Error("Expected reloaded value to be true")
	}
}

func TestStartDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}

	conf := config.New()
	got, err := conf.StartDir()
	if err != nil {
		t.Fatalf("StartDir failed: %v", err)
	}
	if got != wd {
		t.Errorf("Expected working directory '%s', got '%s'", wd, got)
	}

	userConf := "[General]\nStartDirectory = " + dir + "\n"
	if err := os.WriteFile(conf.File(), []byte(userConf), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	conf.Reload()

	got, err = conf.StartDir()
	if err != nil {
		t.Fatalf("StartDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("Expected '%s', got '%s'", dir, got)
	}
}

func TestVerbsUserFileAppended(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THICKET_CONFIG_DIR", dir)

	userVerbs := `{
		// my editor
		"verbs": [
			["e", "nvim {file}", "neovim"],
		],
	}`
	if err := os.WriteFile(filepath.Join(dir, "verbs.json"), []byte(userVerbs), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	verbs := config.New().Verbs()

	last := verbs[len(verbs)-1]
	want := config.VerbEntry{Invocation: "e", Name: "neovim", Execution: "nvim {file}"}

	if diff := cmp.Diff(want, last); diff != "" {
		t.Errorf("Expected user verb last (-want +got):\n%s", diff)
	}
}
