package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"thicket/app/debug"
	"thicket/tui/watcher"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	debug.SetLogger(zap.NewNop())
	goleak.VerifyTestMain(m)
}

func TestRefreshOnCreate(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.New(20 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Stop()

	w.Watch(dir)
	w.Start(context.Background())

	for _, name := range []string{"a", "b", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	select {
	case msg := <-w.Events():
		if filepath.Dir(msg.Path) != dir {
			t.Errorf("Expected change in '%s', got '%s'", dir, msg.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a refresh message")
	}
}

func TestWatchReplacesDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := watcher.New(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Stop()

	w.Watch(first)
	w.Watch(second, filepath.Join(second, "missing"))

	dirs := w.Dirs()
	if len(dirs) != 1 || dirs[0] != second {
		t.Errorf("Expected only '%s' to be watched, got %v", second, dirs)
	}
}

func TestStopAfterCancel(t *testing.T) {
	w, err := watcher.New(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	w.Stop()
	w.Stop()

	if _, ok := <-w.Events(); ok {
		t.Error("Expected events channel to be closed")
	}
}

func TestWaitReturnsNilAfterStop(t *testing.T) {
	w, err := watcher.New(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	w.Start(context.Background())
	w.Stop()

	if msg := w.Wait()(); msg != nil {
		t.Errorf("Expected nil message after Stop, got %v", msg)
	}
}
