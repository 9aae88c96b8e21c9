package watcher

import (
	"context"
	"sync"
	"time"

	"thicket/app/debug"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
)

// RefreshMsg tells the driver that the watched directories changed
type RefreshMsg struct {
	// Path is the last path that changed
	Path string
}

// Watcher reports changes in a set of directories. Bursts of events
// are collapsed into a single RefreshMsg.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	dirs     []string
	debounce time.Duration
	pending  bool
	lastPath string
	lastSeen time.Time
	events   chan RefreshMsg
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	stopOnce sync.Once
}

// New creates a watcher that waits debounce after the last event
// before reporting a change.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		events:   make(chan RefreshMsg, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch replaces the watched directories. Directories that can't be
// watched are logged and skipped.
func (w *Watcher) Watch(dirs ...string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, dir := range w.dirs {
		if err := w.fsw.Remove(dir); err != nil {
			debug.LogDebug("watcher: remove", dir, err)
		}
	}

	w.dirs = w.dirs[:0]
	w.pending = false

	for _, dir := range dirs {
		if err := w.fsw.Add(dir); err != nil {
			debug.LogDebug("watcher: add", dir, err)
			continue
		}
		w.dirs = append(w.dirs, dir)
	}
}

// Dirs returns the currently watched directories
func (w *Watcher) Dirs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.dirs...)
}

// Start runs the event loop in a goroutine until ctx is done or
// Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
}

// Stop ends the event loop, waits for it and releases the watcher.
// The events channel is closed afterwards.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()

		close(w.stopCh)
		if running {
			<-w.doneCh
		}

		if err := w.fsw.Close(); err != nil {
			debug.LogErr("watcher: close", err)
		}

		close(w.events)
	})
}

// Events returns the channel RefreshMsgs are delivered on
func (w *Watcher) Events() <-chan RefreshMsg {
	return w.events
}

// Wait returns a command that blocks until the next change.
// It has to be issued again after every RefreshMsg.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-w.events
		if !ok {
			return nil
		}
		return msg
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(max(w.debounce/4, 10*time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debug.LogErr("watcher:", err)

		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// chmod alone doesn't change the tree
	if !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) &&
		!event.Has(fsnotify.Rename) &&
		!event.Has(fsnotify.Write) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = true
	w.lastPath = event.Name
	w.lastSeen = time.Now()
}

// flush reports a pending change once no event came in for the
// debounce duration
func (w *Watcher) flush() {
	w.mu.Lock()
	if !w.pending || time.Since(w.lastSeen) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = false
	msg := RefreshMsg{Path: w.lastPath}
	w.mu.Unlock()

	// a refresh that's still queued covers this one too
	select {
	case w.events <- msg:
	default:
	}
}
