// Package watcher reports changes to the notes directory as bubbletea
// messages. It never touches session state; the program loop refreshes the
// list when a message arrives.
package watcher

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/nb/internal/pathutil"
)

// NotesChangedMsg is emitted once per relevant filesystem event. Name is the
// base name of the affected entry.
type NotesChangedMsg struct {
	Name string
}

type WatcherErrMsg struct {
	Err error
}

type Watcher struct {
	watcher    *fsnotify.Watcher
	dir        string
	showHidden bool
	done       chan struct{}
	once       sync.Once
	onClose    func()
}

type Option func(*Watcher)

// WithHidden makes dotfile events relevant.
func WithHidden(show bool) Option {
	return func(w *Watcher) { w.showHidden = show }
}

// New watches dir itself. Subdirectories are not watched since only direct
// children are notes.
func New(dir string, opts ...Option) (*Watcher, error) {
	normalized := pathutil.NormalizePath(dir)
	if normalized == "" {
		return nil, errors.New("notes directory cannot be empty")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		dir:     normalized,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fw.Add(normalized); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return w, nil
}

// Start returns a command that blocks until the next relevant event. Callers
// re-issue it after every message to keep listening.
func (w *Watcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}
				return NotesChangedMsg{Name: filepath.Base(event.Name)}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}

// OnClose registers a callback that runs exactly once when the watcher
// shuts down.
func (w *Watcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := pathutil.NormalizePath(event.Name)
	if !pathutil.IsDirectChild(w.dir, name) {
		return false
	}

	return w.showHidden || !strings.HasPrefix(filepath.Base(name), ".")
}
