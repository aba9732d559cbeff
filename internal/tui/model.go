// Package tui runs the note browser as a bubbletea program on top of the
// engine.
package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/editor"
	"github.com/Paintersrp/nb/internal/engine"
	"github.com/Paintersrp/nb/internal/preview"
	"github.com/Paintersrp/nb/internal/session"
	"github.com/Paintersrp/nb/internal/watcher"
)

type Paths interface {
	Path(name string) string
}

type Launcher interface {
	Prepare(path string) (*editor.Launch, error)
	PreOpen(path string) error
	PostOpen(path string) error
	HasOpenHooks() bool
}

type Options struct {
	Dir         string
	Paths       Paths
	Launcher    Launcher
	Watcher     *watcher.Watcher
	Preview     *preview.Renderer
	ShowPreview bool
	Keys        config.KeyConfig
	Logger      *slog.Logger
	Clipboard   func(string) error
}

type Model struct {
	engine      *engine.Engine
	dir         string
	paths       Paths
	launcher    Launcher
	watcher     *watcher.Watcher
	preview     *preview.Renderer
	showPreview bool
	keys        keyMap
	help        help.Model
	list        list.Model
	input       textinput.Model
	logger      *slog.Logger
	clipboard   func(string) error

	width  int
	height int
}

type editorFinishedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	path string
	err  error
}

func New(eng *engine.Engine, opts Options) *Model {
	m := &Model{
		engine:      eng,
		dir:         opts.Dir,
		paths:       opts.Paths,
		launcher:    opts.Launcher,
		watcher:     opts.Watcher,
		preview:     opts.Preview,
		showPreview: opts.ShowPreview && opts.Preview != nil,
		keys:        newKeyMap(opts.Keys),
		help:        help.New(),
		list:        newNoteList(),
		input:       newInput(),
		logger:      opts.Logger,
		clipboard:   opts.Clipboard,
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.FullKey = helpStyle

	return m
}

func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, _ := appStyle.GetFrameSize()
		m.help.Width = msg.Width - h
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case editorFinishedMsg:
		if msg.err != nil {
			m.logger.Error("editor failed", "note", msg.name, "err", msg.err)
		}
		m.engine.EditorClosed(msg.err)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Error("copy failed", "path", msg.path, "err", msg.err)
			m.engine.Session().SetStatus(fmt.Sprintf("copy failed: %v", msg.err))
		} else {
			m.engine.Session().SetStatus(fmt.Sprintf("copied %s", msg.path))
		}
		return m, nil

	case watcher.NotesChangedMsg:
		m.logger.Debug("notes changed", "note", msg.Name)
		if m.preview != nil && m.paths != nil && msg.Name != "" {
			m.preview.Forget(m.paths.Path(msg.Name))
		}
		m.engine.Refresh()
		return m, m.watcher.Start()

	case watcher.WatcherErrMsg:
		m.logger.Warn("watcher error", "err", msg.Err)
		return m, m.watcher.Start()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	mode := m.engine.Session().Mode()
	ev := m.keys.translate(mode, msg)

	if mode == session.Normal && ev.Kind == engine.KeyOther {
		switch {
		case key.Matches(msg, m.keys.preview):
			m.showPreview = !m.showPreview && m.preview != nil
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	req := m.engine.Handle(ev)
	switch req.Kind {
	case engine.RequestQuit:
		return tea.Quit
	case engine.RequestOpen:
		return m.openEditor(req.Name)
	case engine.RequestCopy:
		return m.copyPath(req.Name)
	}
	return nil
}

// openEditor hands the terminal to the editor. bubbletea restores it and
// delivers editorFinishedMsg however the editor exits.
func (m *Model) openEditor(name string) tea.Cmd {
	done := func(err error) tea.Msg {
		return editorFinishedMsg{name: name, err: err}
	}

	if m.launcher == nil || m.paths == nil {
		return func() tea.Msg { return done(fmt.Errorf("no editor configured")) }
	}

	path := m.paths.Path(name)
	launch, err := m.launcher.Prepare(path)
	if err != nil {
		return func() tea.Msg { return done(err) }
	}

	m.logger.Info("opening editor", "note", name, "cmd", launch.Cmd.Args)
	if !m.launcher.HasOpenHooks() {
		return tea.ExecProcess(launch.Cmd, done)
	}
	return tea.Exec(&hookedCommand{launch: launch, hooks: m.launcher, path: path}, done)
}

func (m *Model) copyPath(name string) tea.Cmd {
	path := name
	if m.paths != nil {
		path = m.paths.Path(name)
	}

	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{path: path, err: write(path)}
	}
}
