package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/engine"
	"github.com/Paintersrp/nb/internal/session"
)

type keyMap struct {
	quit    key.Binding
	create  key.Binding
	search  key.Binding
	open    key.Binding
	remove  key.Binding
	yank    key.Binding
	up      key.Binding
	down    key.Binding
	preview key.Binding
	help    key.Binding

	// Create and Search mode
	confirm   key.Binding
	cancel    key.Binding
	backspace key.Binding
	prev      key.Binding
	next      key.Binding
}

func newKeyMap(overrides config.KeyConfig) keyMap {
	return keyMap{
		quit:   binding(overrides.Quit, []string{"q", "ctrl+c"}, "quit"),
		create: binding(overrides.New, []string{"n"}, "new"),
		search: binding(overrides.Search, []string{"/"}, "search"),
		open:   binding(overrides.Open, []string{"enter", "o"}, "open"),
		remove: binding(overrides.Delete, []string{"d"}, "delete"),
		yank:   binding(overrides.Yank, []string{"y"}, "copy path"),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		prev: key.NewBinding(
			key.WithKeys("up", "ctrl+k", "ctrl+p"),
			key.WithHelp("↑/ctrl+k", "up"),
		),
		next: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "ctrl+n"),
			key.WithHelp("↓/ctrl+j", "down"),
		),
	}
}

// binding uses the configured keys when present and falls back to defaults.
func binding(configured, defaults []string, desc string) key.Binding {
	keys := defaults
	if len(configured) > 0 {
		keys = configured
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}

// translate decodes a key press for the given mode. Quit and the other
// single-letter actions only exist in Normal mode; elsewhere printable keys
// are text.
func (k keyMap) translate(mode session.Mode, msg tea.KeyMsg) engine.Event {
	if mode == session.Normal {
		switch {
		case key.Matches(msg, k.quit):
			return engine.Key(engine.KeyQuit)
		case key.Matches(msg, k.create):
			return engine.Key(engine.KeyNew)
		case key.Matches(msg, k.search):
			return engine.Key(engine.KeySearch)
		case key.Matches(msg, k.open):
			return engine.Key(engine.KeyOpen)
		case key.Matches(msg, k.remove):
			return engine.Key(engine.KeyDelete)
		case key.Matches(msg, k.yank):
			return engine.Key(engine.KeyYank)
		case key.Matches(msg, k.up):
			return engine.Key(engine.KeyUp)
		case key.Matches(msg, k.down):
			return engine.Key(engine.KeyDown)
		}
		return engine.Key(engine.KeyOther)
	}

	switch {
	case key.Matches(msg, k.confirm):
		return engine.Key(engine.KeyConfirm)
	case key.Matches(msg, k.cancel):
		return engine.Key(engine.KeyCancel)
	case key.Matches(msg, k.backspace):
		return engine.Key(engine.KeyBackspace)
	case key.Matches(msg, k.prev):
		return engine.Key(engine.KeyUp)
	case key.Matches(msg, k.next):
		return engine.Key(engine.KeyDown)
	}

	switch msg.Type {
	case tea.KeyRunes:
		return engine.Event{Kind: engine.KeyInput, Runes: msg.Runes}
	case tea.KeySpace:
		return engine.Text(" ")
	}
	return engine.Key(engine.KeyOther)
}

// modeHelp adapts the key map to bubbles/help for the active mode.
type modeHelp struct {
	keys keyMap
	mode session.Mode
}

func (h modeHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.mode {
	case session.Create:
		return []key.Binding{k.confirm, k.cancel}
	case session.Search:
		return []key.Binding{k.prev, k.next, withHelp(k.confirm, "open"), k.cancel}
	default:
		return []key.Binding{k.create, k.search, k.open, k.remove, k.quit, k.help}
	}
}

func (h modeHelp) FullHelp() [][]key.Binding {
	if h.mode != session.Normal {
		return [][]key.Binding{h.ShortHelp()}
	}

	k := h.keys
	return [][]key.Binding{
		{k.up, k.down, k.open},
		{k.create, k.remove, k.yank},
		{k.search, k.preview},
		{k.help, k.quit},
	}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
