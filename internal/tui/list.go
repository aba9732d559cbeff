package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/nb/internal/session"
)

type noteItem string

func (i noteItem) FilterValue() string { return string(i) }

// noteDelegate draws one note per row with a "> " marker on the selection.
type noteDelegate struct{}

func (d noteDelegate) Height() int                             { return 1 }
func (d noteDelegate) Spacing() int                            { return 0 }
func (d noteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d noteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	name, ok := item.(noteItem)
	if !ok {
		return
	}

	title := truncate(string(name), m.Width()-2)
	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+title))
		return
	}
	fmt.Fprint(w, itemStyle.Render("  "+title))
}

// newNoteList builds a display-only list. Key handling stays with the
// engine, so the list is never sent messages.
func newNoteList() list.Model {
	l := list.New(nil, noteDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Paginator.Type = paginator.Arabic
	l.Styles.PaginationStyle = dimStyle.Copy().PaddingLeft(2)
	return l
}

func newInput() textinput.Model {
	t := textinput.New()
	t.PromptStyle = promptStyle
	t.Cursor.Style = promptStyle
	t.Focus()
	t.Cursor.SetMode(cursor.CursorStatic)
	return t
}

// syncList copies the visible notes and cursor of v into the list.
func (m *Model) syncList(v session.Snapshot) {
	items := make([]list.Item, len(v.Notes))
	for i, name := range v.Notes {
		items[i] = noteItem(name)
	}
	m.list.SetItems(items)
	if v.HasCursor {
		m.list.Select(v.Cursor)
	}
}

// syncInput mirrors the mode's buffer into the text input.
func (m *Model) syncInput(v session.Snapshot) bool {
	switch v.Mode {
	case session.Create:
		m.input.Prompt = "New note: "
	case session.Search:
		m.input.Prompt = "Search: "
	default:
		return false
	}
	m.input.SetValue(v.Buffer())
	m.input.CursorEnd()
	return true
}
