package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Paintersrp/nb/internal/session"
)

const (
	defaultListHeight = 20
	chromeHeight      = 9
	minPreviewWidth   = 60
)

func (m *Model) View() string {
	v := m.engine.Session().View()

	sections := []string{m.header(v)}

	body := m.listView(v)
	if pane := m.previewPane(v); pane != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, pane)
	}
	sections = append(sections, body)

	if line := m.inputLine(v); line != "" {
		sections = append(sections, line)
	}
	if v.PendingDelete && v.HasCursor {
		sections = append(sections, warnStyle.Render(fmt.Sprintf(
			"Delete %s? Press %s again to confirm.",
			v.Notes[v.Cursor],
			m.keys.remove.Help().Key,
		)))
	}
	if v.Status != "" {
		sections = append(sections, statusStyle.Render(v.Status))
	}

	sections = append(sections, m.help.View(modeHelp{keys: m.keys, mode: v.Mode}))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) header(v session.Snapshot) string {
	count := fmt.Sprintf("%d notes", v.Total)
	if v.Mode == session.Search {
		count = fmt.Sprintf("%d/%d notes", len(v.Notes), v.Total)
	}

	parts := []string{titleStyle.Render("nb"), dirStyle.Render(m.dir), dimStyle.Render(count)}
	if v.Mode != session.Normal {
		parts = append(parts, " ", modeStyle.Render(strings.ToUpper(v.Mode.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func (m *Model) listView(v session.Snapshot) string {
	if len(v.Notes) == 0 {
		if v.Mode == session.Search && v.Total > 0 {
			return dimStyle.Render("No matches.")
		}
		return dimStyle.Render(fmt.Sprintf(
			"No notes yet. Press %s to create one.",
			m.keys.create.Help().Key,
		))
	}

	m.list.SetSize(m.listWidth(), m.listHeight()+1)
	m.syncList(v)
	return m.list.View()
}

func (m *Model) inputLine(v session.Snapshot) string {
	if !m.syncInput(v) {
		return ""
	}
	return inputStyle.Render(m.input.View())
}

func (m *Model) previewPane(v session.Snapshot) string {
	if !m.showPreview || m.preview == nil || !v.HasCursor || m.paths == nil {
		return ""
	}
	if m.width > 0 && m.width < minPreviewWidth {
		return ""
	}

	width := m.previewWidth()
	out, err := m.preview.Render(m.paths.Path(v.Notes[v.Cursor]), width)
	if err != nil {
		out = dimStyle.Render(fmt.Sprintf("no preview: %v", err))
	}

	lines := strings.Split(out, "\n")
	if h := m.listHeight(); len(lines) > h {
		lines = lines[:h]
	}
	return previewStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) listHeight() int {
	if m.height <= 0 {
		return defaultListHeight
	}
	if h := m.height - chromeHeight; h > 1 {
		return h
	}
	return 1
}

func (m *Model) listWidth() int {
	w, _ := appStyle.GetFrameSize()
	width := m.width - w
	if width <= 0 {
		return 80
	}
	if m.showPreview && m.width >= minPreviewWidth {
		return width / 3
	}
	return width
}

func (m *Model) previewWidth() int {
	w, _ := appStyle.GetFrameSize()
	width := m.width - w
	if width <= 0 {
		return 80
	}
	return width - width/3 - 3
}

func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
