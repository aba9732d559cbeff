// Package session holds the browser's interaction state: the mode, the note
// snapshot, the search payload, the selection cursor and the pending-delete
// flag. It performs no terminal or editor I/O.
package session

import (
	"github.com/Paintersrp/nb/internal/fuzzy"
)

type Mode int

const (
	Normal Mode = iota
	Create
	Search
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Create:
		return "Create"
	case Search:
		return "Search"
	default:
		return "Unknown"
	}
}

// Lister supplies the authoritative note names.
type Lister interface {
	List() ([]string, error)
}

const noCursor = -1

// search exists only while the session is in Search mode, so the filtered
// list can never disagree with the mode.
type search struct {
	query   string
	matches []string
}

type Session struct {
	lister        Lister
	mode          Mode
	notes         []string
	search        *search
	cursor        int
	input         string
	pendingDelete bool
	status        string
}

// New loads the initial snapshot and selects the first note if there is one.
func New(lister Lister) *Session {
	s := &Session{lister: lister, mode: Normal, cursor: noCursor}
	s.Refresh()
	return s
}

// Refresh re-reads the note list. A listing error degrades to an empty list.
func (s *Session) Refresh() {
	notes, err := s.lister.List()
	if err != nil {
		notes = nil
	}
	s.notes = notes

	if s.search != nil {
		s.search.matches = fuzzy.Filter(s.search.query, s.notes)
	}

	s.revalidateCursor()
}

// SetQuery replaces the search query and re-anchors the cursor at the top of
// the new match set. It does nothing outside Search mode.
func (s *Session) SetQuery(q string) {
	if s.search == nil {
		return
	}

	s.search.query = q
	s.search.matches = fuzzy.Filter(q, s.notes)
	s.resetCursor()
}

// CurrentList returns the list navigation and selection operate on.
func (s *Session) CurrentList() []string {
	if s.search != nil {
		return s.search.matches
	}
	return s.notes
}

// MoveCursor moves the selection by delta, clamped to the current list.
func (s *Session) MoveCursor(delta int) {
	if s.cursor == noCursor {
		return
	}

	last := len(s.CurrentList()) - 1
	next := s.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > last {
		next = last
	}
	s.cursor = next
}

// EnterMode switches the active mode. Every switch disarms pending-delete.
func (s *Session) EnterMode(m Mode) {
	s.pendingDelete = false
	s.mode = m

	switch m {
	case Create:
		s.search = nil
		s.input = ""
		s.revalidateCursor()
	case Search:
		s.input = ""
		s.search = &search{}
		s.SetQuery("")
	default:
		s.mode = Normal
		s.search = nil
		s.input = ""
		s.revalidateCursor()
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Cursor returns the selected index and whether a selection exists.
func (s *Session) Cursor() (int, bool) {
	if s.cursor == noCursor {
		return 0, false
	}
	return s.cursor, true
}

// Selected returns the note under the cursor.
func (s *Session) Selected() (string, bool) {
	idx, ok := s.Cursor()
	if !ok {
		return "", false
	}
	return s.CurrentList()[idx], true
}

// Notes returns a copy of the authoritative note list.
func (s *Session) Notes() []string {
	return append([]string{}, s.notes...)
}

// FilteredNotes returns a copy of the notes matching the active query. Outside
// Search mode no query is active and every note matches.
func (s *Session) FilteredNotes() []string {
	if s.search == nil {
		return s.Notes()
	}
	return append([]string{}, s.search.matches...)
}

func (s *Session) Query() string {
	if s.search == nil {
		return ""
	}
	return s.search.query
}

// Input returns the new-note name buffer.
func (s *Session) Input() string {
	return s.input
}

func (s *Session) SetInput(v string) {
	s.input = v
}

func (s *Session) PendingDelete() bool {
	return s.pendingDelete
}

func (s *Session) ArmDelete() {
	s.pendingDelete = true
}

func (s *Session) DisarmDelete() {
	s.pendingDelete = false
}

func (s *Session) Status() string {
	return s.status
}

func (s *Session) SetStatus(msg string) {
	s.status = msg
}

func (s *Session) resetCursor() {
	if len(s.CurrentList()) == 0 {
		s.cursor = noCursor
		return
	}
	s.cursor = 0
}

func (s *Session) revalidateCursor() {
	n := len(s.CurrentList())
	switch {
	case n == 0:
		s.cursor = noCursor
	case s.cursor == noCursor:
		s.cursor = 0
	case s.cursor >= n:
		s.cursor = n - 1
	}
}
