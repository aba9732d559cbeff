// Package engine maps input events onto session transitions. Note store
// mutations happen synchronously inside Handle; editor launches and other
// terminal-bound work are returned to the caller as requests.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Paintersrp/nb/internal/handler"
	"github.com/Paintersrp/nb/internal/session"
)

// Store is the subset of the note store the engine mutates.
type Store interface {
	List() ([]string, error)
	Create(name string) error
	Delete(name string) error
	Exists(name string) bool
}

type Kind int

const (
	KeyOther Kind = iota
	KeyQuit
	KeyNew
	KeySearch
	KeyOpen
	KeyDelete
	KeyYank
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
	KeyBackspace
	KeyInput
)

// Event is one decoded key press. Runes carries the typed text for
// KeyInput events.
type Event struct {
	Kind  Kind
	Runes []rune
}

func Key(k Kind) Event {
	return Event{Kind: k}
}

func Text(s string) Event {
	return Event{Kind: KeyInput, Runes: []rune(s)}
}

type RequestKind int

const (
	RequestNone RequestKind = iota
	RequestQuit
	RequestOpen
	RequestCopy
)

// Request asks the caller to perform work the engine cannot do itself.
type Request struct {
	Kind RequestKind
	Name string
}

type Engine struct {
	store      Store
	session    *session.Session
	defaultExt string
	logger     *slog.Logger
}

type Option func(*Engine)

// WithDefaultExt appends ext to new note names that have no extension.
func WithDefaultExt(ext string) Option {
	return func(e *Engine) { e.defaultExt = ext }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = session.New(store)
	return e
}

func (e *Engine) Session() *session.Session {
	return e.session
}

// Handle applies one event to the session.
func (e *Engine) Handle(ev Event) Request {
	e.session.SetStatus("")

	switch e.session.Mode() {
	case session.Create:
		return e.handleCreate(ev)
	case session.Search:
		return e.handleSearch(ev)
	default:
		return e.handleNormal(ev)
	}
}

// EditorClosed resumes the session after an editor launched for an
// RequestOpen exits. The exit status does not change the outcome.
func (e *Engine) EditorClosed(err error) {
	if err != nil {
		e.logger.Warn("editor exited with error", "err", err)
		e.session.SetStatus(fmt.Sprintf("editor: %v", err))
	}

	if e.session.Mode() == session.Search {
		e.session.SetQuery("")
		e.session.EnterMode(session.Normal)
	}
	e.session.Refresh()
}

// Refresh reloads the note list, e.g. after an external change.
func (e *Engine) Refresh() {
	e.session.Refresh()
}

func (e *Engine) handleNormal(ev Event) Request {
	s := e.session

	switch ev.Kind {
	case KeyQuit:
		return Request{Kind: RequestQuit}

	case KeyNew:
		s.EnterMode(session.Create)

	case KeySearch:
		s.EnterMode(session.Search)

	case KeyOpen:
		s.DisarmDelete()
		if name, ok := s.Selected(); ok {
			return Request{Kind: RequestOpen, Name: name}
		}

	case KeyDelete:
		if !s.PendingDelete() {
			s.ArmDelete()
			return Request{}
		}
		s.DisarmDelete()
		if name, ok := s.Selected(); ok {
			e.deleteNote(name)
		}

	case KeyUp:
		s.MoveCursor(-1)
		s.DisarmDelete()

	case KeyDown:
		s.MoveCursor(1)
		s.DisarmDelete()

	case KeyYank:
		s.DisarmDelete()
		if name, ok := s.Selected(); ok {
			return Request{Kind: RequestCopy, Name: name}
		}

	default:
		s.DisarmDelete()
	}

	return Request{}
}

func (e *Engine) deleteNote(name string) {
	if err := e.store.Delete(name); err != nil {
		e.logger.Error("delete failed", "note", name, "err", err)
		e.session.SetStatus(fmt.Sprintf("delete failed: %v", err))
		return
	}

	e.logger.Info("deleted note", "note", name)
	e.session.Refresh()
	e.session.SetStatus(fmt.Sprintf("deleted %s", name))
}

func (e *Engine) handleCreate(ev Event) Request {
	s := e.session

	switch ev.Kind {
	case KeyConfirm:
		e.createNote()

	case KeyCancel:
		s.SetInput("")
		s.EnterMode(session.Normal)

	case KeyBackspace:
		s.SetInput(dropLastRune(s.Input()))

	case KeyInput:
		s.SetInput(s.Input() + string(ev.Runes))
	}

	return Request{}
}

// createNote leaves the session in Create mode when the name is empty,
// invalid or taken.
func (e *Engine) createNote() {
	s := e.session

	name := handler.NormalizeName(s.Input(), e.defaultExt)
	if name == "" {
		return
	}
	if err := handler.ValidateName(name); err != nil {
		s.SetStatus(err.Error())
		return
	}
	if e.store.Exists(name) {
		s.SetStatus(fmt.Sprintf("%s already exists", name))
		return
	}

	if err := e.store.Create(name); err != nil {
		e.logger.Error("create failed", "note", name, "err", err)
		s.SetStatus(fmt.Sprintf("create failed: %v", err))
		if errors.Is(err, handler.ErrExists) || errors.Is(err, handler.ErrInvalidName) {
			return
		}
	} else {
		e.logger.Info("created note", "note", name)
		s.Refresh()
	}

	s.SetInput("")
	s.EnterMode(session.Normal)
}

func (e *Engine) handleSearch(ev Event) Request {
	s := e.session

	switch ev.Kind {
	case KeyCancel:
		s.SetQuery("")
		s.EnterMode(session.Normal)

	case KeyConfirm:
		if name, ok := s.Selected(); ok {
			return Request{Kind: RequestOpen, Name: name}
		}

	case KeyBackspace:
		s.SetQuery(dropLastRune(s.Query()))

	case KeyUp:
		s.MoveCursor(-1)

	case KeyDown:
		s.MoveCursor(1)

	case KeyInput:
		s.SetQuery(s.Query() + string(ev.Runes))
	}

	return Request{}
}

func dropLastRune(v string) string {
	r := []rune(v)
	if len(r) == 0 {
		return v
	}
	return string(r[:len(r)-1])
}
