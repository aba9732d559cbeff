package fzf

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/nb/internal/preview"
)

// ErrNoSelection is returned when the picker is aborted.
var ErrNoSelection = errors.New("no note selected")

type Lister interface {
	List() ([]string, error)
	Path(name string) string
}

// FuzzyFinder picks a note by name with a rendered preview of the highlighted
// note.
type FuzzyFinder struct {
	store   Lister
	preview *preview.Renderer
	Header  string
	notes   []string
}

func NewFuzzyFinder(store Lister, header string) *FuzzyFinder {
	return &FuzzyFinder{store: store, preview: preview.NewRenderer(), Header: header}
}

// Run shows the picker seeded with query and returns the chosen note name.
func (f *FuzzyFinder) Run(query string) (string, error) {
	notes, err := f.store.List()
	if err != nil {
		return "", fmt.Errorf("error listing notes: %w", err)
	}
	if len(notes) == 0 {
		return "", ErrNoSelection
	}
	f.notes = notes

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := fuzzyfinder.Find(f.notes, func(i int) string {
		return f.notes[i]
	}, options...)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return "", ErrNoSelection
	}
	if err != nil {
		return "", err
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) renderPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	out, err := f.preview.Render(f.store.Path(f.notes[i]), w-4)
	if err != nil {
		return fmt.Sprintf("Error rendering preview: %v", err)
	}
	return out
}
