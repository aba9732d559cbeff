// Package handler implements the note store: a flat directory of plain-text
// files addressed by file name.
package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/Paintersrp/nb/internal/constants"
)

var (
	ErrExists      = errors.New("note already exists")
	ErrInvalidName = errors.New("invalid note name")
)

type FileHandler struct {
	dir        string
	showHidden bool
	trash      bool
}

type Option func(*FileHandler)

// WithHidden includes dotfiles in listings.
func WithHidden(show bool) Option {
	return func(h *FileHandler) { h.showHidden = show }
}

// WithTrash makes Delete move notes into the trash directory instead of
// removing them.
func WithTrash(enabled bool) Option {
	return func(h *FileHandler) { h.trash = enabled }
}

func NewFileHandler(dir string, opts ...Option) *FileHandler {
	h := &FileHandler{dir: dir}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *FileHandler) Dir() string {
	return h.dir
}

// Path returns the absolute path for a note name.
func (h *FileHandler) Path(name string) string {
	return filepath.Join(h.dir, name)
}

// ValidateName rejects names that would escape the flat notes directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.IndexFunc(name, unicode.IsControl) >= 0:
		return fmt.Errorf("%w: %q contains a control character", ErrInvalidName, name)
	}
	return nil
}

// NormalizeName trims input and appends ext when the name has none.
// An all-blank input yields "".
func NormalizeName(input, ext string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return ""
	}
	if ext != "" && filepath.Ext(name) == "" {
		name += ext
	}
	return name
}

// List returns the names of the regular files directly inside the notes
// directory, in directory enumeration order.
func (h *FileHandler) List() ([]string, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}

	notes := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !h.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if !h.isFile(entry) {
			continue
		}
		notes = append(notes, name)
	}

	return notes, nil
}

func (h *FileHandler) isFile(entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(h.Path(entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Exists reports whether anything already occupies the name.
func (h *FileHandler) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	_, err := os.Lstat(h.Path(name))
	return err == nil
}

// Create makes a new empty note. It never truncates an existing file.
// Dotfiles are refused unless hidden notes are listed.
func (h *FileHandler) Create(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if !h.showHidden && strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q is hidden, enable show_hidden to create it", ErrInvalidName, name)
	}

	file, err := os.OpenFile(h.Path(name), os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, name)
		}
		return fmt.Errorf("failed to create note %s: %w", name, err)
	}

	return file.Close()
}

// Delete removes a note, or moves it to the trash when trash mode is on.
func (h *FileHandler) Delete(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if h.trash {
		return h.Trash(name)
	}

	if err := os.Remove(h.Path(name)); err != nil {
		return fmt.Errorf("failed to delete note %s: %w", name, err)
	}
	return nil
}

// Trash moves a note into the trash subdirectory. A name already present in
// the trash gets a timestamp suffix.
func (h *FileHandler) Trash(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	src := h.Path(name)
	if _, err := os.Lstat(src); err != nil {
		return fmt.Errorf("failed to trash note %s: %w", name, err)
	}

	trashDir := filepath.Join(h.dir, constants.TrashDir)
	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		return err
	}

	return os.Rename(src, freeName(trashDir, name))
}

// freeName returns a path in dir for name that nothing occupies yet: name
// itself, then name.<timestamp>, then name.<timestamp>.<n>.
func freeName(dir, name string) string {
	dst := filepath.Join(dir, name)
	if !occupied(dst) {
		return dst
	}

	stamped := fmt.Sprintf("%s.%s", name, time.Now().Format("20060102150405"))
	dst = filepath.Join(dir, stamped)
	for n := 1; occupied(dst); n++ {
		dst = filepath.Join(dir, fmt.Sprintf("%s.%d", stamped, n))
	}
	return dst
}

func occupied(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Untrash restores a note from the trash subdirectory.
func (h *FileHandler) Untrash(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	dst := h.Path(name)
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}

	return os.Rename(filepath.Join(h.dir, constants.TrashDir, name), dst)
}
