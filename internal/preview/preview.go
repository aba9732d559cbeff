// Package preview renders note contents for the browser and the picker.
// Markdown goes through glamour; anything else is shown as plain text.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/nb/internal/cache"
)

const (
	maxPreviewBytes = 64 * 1024
	defaultWidth    = 100
	cacheSize       = 64
)

var ErrBinary = errors.New("binary file")

// rendered is a cached preview and the file state it was rendered from.
type rendered struct {
	width   int
	modTime time.Time
	size    int64
	out     string
}

type Renderer struct {
	cache *cache.LRUCache[string, rendered]
	style string
}

func NewRenderer() *Renderer {
	return &Renderer{
		cache: cache.NewLRUCache[string, rendered](cacheSize),
		style: "dracula",
	}
}

// Forget drops the cached preview of path.
func (r *Renderer) Forget(path string) {
	r.cache.Remove(path)
}

// Render returns the preview of path wrapped at width. Results are cached
// until the file's size or modification time changes.
func (r *Renderer) Render(path string, width int) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if c, ok := r.cache.Get(path); ok &&
		c.width == width && c.size == info.Size() && c.modTime.Equal(info.ModTime()) {
		return c.out, nil
	}

	content, err := readHead(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", ErrBinary
	}

	var out string
	if IsMarkdown(path) {
		out, err = r.markdown(string(content), width)
		if err != nil {
			return "", err
		}
	} else {
		out = plain(string(content), width)
	}

	r.cache.Put(path, rendered{width: width, modTime: info.ModTime(), size: info.Size(), out: out})
	return out, nil
}

// IsMarkdown reports whether path has a markdown extension.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdown":
		return true
	}
	return false
}

func (r *Renderer) markdown(content string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", fmt.Errorf("preview renderer: %w", err)
	}

	out, err := tr.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := io.ReadAll(io.LimitReader(f, maxPreviewBytes))
	if err != nil {
		return nil, err
	}

	// Drop a rune split by the byte limit.
	if len(buf) == maxPreviewBytes {
		for i := 0; i < utf8.UTFMax-1 && len(buf) > 0 && !utf8.Valid(buf); i++ {
			buf = buf[:len(buf)-1]
		}
	}
	return buf, nil
}

func plain(content string, width int) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\t", "    ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = runewidth.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
