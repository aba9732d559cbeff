package preview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestRenderPlainTextTruncatesLongLines(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", []byte("short\r\n"+strings.Repeat("x", 30)+"\n"))

	out, err := NewRenderer().Render(path, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if lines[0] != "short" {
		t.Fatalf("expected first line to be kept, got %q", lines[0])
	}
	if lines[1] != strings.Repeat("x", 10) {
		t.Fatalf("expected truncated second line, got %q", lines[1])
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.md", []byte("# Heading\n\nsome body text\n"))

	out, err := NewRenderer().Render(path, 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "body") {
		t.Fatalf("expected rendered markdown to contain the text, got %q", out)
	}
}

func TestRenderRejectsBinary(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "blob.bin", []byte{0xff, 0xfe, 0x00, 0x80})

	if _, err := NewRenderer().Render(path, 80); !errors.Is(err, ErrBinary) {
		t.Fatalf("expected ErrBinary, got %v", err)
	}
}

func TestRenderCachesUntilFileChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", []byte("first"))
	r := NewRenderer()

	if out, _ := r.Render(path, 80); out != "first" {
		t.Fatalf("expected first, got %q", out)
	}
	if c, ok := r.cache.Get(path); !ok || c.out != "first" {
		t.Fatalf("expected cached preview, got %+v (hit=%v)", c, ok)
	}

	if err := os.WriteFile(path, []byte("second!"), 0o644); err != nil {
		t.Fatalf("failed to rewrite: %v", err)
	}
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("failed to touch: %v", err)
	}

	if out, _ := r.Render(path, 80); out != "second!" {
		t.Fatalf("expected refreshed preview, got %q", out)
	}
}

func TestRenderMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := NewRenderer().Render(filepath.Join(t.TempDir(), "nope.txt"), 80); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{"a.md": true, "B.MD": true, "c.markdown": true, "d.txt": false, "e": false} {
		if got := IsMarkdown(name); got != want {
			t.Fatalf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestForgetDropsCachedPreview(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "a.txt", []byte("note"))
	r := NewRenderer()

	if _, err := r.Render(path, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Forget(path)

	if _, ok := r.cache.Get(path); ok {
		t.Fatalf("expected preview to be forgotten")
	}
	if out, _ := r.Render(path, 80); out != "note" {
		t.Fatalf("expected preview to render again, got %q", out)
	}
}
