package rm

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/constants"
	"github.com/Paintersrp/nb/internal/state"
)

func newTestState(t *testing.T, mode string, names ...string) *state.State {
	t.Helper()

	home := t.TempDir()
	cfg := config.Default()
	cfg.Dir = filepath.Join(home, "notes")
	cfg.DeleteMode = mode

	st, err := state.FromConfig(cfg, home, false)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(st.Dir, name), nil, 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
	}
	return st
}

func TestRmWithYes(t *testing.T) {
	st := newTestState(t, config.DeleteModeRemove, "a.txt")

	var out bytes.Buffer
	cmd := NewCmdRm(st)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"a.txt", "--yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(st.Dir, "a.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected note to be removed, got %v", err)
	}
	if !strings.Contains(out.String(), "Deleted a.txt") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRmConfirmation(t *testing.T) {
	st := newTestState(t, config.DeleteModeRemove, "a.txt", "b.txt")

	tests := []struct {
		note    string
		input   string
		removed bool
	}{
		{"a.txt", "n\n", false},
		{"a.txt", "maybe\nno\n", false},
		{"b.txt", "y\n", true},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		cmd := NewCmdRm(st)
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader(tt.input))
		cmd.SetArgs([]string{tt.note})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.input, err)
		}

		_, err := os.Stat(filepath.Join(st.Dir, tt.note))
		if removed := os.IsNotExist(err); removed != tt.removed {
			t.Fatalf("%q: expected removed=%v, got %v", tt.input, tt.removed, removed)
		}
	}
}

func TestRmUsesConfirmer(t *testing.T) {
	st := newTestState(t, config.DeleteModeRemove, "a.txt", "b.txt")

	tests := []struct {
		note    string
		answer  bool
		err     error
		removed bool
	}{
		{"a.txt", false, nil, false},
		{"a.txt", false, errors.New("prompt closed"), false},
		{"b.txt", true, nil, true},
	}

	for _, tt := range tests {
		var asked string
		cmd := newCmdRm(st, func(name string) (bool, error) {
			asked = name
			return tt.answer, tt.err
		})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{tt.note})

		err := cmd.Execute()
		if (err != nil) != (tt.err != nil) {
			t.Fatalf("%s: expected error %v, got %v", tt.note, tt.err, err)
		}
		if asked != tt.note {
			t.Fatalf("expected confirmer to be asked about %s, got %q", tt.note, asked)
		}

		_, statErr := os.Stat(filepath.Join(st.Dir, tt.note))
		if removed := os.IsNotExist(statErr); removed != tt.removed {
			t.Fatalf("%s: expected removed=%v, got %v", tt.note, tt.removed, removed)
		}
	}
}

func TestRmTrashMode(t *testing.T) {
	st := newTestState(t, config.DeleteModeTrash, "a.txt")

	cmd := NewCmdRm(st)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"a.txt", "-y"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(st.Dir, constants.TrashDir, "a.txt")); err != nil {
		t.Fatalf("expected note in trash: %v", err)
	}
}

func TestRmMissingNote(t *testing.T) {
	st := newTestState(t, config.DeleteModeRemove)

	cmd := NewCmdRm(st)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"nope.txt", "--yes"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing note")
	}
}

func TestRmRequiresArgument(t *testing.T) {
	cmd := NewCmdRm(&state.State{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error when no name is provided")
	}
}
