package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/constants"
	"github.com/Paintersrp/nb/internal/state"
)

func TestResolveNoteName(t *testing.T) {
	dir := t.TempDir()
	st := &state.State{Dir: dir}

	tests := map[string]struct {
		command *cobra.Command
		input   string
		want    string
		wantErr bool
	}{
		"bare name": {
			command: &cobra.Command{Use: "rm"},
			input:   "note.md",
			want:    "note.md",
		},
		"absolute inside notes dir": {
			command: &cobra.Command{Use: "rm"},
			input:   filepath.Join(dir, "note.md"),
			want:    "note.md",
		},
		"nested path": {
			command: &cobra.Command{Use: "rm"},
			input:   filepath.Join(dir, "sub", "note.md"),
			wantErr: true,
		},
		"escape attempt": {
			command: &cobra.Command{Use: "rm"},
			input:   filepath.Join(dir, "..", "evil.md"),
			wantErr: true,
		},
		"dot dot": {
			command: &cobra.Command{Use: "rm"},
			input:   "..",
			wantErr: true,
		},
		"untrash infers trash directory": {
			command: &cobra.Command{Use: "untrash"},
			input:   filepath.Join(dir, constants.TrashDir, "restored.md"),
			want:    "restored.md",
		},
		"untrash rejects paths outside trash": {
			command: &cobra.Command{Use: "untrash"},
			input:   filepath.Join(dir, "restored.md"),
			wantErr: true,
		},
		"empty": {
			command: &cobra.Command{Use: "rm"},
			input:   "  ",
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ResolveNoteName(tc.command, st, tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none (result %q)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveNoteNameRequiresState(t *testing.T) {
	if _, err := ResolveNoteName(nil, &state.State{}, "a.md"); err == nil {
		t.Fatalf("expected error without a notes directory")
	}
}
