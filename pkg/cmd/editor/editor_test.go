package editor

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	cfg.Dir = filepath.Join(home, "notes")

	st, err := state.FromConfig(cfg, home, false)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestEditorWithArgumentPersists(t *testing.T) {
	st := newTestState(t)

	cmd := newCmdEditor(st, func(string, []string) (string, error) {
		t.Fatalf("chooser should not run when an editor is given")
		return "", nil
	})
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"vim"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(config.GetConfigPath(st.Home))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "editor: vim") {
		t.Fatalf("expected editor to be saved, got %q", data)
	}
	if viper.GetString("editor") != "vim" {
		t.Fatalf("expected viper to be updated")
	}
}

func TestEditorUsesChooser(t *testing.T) {
	st := newTestState(t)

	var offered []string
	cmd := newCmdEditor(st, func(current string, options []string) (string, error) {
		if current != "nvim" {
			t.Fatalf("expected current editor nvim, got %q", current)
		}
		offered = options
		return "nano", nil
	})
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(offered) != len(config.EditorNames()) {
		t.Fatalf("expected all editors to be offered, got %v", offered)
	}
	if st.Config.Editor != "nano" {
		t.Fatalf("expected nano, got %q", st.Config.Editor)
	}
}

func TestEditorRejectsUnknownEditor(t *testing.T) {
	st := newTestState(t)

	cmd := newCmdEditor(st, nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{"notepad"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unsupported editor")
	}
	if st.Config.Editor != "nvim" {
		t.Fatalf("expected editor to stay nvim, got %q", st.Config.Editor)
	}
}

func TestEditorChooserError(t *testing.T) {
	st := newTestState(t)

	cmd := newCmdEditor(st, func(string, []string) (string, error) {
		return "", errors.New("aborted")
	})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected chooser error to propagate")
	}
}
