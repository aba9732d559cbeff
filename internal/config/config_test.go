package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/nb/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	var raw []byte
	if data != nil {
		var err error
		raw, err = yaml.Marshal(data)
		if err != nil {
			t.Fatalf("failed to marshal config data: %v", err)
		}
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadAcceptsSupportedEditors(t *testing.T) {
	editors := []string{"nvim", "vim", "nano", "hx", "code"}

	for _, editor := range editors {
		t.Run(editor, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			home := t.TempDir()
			writeConfig(t, home, map[string]any{
				"dir":    filepath.Join(home, "notes"),
				"editor": editor,
			})

			cfg, err := config.Load(home)
			if err != nil {
				t.Fatalf("expected load to succeed for editor %q: %v", editor, err)
			}

			if cfg.Editor != editor {
				t.Fatalf("expected editor %q, got %q", editor, cfg.Editor)
			}
		})
	}
}

func TestLoadRejectsUnsupportedEditor(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "notepad"})

	if _, err := config.Load(home); err == nil {
		t.Fatalf("expected an error for an unsupported editor")
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	home := t.TempDir()
	writeConfig(t, home, nil)

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error loading empty config: %v", err)
	}

	if cfg.Editor != "nvim" {
		t.Fatalf("expected default editor nvim, got %q", cfg.Editor)
	}
	if cfg.DeleteMode != config.DeleteModeRemove {
		t.Fatalf("expected default delete mode %q, got %q", config.DeleteModeRemove, cfg.DeleteMode)
	}
	if cfg.Dir != "" {
		t.Fatalf("expected empty dir, got %q", cfg.Dir)
	}
}

func TestLoadPicksEditorFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "/usr/bin/nano")

	home := t.TempDir()
	writeConfig(t, home, nil)

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Editor != "nano" {
		t.Fatalf("expected editor from $EDITOR, got %q", cfg.Editor)
	}
}

func TestLoadNormalizesDefaultExtension(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "vim", "default_ext": "md"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultExt != ".md" {
		t.Fatalf("expected .md, got %q", cfg.DefaultExt)
	}
}

func TestCustomEditorRequiresTemplate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "custom"})

	_, err := config.Load(home)
	var initErr *config.ConfigInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %v", err)
	}
}

func TestApplyOverridesPrefersViperValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "vim", "dir": "/from/file"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viper.Set("dir", "/from/flag")
	if err := cfg.ApplyOverrides(); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if cfg.Dir != "/from/flag" {
		t.Fatalf("expected flag override, got %q", cfg.Dir)
	}
	if cfg.Editor != "vim" {
		t.Fatalf("expected editor from file, got %q", cfg.Editor)
	}
}

func TestChangeEditorPersists(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "vim"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cfg.ChangeEditor("bogus"); err == nil {
		t.Fatalf("expected invalid editor to be rejected")
	}
	if err := cfg.ChangeEditor("nano"); err != nil {
		t.Fatalf("ChangeEditor returned error: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if reloaded.Editor != "nano" {
		t.Fatalf("expected persisted editor nano, got %q", reloaded.Editor)
	}
}

func TestChangeEditorKeepsOverridesOutOfFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{"editor": "nvim"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	viper.Set("dir", "/tmp/scratch")
	viper.Set("delete_mode", "trash")
	if err := cfg.ApplyOverrides(); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}
	if err := cfg.ChangeEditor("vim"); err != nil {
		t.Fatalf("ChangeEditor returned error: %v", err)
	}

	if cfg.Dir != "/tmp/scratch" || cfg.Editor != "vim" {
		t.Fatalf("expected in-memory config to keep overrides, got dir %q editor %q", cfg.Dir, cfg.Editor)
	}

	raw, err := os.ReadFile(config.GetConfigPath(home))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	var saved map[string]any
	if err := yaml.Unmarshal(raw, &saved); err != nil {
		t.Fatalf("failed to parse saved config: %v", err)
	}
	if saved["editor"] != "vim" {
		t.Fatalf("expected editor vim in file, got %v", saved["editor"])
	}
	for _, key := range []string{"dir", "delete_mode"} {
		if _, ok := saved[key]; ok {
			t.Fatalf("expected %s to stay out of the file, got %q", key, raw)
		}
	}
}

func TestEnsureConfigExistsCreatesFile(t *testing.T) {
	home := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}
	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}
}
