package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/nb/internal/pathutil"
)

type CommandTemplate struct {
	Exec    string   `yaml:"exec"    json:"exec"`
	Args    []string `yaml:"args"    json:"args"`
	Wait    *bool    `yaml:"wait"    json:"wait"`
	Silence *bool    `yaml:"silence" json:"silence"`
}

type HookConfig struct {
	PreOpen    []CommandTemplate `yaml:"pre_open"    json:"pre_open"`
	PostOpen   []CommandTemplate `yaml:"post_open"   json:"post_open"`
	PostCreate []CommandTemplate `yaml:"post_create" json:"post_create"`
}

// KeyConfig overrides the default key bindings of the browser. Each entry
// lists the keys (in bubbletea notation) that trigger the action.
type KeyConfig struct {
	Quit   []string `yaml:"quit,omitempty"   json:"quit"`
	New    []string `yaml:"new,omitempty"    json:"new"`
	Search []string `yaml:"search,omitempty" json:"search"`
	Open   []string `yaml:"open,omitempty"   json:"open"`
	Delete []string `yaml:"delete,omitempty" json:"delete"`
	Yank   []string `yaml:"yank,omitempty"   json:"yank"`
}

type Config struct {
	Dir            string          `yaml:"dir,omitempty"             json:"dir"`
	Editor         string          `yaml:"editor,omitempty"          json:"editor"`
	EditorArgs     string          `yaml:"editor_args,omitempty"     json:"editor_args"`
	EditorTemplate CommandTemplate `yaml:"editor_template,omitempty" json:"editor_template"`
	Hooks          HookConfig      `yaml:"hooks,omitempty"           json:"hooks"`
	DefaultExt     string          `yaml:"default_ext,omitempty"     json:"default_ext"`
	ShowHidden     bool            `yaml:"show_hidden,omitempty"     json:"show_hidden"`
	DeleteMode     string          `yaml:"delete_mode,omitempty"     json:"delete_mode"`
	Preview        bool            `yaml:"preview,omitempty"         json:"preview"`
	Keys           KeyConfig       `yaml:"keys,omitempty"            json:"keys"`

	path string `yaml:"-"`
	// file holds the values read from disk, before defaults and overrides.
	file *Config `yaml:"-"`
}

const (
	DeleteModeRemove = "remove"
	DeleteModeTrash  = "trash"

	defaultEditor = "nvim"
)

var ValidDeleteModes = map[string]bool{
	DeleteModeRemove: true,
	DeleteModeTrash:  true,
}

var validEditorNames = []string{"nvim", "vim", "vi", "nano", "emacs", "hx", "micro", "vscode", "code", "custom"}

var ValidEditors = func() map[string]bool {
	editors := make(map[string]bool, len(validEditorNames))
	for _, editor := range validEditorNames {
		editors[editor] = true
	}

	return editors
}()

// EditorNames lists the supported editor identifiers in display order.
func EditorNames() []string {
	return append([]string(nil), validEditorNames...)
}

func ValidateEditor(editor string) error {
	if _, valid := ValidEditors[editor]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid editor: %q. Please choose from %s.",
		editor,
		validEditorList(),
	)
}

func validEditorList() string {
	quoted := make([]string, len(validEditorNames))
	for i, name := range validEditorNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

func ValidateDeleteMode(mode string) error {
	if ValidDeleteModes[mode] {
		return nil
	}
	return fmt.Errorf("invalid delete mode: %q. Please choose from 'remove' or 'trash'.", mode)
}

// Default returns a configuration populated with defaults only.
func Default() *Config {
	cfg := &Config{file: &Config{}}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.Editor) == "" {
		cfg.Editor = editorFromEnv()
	}
	if strings.TrimSpace(cfg.DeleteMode) == "" {
		cfg.DeleteMode = DeleteModeRemove
	}
	cfg.DefaultExt = normalizeExt(cfg.DefaultExt)
}

func editorFromEnv() string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		name := filepath.Base(strings.TrimSpace(os.Getenv(key)))
		if ValidEditors[name] && name != "custom" {
			return name
		}
	}
	return defaultEditor
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg := &Config{}
	*cfg = *file
	cfg.path = path
	cfg.file = file
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if err := ValidateEditor(cfg.Editor); err != nil {
		return err
	}
	if cfg.Editor == "custom" && strings.TrimSpace(cfg.EditorTemplate.Exec) == "" {
		return &ConfigInitError{msg: "editor 'custom' requires editor_template.exec to be set"}
	}
	return ValidateDeleteMode(cfg.DeleteMode)
}

// syncViper registers the file values as viper defaults so that flags and
// NB_* environment variables take precedence over them.
func (cfg *Config) syncViper() {
	viper.SetDefault("dir", cfg.Dir)
	viper.SetDefault("editor", cfg.Editor)
	viper.SetDefault("editor_args", cfg.EditorArgs)
	viper.SetDefault("default_ext", cfg.DefaultExt)
	viper.SetDefault("show_hidden", cfg.ShowHidden)
	viper.SetDefault("delete_mode", cfg.DeleteMode)
	viper.SetDefault("preview", cfg.Preview)
}

// ApplyOverrides copies flag and environment overrides resolved by viper
// back into the configuration and validates the result.
func (cfg *Config) ApplyOverrides() error {
	cfg.Dir = viper.GetString("dir")
	cfg.Editor = strings.TrimSpace(viper.GetString("editor"))
	cfg.EditorArgs = viper.GetString("editor_args")
	cfg.DefaultExt = normalizeExt(viper.GetString("default_ext"))
	cfg.ShowHidden = viper.GetBool("show_hidden")
	cfg.DeleteMode = strings.TrimSpace(viper.GetString("delete_mode"))
	cfg.Preview = viper.GetBool("preview")
	cfg.ensureDefaults()
	return cfg.Validate()
}

// NotesDir returns the resolved absolute notes directory.
func (cfg *Config) NotesDir() string {
	return pathutil.ResolveNotesDir(cfg.Dir)
}

func (cfg *Config) ChangeEditor(editor string) error {
	if err := ValidateEditor(editor); err != nil {
		return err
	}

	cfg.Editor = editor
	cfg.stored().Editor = editor
	return cfg.Save()
}

func (cfg *Config) stored() *Config {
	if cfg.file == nil {
		return cfg
	}
	return cfg.file
}

func (cfg *Config) GetConfigPath() string {
	if cfg.path != "" {
		return cfg.path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return GetConfigPath(homeDir)
}

// Save writes the file-backed values to disk. Values that came from
// defaults, flags or the environment are left out.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg.stored())
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if configPath == "" {
		return &ConfigInitError{msg: "unable to determine config path"}
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	viper.Set("editor", cfg.Editor)
	return os.WriteFile(configPath, data, 0o644)
}
