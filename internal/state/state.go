package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/constants"
	"github.com/Paintersrp/nb/internal/editor"
	"github.com/Paintersrp/nb/internal/engine"
	"github.com/Paintersrp/nb/internal/handler"
	"github.com/Paintersrp/nb/internal/pathutil"
	"github.com/Paintersrp/nb/internal/watcher"
)

type State struct {
	Config   *config.Config
	Handler  *handler.FileHandler
	Launcher *editor.Launcher
	Logger   *slog.Logger
	Home     string
	Dir      string
	Watcher  *watcher.Watcher

	logFile io.Closer
}

// NewState loads the configuration, applies flag and environment overrides
// and makes sure the notes directory exists.
func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(); err != nil {
		return nil, err
	}

	return FromConfig(cfg, home, viper.GetBool("debug"))
}

// FromConfig builds the state for an already loaded configuration.
func FromConfig(cfg *config.Config, home string, debug bool) (*State, error) {
	dir := cfg.NotesDir()
	if err := pathutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("notes directory %s: %w", dir, err)
	}

	logger, closer, err := NewLogger(home, debug)
	if err != nil {
		return nil, err
	}

	h := handler.NewFileHandler(
		dir,
		handler.WithHidden(cfg.ShowHidden),
		handler.WithTrash(cfg.DeleteMode == config.DeleteModeTrash),
	)

	logger.Debug("state ready", "dir", dir, "editor", cfg.Editor, "delete_mode", cfg.DeleteMode)

	return &State{
		Config:   cfg,
		Handler:  h,
		Launcher: editor.New(cfg),
		Logger:   logger,
		Home:     home,
		Dir:      dir,
		logFile:  closer,
	}, nil
}

// NewEngine returns an engine over the notes directory.
func (s *State) NewEngine() *engine.Engine {
	return engine.New(
		s.Handler,
		engine.WithDefaultExt(s.Config.DefaultExt),
		engine.WithLogger(s.Logger),
	)
}

// StartWatcher attaches a directory watcher. Failure is logged and leaves
// the browser without live refresh.
func (s *State) StartWatcher() *watcher.Watcher {
	w, err := watcher.New(s.Dir, watcher.WithHidden(s.Config.ShowHidden))
	if err != nil {
		s.Logger.Warn("watcher unavailable", "dir", s.Dir, "err", err)
		return nil
	}
	w.OnClose(func() { s.Logger.Debug("watcher closed", "dir", s.Dir) })
	s.Watcher = w
	return w
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return config.Load(home)
}

// Close releases the watcher and the debug log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil {
			errs = append(errs, err)
		}
		s.logFile = nil
	}

	return errors.Join(errs...)
}
