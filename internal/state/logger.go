package state

import (
	"io"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/nb/internal/constants"
)

// NewLogger writes debug-level logs to ~/.nb/debug.log when debug is set.
// Otherwise logs are discarded, since the browser owns the terminal.
func NewLogger(home string, debug bool) (*slog.Logger, io.Closer, error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	path := filepath.Join(home, constants.ConfigDir, constants.LogFile)
	f, err := tea.LogToFile(path, constants.AppName)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, f, nil
}
