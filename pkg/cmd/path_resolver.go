package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/constants"
	"github.com/Paintersrp/nb/internal/handler"
	"github.com/Paintersrp/nb/internal/pathutil"
	"github.com/Paintersrp/nb/internal/state"
)

// ResolveNoteName turns a command argument into a note name. The argument
// may be a bare name or a path (absolute or relative to the working
// directory) to a file directly inside the notes directory.
func ResolveNoteName(cmd *cobra.Command, s *state.State, arg string) (string, error) {
	if s == nil || s.Dir == "" {
		return "", fmt.Errorf("state configuration is not initialized")
	}

	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("a note name is required")
	}

	if !strings.ContainsAny(arg, `/\`) {
		if err := handler.ValidateName(arg); err != nil {
			return "", err
		}
		return arg, nil
	}

	resolved, err := filepath.Abs(pathutil.NormalizePath(arg))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", arg, err)
	}

	dir := filepath.Clean(s.Dir)
	if targetDir := inferTargetDir(cmd); targetDir != "" {
		dir = filepath.Join(dir, targetDir)
	}

	if !pathutil.IsDirectChild(dir, resolved) {
		return "", fmt.Errorf("path %q is not a note in %q", resolved, dir)
	}

	return filepath.Base(resolved), nil
}

func inferTargetDir(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}

	switch cmd.Name() {
	case "untrash":
		return constants.TrashDir
	default:
		return ""
	}
}
