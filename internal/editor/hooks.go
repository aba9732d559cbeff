package editor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Paintersrp/nb/internal/config"
)

func (l *Launcher) PreOpen(path string) error {
	return l.runHooks("pre_open", l.hooks.PreOpen, path)
}

func (l *Launcher) PostOpen(path string) error {
	return l.runHooks("post_open", l.hooks.PostOpen, path)
}

func (l *Launcher) PostCreate(path string) error {
	return l.runHooks("post_create", l.hooks.PostCreate, path)
}

// HasOpenHooks reports whether any pre_open or post_open command is set.
func (l *Launcher) HasOpenHooks() bool {
	return len(l.hooks.PreOpen) > 0 || len(l.hooks.PostOpen) > 0
}

func (l *Launcher) runHooks(phase string, commands []config.CommandTemplate, path string) error {
	if len(commands) == 0 {
		return nil
	}

	p := l.placeholders(path, nil)
	for _, command := range commands {
		cmd, wait := buildHookCommand(command, p)
		if cmd == nil {
			continue
		}
		name := cmd.Args[0]

		if err := cmd.Start(); err != nil {
			return fmt.Errorf("%s hook %q failed to start: %w", phase, name, err)
		}

		if wait {
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("%s hook %q failed: %w", phase, name, err)
			}
			continue
		}

		if err := cmd.Process.Release(); err != nil {
			return fmt.Errorf("%s hook %q release failed: %w", phase, name, err)
		}
	}

	return nil
}

// buildHookCommand returns a nil command for templates without an exec.
func buildHookCommand(template config.CommandTemplate, p placeholders) (*exec.Cmd, bool) {
	execName := strings.TrimSpace(p.expand(template.Exec))
	if execName == "" {
		return nil, false
	}

	args := make([]string, 0, len(template.Args))
	for _, arg := range template.Args {
		args = append(args, p.expand(arg))
	}

	cmd := exec.Command(execName, args...)
	if template.Silence != nil && *template.Silence {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	}

	wait := true
	if template.Wait != nil {
		wait = *template.Wait
	}

	return cmd, wait
}
