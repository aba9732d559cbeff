package tui

import (
	"fmt"
	"io"

	"github.com/Paintersrp/nb/internal/editor"
)

type hooks interface {
	PreOpen(path string) error
	PostOpen(path string) error
}

// hookedCommand runs the open hooks around the editor while bubbletea has
// released the terminal.
type hookedCommand struct {
	launch *editor.Launch
	hooks  hooks
	path   string
}

func (c *hookedCommand) Run() error {
	if err := c.hooks.PreOpen(c.path); err != nil {
		return err
	}

	cmd := c.launch.Cmd
	if c.launch.Wait {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("editor: %w", err)
		}
	} else {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("editor: %w", err)
		}
		_ = cmd.Process.Release()
	}

	return c.hooks.PostOpen(c.path)
}

func (c *hookedCommand) SetStdin(r io.Reader) {
	if c.launch.Cmd.Stdin == nil {
		c.launch.Cmd.Stdin = r
	}
}

func (c *hookedCommand) SetStdout(w io.Writer) {
	if c.launch.Cmd.Stdout == nil {
		c.launch.Cmd.Stdout = w
	}
}

func (c *hookedCommand) SetStderr(w io.Writer) {
	if c.launch.Cmd.Stderr == nil {
		c.launch.Cmd.Stderr = w
	}
}
