package notes

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/preview"
	"github.com/Paintersrp/nb/internal/state"
	"github.com/Paintersrp/nb/internal/tui"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"browse", "b"},
		Short:   "Browse notes in the terminal UI.",
		Long: heredoc.Doc(`
			Opens the note browser. Move with j/k or the arrow keys, open
			with enter, create with n, delete with d (press twice) and
			search with /. Press ? for all keys.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(s)
		},
	}

	return cmd
}

// Run blocks until the browser exits.
func Run(s *state.State) error {
	m := tui.New(s.NewEngine(), tui.Options{
		Dir:         s.Dir,
		Paths:       s.Handler,
		Launcher:    s.Launcher,
		Watcher:     s.StartWatcher(),
		Preview:     preview.NewRenderer(),
		ShowPreview: s.Config.Preview,
		Keys:        s.Config.Keys,
		Logger:      s.Logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		s.Logger.Error("browser exited with error", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
