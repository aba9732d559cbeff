package new

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/handler"
	"github.com/Paintersrp/nb/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:     "new [name]",
		Aliases: []string{"n"},
		Short:   "Create a new empty note.",
		Long: heredoc.Doc(`
			Creates an empty note in the notes directory. The configured
			default_ext is appended when the name has no extension.
			Existing notes are never overwritten.

			Example:
			  nb new groceries.txt --open
		`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("error: expected exactly one note name. Try again with 'nb new [name]'")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], open)
		},
	}

	cmd.Flags().BoolVarP(&open, "open", "o", false, "Open the note in the editor after creating it.")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, input string, open bool) error {
	name := handler.NormalizeName(input, s.Config.DefaultExt)
	if err := handler.ValidateName(name); err != nil {
		return err
	}
	if s.Handler.Exists(name) {
		return fmt.Errorf("%s: %w", name, handler.ErrExists)
	}

	if err := s.Handler.Create(name); err != nil {
		return err
	}
	s.Logger.Info("created note", "note", name)

	path := s.Handler.Path(name)
	if err := s.Launcher.PostCreate(path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	if open {
		return s.Launcher.Open(path)
	}
	return nil
}
