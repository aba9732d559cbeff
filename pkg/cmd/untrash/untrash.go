package untrash

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/state"
	cmdpkg "github.com/Paintersrp/nb/pkg/cmd"
)

func NewCmdUntrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untrash [name]",
		Short: "Restore a note from the trash.",
		Long: heredoc.Doc(`
			Moves a note out of the .trash directory back into the notes
			directory. Fails if a note with the same name already exists.

			Example:
			  nb untrash groceries.txt
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Help()
				return fmt.Errorf("name argument is required")
			}
			name, err := cmdpkg.ResolveNoteName(cmd, s, args[0])
			if err != nil {
				return err
			}
			if err := s.Handler.Untrash(name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s.\n", name)
			return nil
		},
	}

	return cmd
}
