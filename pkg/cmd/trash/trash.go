package trash

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/state"
	cmdpkg "github.com/Paintersrp/nb/pkg/cmd"
)

func NewCmdTrash(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash [name]",
		Short: "Move a note to the trash.",
		Long: heredoc.Doc(`
			This command moves a note into the '.trash' directory inside the
			notes directory, whatever delete_mode is set to.
			Restore it later with 'nb untrash'.

			Example:
			  nb trash groceries.txt
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
			if err := s.Handler.Trash(name); err != nil {
				return err
			}
			s.Logger.Info("trashed note", "note", name)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to the trash.\n", name)
			return nil
		},
	}

	return cmd
}
