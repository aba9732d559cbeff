package rm

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/state"
	cmdpkg "github.com/Paintersrp/nb/pkg/cmd"
)

// Confirmer asks whether name should be deleted.
type Confirmer func(name string) (bool, error)

func NewCmdRm(s *state.State) *cobra.Command {
	return newCmdRm(s, nil)
}

func newCmdRm(s *state.State, ask Confirmer) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm [name]",
		Aliases: []string{"delete"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Deletes a note from the notes directory after confirmation.
			With delete_mode set to 'trash' the note is moved into the
			.trash directory instead and can be restored with 'nb untrash'.

			Example:
			  nb rm groceries.txt --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := cmdpkg.ResolveNoteName(cmd, s, args[0])
			if err != nil {
				return err
			}
			if !s.Handler.Exists(name) {
				return fmt.Errorf("note %q does not exist", name)
			}

			if !yes {
				ok, err := confirmer(cmd, ask)(name)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := s.Handler.Delete(name); err != nil {
				return err
			}
			s.Logger.Info("deleted note", "note", name, "mode", s.Config.DeleteMode)

			if s.Config.DeleteMode == config.DeleteModeTrash {
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to the trash.\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation.")
	return cmd
}

// confirmer prompts interactively when stdin is a terminal and reads a
// y/n line otherwise.
func confirmer(cmd *cobra.Command, ask Confirmer) Confirmer {
	if ask != nil {
		return ask
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return promptConfirm
	}
	return func(name string) (bool, error) {
		return readConfirm(cmd, name), nil
	}
}

func promptConfirm(name string) (bool, error) {
	input := confirmation.New(fmt.Sprintf("Delete %s?", name), confirmation.No)
	return input.RunPrompt()
}

func readConfirm(cmd *cobra.Command, name string) bool {
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete %s? (y/n): ", name)
		response, err := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))

		switch response {
		case "yes", "y":
			return true
		case "no", "n":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Invalid response. Please enter 'y'/'yes' or 'n'/'no'.")
	}
}
