package list

import (
	"fmt"
	"sort"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/state"
)

func NewCmdList(s *state.State) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the notes in the notes directory.",
		Long: heredoc.Doc(`
			Prints one note name per line in directory order.
			Use --sort to print them alphabetically.

			Example:
			  nb list --sort
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Print(cmd, s, sorted)
		},
	}

	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort names alphabetically.")
	return cmd
}

// Print writes the note list to the command's output.
func Print(cmd *cobra.Command, s *state.State, sorted bool) error {
	notes, err := s.Handler.List()
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	if sorted {
		sort.Strings(notes)
	}

	out := cmd.OutOrStdout()
	for _, note := range notes {
		fmt.Fprintln(out, note)
	}
	return nil
}
