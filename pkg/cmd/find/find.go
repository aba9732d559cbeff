package find

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/fuzzy"
	"github.com/Paintersrp/nb/internal/state"
)

func NewCmdFind(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [query]",
		Short: "Fuzzy-search note names.",
		Long: heredoc.Doc(`
			Prints the notes whose names contain the query as a subsequence,
			best matches first. Matching ignores case.

			Example:
			  nb find mtg
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := s.Handler.List()
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			matches := fuzzy.Rank(strings.Join(args, " "), notes)
			if len(matches) == 0 {
				return fmt.Errorf("no notes match %q", strings.Join(args, " "))
			}

			out := cmd.OutOrStdout()
			for _, match := range matches {
				fmt.Fprintln(out, match)
			}
			return nil
		},
	}

	return cmd
}
