package open

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/fzf"
	"github.com/Paintersrp/nb/internal/state"
	cmdpkg "github.com/Paintersrp/nb/pkg/cmd"
)

// Picker chooses a note interactively, seeded with a query.
type Picker func(query string) (string, error)

func NewCmdOpen(s *state.State) *cobra.Command {
	return newCmdOpen(s, nil)
}

func newCmdOpen(s *state.State, pick Picker) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Open a note in the configured editor.",
		Long: heredoc.Doc(`
			Opens the named note directly when it exists. Otherwise a fuzzy
			finder is shown, seeded with the query, with a preview of the
			highlighted note.

			Example:
			  nb open groceries.txt
			  nb open groc
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			if query != "" {
				if name, err := cmdpkg.ResolveNoteName(cmd, s, query); err == nil && s.Handler.Exists(name) {
					return s.Launcher.Open(s.Handler.Path(name))
				}
			}

			choose := pick
			if choose == nil {
				choose = fzf.NewFuzzyFinder(s.Handler, "Open note").Run
			}

			name, err := choose(query)
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.ErrOrStderr(), "No note selected")
				return nil
			}
			if err != nil {
				return err
			}

			return s.Launcher.Open(s.Handler.Path(name))
		},
	}

	return cmd
}
