package root

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Paintersrp/nb/internal/constants"
	"github.com/Paintersrp/nb/internal/state"
	"github.com/Paintersrp/nb/pkg/cmd/editor"
	"github.com/Paintersrp/nb/pkg/cmd/find"
	"github.com/Paintersrp/nb/pkg/cmd/list"
	"github.com/Paintersrp/nb/pkg/cmd/new"
	"github.com/Paintersrp/nb/pkg/cmd/notes"
	"github.com/Paintersrp/nb/pkg/cmd/open"
	"github.com/Paintersrp/nb/pkg/cmd/rm"
	"github.com/Paintersrp/nb/pkg/cmd/trash"
	"github.com/Paintersrp/nb/pkg/cmd/untrash"
)

// Loader builds the state once flags are parsed.
type Loader func() (*state.State, error)

// NewCmdRoot wires every command to s. s is filled in by loader before any
// command runs, so --dir and --debug are honored.
func NewCmdRoot(s *state.State, loader Loader) *cobra.Command {
	var (
		dir   string
		debug bool
	)

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "Browse, create, open and delete plain-text notes.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			A small note browser for a single directory of plain-text files.

			Run without arguments to open the browser, or use the
			subcommands from scripts. When stdout is not a terminal the
			note list is printed instead.

			  nb
			  nb new groceries.txt --open
			  nb find groc
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loader()
			if err != nil {
				return err
			}
			*s = *loaded
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return list.Print(cmd, s, false)
			}
			return notes.Run(s)
		},
	}

	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "Notes directory (default ~/notes).")
	viper.BindPFlag("dir", cmd.PersistentFlags().Lookup("dir"))

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to ~/.nb/debug.log.")
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		list.NewCmdList(s),
		new.NewCmdNew(s),
		open.NewCmdOpen(s),
		find.NewCmdFind(s),
		rm.NewCmdRm(s),
		trash.NewCmdTrash(s),
		untrash.NewCmdUntrash(s),
		editor.NewCmdEditor(s),
	)

	return cmd
}
