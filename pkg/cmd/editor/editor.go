/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package editor

import (
	"fmt"

	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/nb/internal/config"
	"github.com/Paintersrp/nb/internal/state"
)

// Chooser asks the user for an editor when none is given on the command line.
type Chooser func(current string, options []string) (string, error)

func NewCmdEditor(s *state.State) *cobra.Command {
	return newCmdEditor(s, promptEditor)
}

func newCmdEditor(s *state.State, choose Chooser) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editor [editor]",
		Short: "Change the default text editor",
		Long: `The editor command updates the text editor used to open notes and saves the new setting to the configuration file.
Without an argument a selection prompt lists the supported editors.`,
		Example: `
    # Change the default editor to 'vim'
    nb editor vim
    `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var editor string
			if len(args) == 1 {
				editor = args[0]
			} else {
				chosen, err := choose(s.Config.Editor, config.EditorNames())
				if err != nil {
					return err
				}
				editor = chosen
			}

			if err := s.Config.ChangeEditor(editor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Editor set to %s.\n", editor)
			return nil
		},
	}

	return cmd
}

func promptEditor(current string, options []string) (string, error) {
	sel := selection.New(
		fmt.Sprintf("Please select an editor option (current: %s).", current),
		options,
	)
	sel.Filter = nil
	sel.PageSize = len(options)

	return sel.RunPrompt()
}
