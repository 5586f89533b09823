package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change the default view mode.",
	Long: heredoc.Doc(`
		Interactively picks the default view mode used when the browser
		starts. The choice is saved to the config file.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		sel := selection.New(
			"Please select a default view mode.",
			[]string{"list", "grid"},
		)
		sel.Filter = nil

		choice, err := sel.RunPrompt()
		if err != nil {
			return err
		}

		if err := appCfg.ChangeMode(choice); err != nil {
			return err
		}

		fmt.Printf("Default view mode set to %s\n", choice)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
