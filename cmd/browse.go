package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"notedeck/internal/config"
	"notedeck/internal/state"
	"notedeck/internal/tui/notes"
	"notedeck/internal/views"
)

var (
	collectionFlag string
	modeFlag       string
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b"},
	Short:   "Open the interactive note browser.",
	Long: heredoc.Doc(`
		Opens the vault in a full-screen browser. Notes can be selected,
		favorited, archived, and previewed; the layout switches between a
		list and a grid without changing what is shown per note.

		Example:
		  notedeck browse
		  notedeck browse --collection favorites --mode grid
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("browse needs an interactive terminal")
		}

		if !views.Valid(collectionFlag) {
			return fmt.Errorf("unknown collection %q", collectionFlag)
		}
		if modeFlag != "" {
			if err := config.ValidateMode(modeFlag); err != nil {
				return err
			}
			appCfg.Mode = modeFlag
		}

		s, err := state.New(appCfg, homeDir)
		if err != nil {
			return err
		}

		return notes.Run(s, collectionFlag)
	},
}

func init() {
	browseCmd.Flags().
		StringVarP(&collectionFlag, "collection", "c", views.CollectionAll, "Initial collection (all, favorites, archived)")
	browseCmd.Flags().
		StringVarP(&modeFlag, "mode", "m", "", "View mode for this run (list, grid)")
	rootCmd.AddCommand(browseCmd)
}
