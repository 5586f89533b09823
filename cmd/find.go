package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"notedeck/internal/fzf"
	"notedeck/internal/note"
)

var findCmd = &cobra.Command{
	Use:     "find [query]",
	Aliases: []string{"f"},
	Short:   "Fuzzy-pick a note and print its path.",
	Long: heredoc.Doc(`
		Opens a fuzzy finder over every note in the vault, with a rendered
		preview. The chosen note's absolute path is printed, so the command
		composes with an editor:

		  vim "$(notedeck find)"
		  notedeck find robotics
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := note.Load(appCfg.VaultDir)
		if err != nil {
			return err
		}

		finder := fzf.NewFuzzyFinder(notes, "Select a note")
		picked, err := finder.Run(strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(filepath.Join(appCfg.VaultDir, filepath.FromSlash(picked.ID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
