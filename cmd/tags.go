package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"notedeck/internal/note"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tag usage across the vault.",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := note.Load(appCfg.VaultDir)
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, n := range notes {
			for _, t := range n.Tags {
				counts[t]++
			}
		}

		tags := make([]string, 0, len(counts))
		for t := range counts {
			tags = append(tags, t)
		}
		sort.Slice(tags, func(i, j int) bool {
			if counts[tags[i]] != counts[tags[j]] {
				return counts[tags[i]] > counts[tags[j]]
			}
			return tags[i] < tags[j]
		})

		for _, t := range tags {
			fmt.Printf("%s (%d)\n", t, counts[t])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
