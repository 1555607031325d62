package cmd

import (
	"github.com/huangsam/salesrank/core"
	"github.com/spf13/cobra"
)

// rankCmd shows the whole eligible ranking before the threshold cut.
var rankCmd = &cobra.Command{
	Use:   "rank <people.json> <definition.json>",
	Short: "Show every eligible person ranked by score.",
	Long: `Print the full ranking of eligible people, before the top performers
threshold is applied. Useful to see who just missed the cut.

Only json is honored from --output; every other format prints a table.`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runWithSources(core.ExecuteRank)
	},
}
