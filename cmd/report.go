package cmd

import (
	"github.com/huangsam/salesrank/core"
	"github.com/spf13/cobra"
)

// reportCmd computes the top performers and exports them.
var reportCmd = &cobra.Command{
	Use:   "report <people.json> <definition.json>",
	Short: "Export the top performers chosen by a report definition.",
	Long: `Score every eligible salesperson and export the top fraction of the ranking.

A person is eligible when their sales period does not exceed the definition's
periodLimit. Scores are totalSales / salesPeriod, multiplied by the
experience multiplier when the definition enables it. The top
floor(N * topPerformersThreshold / 100) people are kept.

Examples:
  # Write TopPerformers.csv
  salesrank report people.json definition.json

  # Show the result as a table instead
  salesrank report people.json definition.json --output text

  # Read people from a SQLite table; the first argument is then only a label
  salesrank report people.json definition.json --people-source sqlite --people-dsn sales.db`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runWithSources(core.ExecuteReport)
	},
}
