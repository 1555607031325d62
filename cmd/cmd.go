// Package cmd defines the command-line interface for salesrank.
package cmd

import (
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.CSVOut), "Output format: csv or text or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (csv and parquet default to TopPerformers.*)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal places for scores (0 = shortest exact form)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: console or json")
	rootCmd.PersistentFlags().String("log-file", "", "Optional rotating log file (JSON lines)")
	rootCmd.PersistentFlags().String("people-source", string(schema.JSONSource), "People source: json or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("people-dsn", "", "Database connection string for sql people sources (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("people-table", contract.DefaultPeopleTable, "Table holding the salespeople for sql people sources")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
