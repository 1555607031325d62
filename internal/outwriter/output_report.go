package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/parquet"
	"github.com/huangsam/salesrank/schema"
)

// csvHeader is the first line of the CSV report.
const csvHeader = "Name, Score"

// PrintReport outputs the top performers, dispatching on the configured format.
// An empty report writes nothing and prints a notice instead.
func PrintReport(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	if report.IsEmpty() {
		return writeEmptyNotice(os.Stdout)
	}

	fmtFloat := createFormatters(cfg.Precision)
	outputFile := cfg.ResolvedOutputFile()

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(outputFile, func(w io.Writer) error {
			return writeJSONReport(w, report, meta)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(outputFile, func(w io.Writer) error {
			return parquet.WritePerformers(w, parquet.ConvertEntries(schema.EnrichEntries(report.Entries), meta))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.TextOut:
		return writeWithFile(outputFile, func(w io.Writer) error {
			return writeTable(w, report, meta, cfg, fmtFloat)
		}, "Wrote table")
	default:
		if err := writeWithFile(outputFile, func(w io.Writer) error {
			return writeCSVReport(w, report.Entries, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	return nil
}

// PrintRanking outputs the full eligible ranking. JSON is honored; every other
// format renders the table, since the ranking is meant for inspection.
func PrintRanking(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	if report.IsEmpty() {
		return writeEmptyNotice(os.Stdout)
	}

	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONReport(w, report, meta)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeTable(w, report, meta, cfg, createFormatters(cfg.Precision))
	}, "Wrote table")
}

// writeEmptyNotice prints the message shown when nobody qualifies.
func writeEmptyNotice(w io.Writer) error {
	_, err := fmt.Fprintln(w, schema.EmptyResultMessage)
	return err
}

// writeCSVReport writes the "Name, Score" layout, one line per entry in rank order.
func writeCSVReport(w io.Writer, entries []schema.ScoreEntry, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s, %s\n", quoteName(e.Name), fmtFloat(e.Score)); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONReport writes the entries with rank, label and run metadata.
func writeJSONReport(w io.Writer, report schema.Report, meta schema.RunMeta) error {
	warnings := report.Warnings
	if warnings == nil {
		warnings = []schema.Warning{}
	}
	return writeJSON(w, schema.RankingOutput{
		Meta:     meta,
		Entries:  schema.EnrichEntries(report.Entries),
		Warnings: warnings,
	})
}

// writeTable generates and writes the human-readable table.
func writeTable(w io.Writer, report schema.Report, meta schema.RunMeta, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Score", "Label"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	best := report.BestScore()
	maxWidth := getMaxTableNameWidth(cfg)
	data := make([][]string, 0, len(report.Entries))
	for i, e := range report.Entries {
		label := schema.GetPlainLabel(e.Score, best)
		if cfg.UseColors {
			label = contract.GetColorLabel(e.Score, best)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(e.Name, maxWidth),
			fmtFloat(e.Score),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	def := meta.Definition
	if _, err := fmt.Fprintf(w, "Showing %d of %d eligible people (threshold: %d%%, period limit: %d, multiplier: %t)\n",
		len(report.Entries), report.Eligible, def.TopPerformersThreshold, def.PeriodLimit, def.UseExperienceMultiplier); err != nil {
		return err
	}
	if len(report.Warnings) > 0 {
		if _, err := fmt.Fprintf(w, "%d warning(s) raised, see log output\n", len(report.Warnings)); err != nil {
			return err
		}
	}
	return nil
}
