// Package parquet exports ranked performers to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/salesrank/schema"
	"github.com/parquet-go/parquet-go"
)

// PerformerRow is one ranked person of a run.
type PerformerRow struct {
	// RunID identifies the run that produced the row
	RunID string `parquet:"run_id,snappy"`

	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	Name  string  `parquet:"name,snappy"`
	Score float64 `parquet:"score,snappy"`

	// Label is the score relative to the leader (Elite, Strong, Solid, Developing)
	Label string `parquet:"label,snappy"`

	// GeneratedAt is when the run finished (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// WritePerformers writes the rows to w as a single Parquet file.
func WritePerformers(w io.Writer, rows []PerformerRow) error {
	writer := parquet.NewGenericWriter[PerformerRow](w)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertEntries converts enriched entries to Parquet rows for a run.
func ConvertEntries(entries []schema.EnrichedEntry, meta schema.RunMeta) []PerformerRow {
	rows := make([]PerformerRow, len(entries))
	for i, e := range entries {
		rows[i] = PerformerRow{
			RunID:       meta.RunID,
			Rank:        int32(e.Rank),
			Name:        e.Name,
			Score:       e.Score,
			Label:       e.Label,
			GeneratedAt: meta.GeneratedAt,
		}
	}
	return rows
}
