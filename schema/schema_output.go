package schema

import "time"

// Relative performance labels.
const (
	EliteLabel      = "Elite"
	StrongLabel     = "Strong"
	SolidLabel      = "Solid"
	DevelopingLabel = "Developing"
)

// EnrichedEntry adds presentation data to a ScoreEntry.
type EnrichedEntry struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	ScoreEntry
}

// GetPlainLabel returns a label for score relative to the best score of the report.
// Scores are unbounded, so the label reflects the share of the leader's score.
func GetPlainLabel(score, best float64) string {
	if best <= 0 {
		return DevelopingLabel
	}
	ratio := score / best * 100
	switch {
	case ratio >= 90:
		return EliteLabel
	case ratio >= 75:
		return StrongLabel
	case ratio >= 50:
		return SolidLabel
	default:
		return DevelopingLabel
	}
}

// EnrichEntries adds rank and label to a list of ranked entries.
func EnrichEntries(entries []ScoreEntry) []EnrichedEntry {
	output := make([]EnrichedEntry, len(entries))
	var best float64
	if len(entries) > 0 {
		best = entries[0].Score
	}
	for i, e := range entries {
		output[i] = EnrichedEntry{
			Rank:       i + 1,
			Label:      GetPlainLabel(e.Score, best),
			ScoreEntry: e,
		}
	}
	return output
}

// RunMeta describes a single run for the structured outputs.
type RunMeta struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source"` // People file or table the run read from
	Definition  ReportDefinition `json:"definition"`
	Eligible    int              `json:"eligible"`
	Selected    int              `json:"selected"`
}

// RankingOutput is the JSON document written for a report or ranking.
type RankingOutput struct {
	Meta     RunMeta         `json:"meta"`
	Entries  []EnrichedEntry `json:"entries"`
	Warnings []Warning       `json:"warnings"`
}
