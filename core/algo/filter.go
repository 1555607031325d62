package algo

import (
	"math"

	"github.com/huangsam/salesrank/schema"
)

// Candidate is an eligible person together with its position in the input.
type Candidate struct {
	schema.Person
	Index int
}

// FilterEligible keeps the people whose sales period does not exceed periodLimit.
// Only the first eligible record for a name is kept; later ones produce a
// duplicate warning. Records with a non-positive sales period are skipped with a
// warning so that scoring never divides by zero.
func FilterEligible(people []schema.Person, periodLimit int64) ([]Candidate, []schema.Warning) {
	var warnings []schema.Warning
	candidates := make([]Candidate, 0, len(people))
	seen := make(map[string]int, len(people))

	for i, p := range people {
		if p.SalesPeriod > periodLimit {
			continue
		}
		if p.SalesPeriod <= 0 {
			warnings = append(warnings, schema.Warning{
				Kind:  schema.InvalidSalesPeriodWarning,
				Name:  p.Name,
				Index: i,
			})
			continue
		}
		if first, ok := seen[p.Name]; ok {
			warnings = append(warnings, schema.Warning{
				Kind:       schema.DuplicateNameWarning,
				Name:       p.Name,
				Index:      i,
				FirstIndex: first,
			})
			continue
		}
		seen[p.Name] = i
		candidates = append(candidates, Candidate{Person: p, Index: i})
	}
	return candidates, warnings
}

// ScoreCandidates computes the score of every candidate, preserving their order.
func ScoreCandidates(candidates []Candidate, def schema.ReportDefinition) []schema.ScoreEntry {
	entries := make([]schema.ScoreEntry, len(candidates))
	for i, c := range candidates {
		entries[i] = schema.ScoreEntry{
			Name:  c.Name,
			Score: ComputeScore(c.Person, def),
			Index: c.Index,
		}
	}
	return entries
}

// DropNonFinite removes entries whose score overflowed to an infinity or NaN,
// emitting a warning for each one. Order is preserved.
func DropNonFinite(entries []schema.ScoreEntry) ([]schema.ScoreEntry, []schema.Warning) {
	var warnings []schema.Warning
	kept := entries[:0:0]
	for _, e := range entries {
		if math.IsInf(e.Score, 0) || math.IsNaN(e.Score) {
			warnings = append(warnings, schema.Warning{
				Kind:  schema.NonFiniteScoreWarning,
				Name:  e.Name,
				Index: e.Index,
			})
			continue
		}
		kept = append(kept, e)
	}
	return kept, warnings
}
