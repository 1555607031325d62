package algo

import (
	"slices"

	"github.com/huangsam/salesrank/schema"
)

// RankEntries returns a copy of entries sorted by score in descending order.
// Equal scores are ordered by their input index, so the result is deterministic.
func RankEntries(entries []schema.ScoreEntry) []schema.ScoreEntry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b schema.ScoreEntry) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return a.Index - b.Index
	})
	return ranked
}

// TopCount returns floor(n * threshold / 100), clamped to [0, n].
func TopCount(n int, threshold int64) int {
	if n <= 0 || threshold <= 0 {
		return 0
	}
	if threshold >= 100 {
		return n
	}
	return int(int64(n) * threshold / 100)
}

// SelectTop keeps the leading threshold percent of the ranked entries.
// A count that rounds down to zero yields an empty, non-nil slice.
func SelectTop(ranked []schema.ScoreEntry, threshold int64) []schema.ScoreEntry {
	count := TopCount(len(ranked), threshold)
	if count == 0 {
		return []schema.ScoreEntry{}
	}
	return ranked[:count]
}
