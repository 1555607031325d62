package schema_test

import (
	"testing"

	"github.com/huangsam/salesrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		best     float64
		expected string
	}{
		{"Leader", 20.0, 20.0, schema.EliteLabel},
		{"Elite Lower", 18.0, 20.0, schema.EliteLabel},
		{"Strong Upper", 17.9, 20.0, schema.StrongLabel},
		{"Strong Lower", 15.0, 20.0, schema.StrongLabel},
		{"Solid Lower", 10.0, 20.0, schema.SolidLabel},
		{"Developing", 9.9, 20.0, schema.DevelopingLabel},
		{"Zero Best", 0.0, 0.0, schema.DevelopingLabel}, // Edge case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.GetPlainLabel(tt.score, tt.best))
		})
	}
}

func TestEnrichEntries(t *testing.T) {
	entries := []schema.ScoreEntry{
		{Name: "Alice", Score: 20},
		{Name: "Bob", Score: 16},
		{Name: "Carol", Score: 4},
	}

	enriched := schema.EnrichEntries(entries)

	assert.Len(t, enriched, 3)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, schema.EliteLabel, enriched[0].Label)
	assert.Equal(t, "Alice", enriched[0].Name)
	assert.Equal(t, 2, enriched[1].Rank)
	assert.Equal(t, schema.StrongLabel, enriched[1].Label)
	assert.Equal(t, 3, enriched[2].Rank)
	assert.Equal(t, schema.DevelopingLabel, enriched[2].Label)

	assert.Empty(t, schema.EnrichEntries(nil))
}

func TestWarningMessage(t *testing.T) {
	dup := schema.Warning{Kind: schema.DuplicateNameWarning, Name: "Alice", Index: 2}
	assert.Equal(t, "Alice is found more than once. Please enter each person only 1 time!", dup.Message())

	bad := schema.Warning{Kind: schema.InvalidSalesPeriodWarning, Name: "Bob", Index: 0}
	assert.Contains(t, bad.Message(), "non-positive sales period")

	huge := schema.Warning{Kind: schema.NonFiniteScoreWarning, Name: "Carl", Index: 1}
	assert.Contains(t, huge.Message(), "too large to represent")
}

func TestReportHelpers(t *testing.T) {
	var empty schema.Report
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0.0, empty.BestScore())

	r := schema.Report{Entries: []schema.ScoreEntry{{Name: "A", Score: 3}, {Name: "B", Score: 1}}}
	assert.False(t, r.IsEmpty())
	assert.Equal(t, 3.0, r.BestScore())
}
