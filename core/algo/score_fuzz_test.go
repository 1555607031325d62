package algo

import (
	"math"
	"testing"

	"github.com/huangsam/salesrank/schema"
)

// FuzzComputeTopPerformers fuzzes the pipeline with a pair of people and a definition.
func FuzzComputeTopPerformers(f *testing.F) {
	f.Add("Alice", int64(100), int64(10), 2.0, "Bob", int64(50), int64(5), 1.0, int64(50), true, int64(12))
	f.Add("Alice", int64(0), int64(0), 0.0, "Alice", int64(1), int64(1), 1.0, int64(100), false, int64(1))
	f.Add("Big", int64(10), int64(1), 1e308, "Small", int64(1), int64(1), 1.0, int64(math.MaxInt64/2), true, int64(5))
	f.Add("", int64(-5), int64(-1), -1.0, "x", int64(math.MaxInt32), int64(1), 3.5, int64(250), true, int64(0))

	f.Fuzz(func(t *testing.T,
		name1 string, sales1, period1 int64, mult1 float64,
		name2 string, sales2, period2 int64, mult2 float64,
		threshold int64, useMult bool, limit int64,
	) {
		// JSON input cannot carry NaN or Inf multipliers.
		for _, m := range []float64{mult1, mult2} {
			if math.IsNaN(m) || math.IsInf(m, 0) {
				t.Skip()
			}
		}
		people := []schema.Person{
			{Name: name1, TotalSales: sales1, SalesPeriod: period1, ExperienceMultiplier: mult1},
			{Name: name2, TotalSales: sales2, SalesPeriod: period2, ExperienceMultiplier: mult2},
		}
		def := schema.ReportDefinition{TopPerformersThreshold: threshold, UseExperienceMultiplier: useMult, PeriodLimit: limit}

		report := ComputeTopPerformers(people, def)

		if len(report.Entries) > report.Eligible {
			t.Fatalf("selected %d entries out of %d eligible", len(report.Entries), report.Eligible)
		}
		seen := make(map[string]bool)
		for i, e := range report.Entries {
			if seen[e.Name] {
				t.Fatalf("duplicate name %q in report", e.Name)
			}
			seen[e.Name] = true
			if people[e.Index].SalesPeriod > limit || people[e.Index].SalesPeriod <= 0 {
				t.Fatalf("ineligible person %q selected", e.Name)
			}
			if math.IsInf(e.Score, 0) || math.IsNaN(e.Score) {
				t.Fatalf("non-finite score for %q", e.Name)
			}
			if i > 0 && report.Entries[i-1].Score < e.Score {
				t.Fatalf("entries not sorted at %d", i)
			}
		}
	})
}
