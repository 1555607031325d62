// Package algo has the pure scoring, filtering and ranking logic for salesrank.
package algo

import "github.com/huangsam/salesrank/schema"

// ComputeScore returns the sales rate of a person, optionally scaled by the
// experience multiplier. The caller guarantees SalesPeriod > 0.
func ComputeScore(p schema.Person, def schema.ReportDefinition) float64 {
	rate := float64(p.TotalSales) / float64(p.SalesPeriod)
	if def.UseExperienceMultiplier {
		return rate * p.ExperienceMultiplier
	}
	return rate
}
