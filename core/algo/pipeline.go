package algo

import "github.com/huangsam/salesrank/schema"

// ComputeRanking filters, scores and ranks the people without truncating.
func ComputeRanking(people []schema.Person, def schema.ReportDefinition) schema.Report {
	candidates, warnings := FilterEligible(people, def.PeriodLimit)
	scored, overflowed := DropNonFinite(ScoreCandidates(candidates, def))
	ranked := RankEntries(scored)
	return schema.Report{
		Entries:  ranked,
		Eligible: len(ranked),
		Warnings: append(warnings, overflowed...),
	}
}

// ComputeTopPerformers runs the whole pipeline and keeps the top fraction of
// the ranking defined by def.TopPerformersThreshold. It has no side effects;
// warnings are returned in the report for the caller to surface.
func ComputeTopPerformers(people []schema.Person, def schema.ReportDefinition) schema.Report {
	report := ComputeRanking(people, def)
	report.Entries = SelectTop(report.Entries, def.TopPerformersThreshold)
	return report
}
