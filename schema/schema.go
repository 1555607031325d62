// Package schema has the models and constants shared by all parts of salesrank.
package schema

import "fmt"

// Person is a single salesperson as read from the people input.
// Values are treated as immutable once loaded.
type Person struct {
	Name                 string  `json:"name"`                 // Unique key for the report
	TotalSales           int64   `json:"totalSales"`           // Total sales over the period
	SalesPeriod          int64   `json:"salesPeriod"`          // Length of the sales period in time units
	ExperienceMultiplier float64 `json:"experienceMultiplier"` // Optional scaling applied to the score
}

// ReportDefinition controls eligibility, scoring and truncation for one run.
type ReportDefinition struct {
	TopPerformersThreshold  int64 `json:"topPerformersThreshold"` // Percentage of ranked people to keep
	UseExperienceMultiplier bool  `json:"useExprienceMultiplier"` // Key spelling matches the input format
	PeriodLimit             int64 `json:"periodLimit"`            // Inclusive upper bound on SalesPeriod
}

// ScoreEntry is one (name, score) pair of the ordered score mapping.
type ScoreEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
	// Index is the position of the person in the input sequence. Ranking uses it
	// to break ties between equal scores.
	Index int `json:"-"`
}

// WarningKind identifies the kind of non-fatal problem found while building a report.
type WarningKind string

// All warning kinds emitted by the pipeline.
const (
	DuplicateNameWarning      WarningKind = "duplicate_name"
	InvalidSalesPeriodWarning WarningKind = "invalid_sales_period"
	NonFiniteScoreWarning     WarningKind = "non_finite_score"
)

// Warning is a structured, non-fatal event produced by the pipeline.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Name       string      `json:"name"`
	Index      int         `json:"index"`                 // Input position of the offending record
	FirstIndex int         `json:"first_index,omitempty"` // Input position of the retained record (duplicates only)
}

// Message returns a human-readable description of the warning.
func (w Warning) Message() string {
	switch w.Kind {
	case DuplicateNameWarning:
		return fmt.Sprintf("%s is found more than once. Please enter each person only 1 time!", w.Name)
	case InvalidSalesPeriodWarning:
		return fmt.Sprintf("%s has a non-positive sales period and was skipped", w.Name)
	case NonFiniteScoreWarning:
		return fmt.Sprintf("%s has a score too large to represent and was skipped", w.Name)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Name)
	}
}

// Report is the output of the scoring pipeline.
type Report struct {
	Entries  []ScoreEntry `json:"entries"`  // Ranked entries, best first
	Eligible int          `json:"eligible"` // Number of distinct eligible people before truncation
	Warnings []Warning    `json:"warnings"`
}

// IsEmpty reports whether no performer qualified.
func (r Report) IsEmpty() bool {
	return len(r.Entries) == 0
}

// BestScore returns the highest score in the report, or zero when empty.
func (r Report) BestScore() float64 {
	if len(r.Entries) == 0 {
		return 0
	}
	return r.Entries[0].Score
}
