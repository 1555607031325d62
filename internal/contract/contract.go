// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/salesrank/schema"
)

// PeopleSource loads the salespeople for a run.
// This allows the core logic to be tested without files or databases.
type PeopleSource interface {
	// LoadPeople returns the people in input order. The location is a file path
	// for JSON sources and a display label for SQL sources.
	LoadPeople(ctx context.Context, location string) ([]schema.Person, error)

	// Close releases any resources held by the source.
	Close() error
}

// DefinitionSource loads the report definition for a run.
type DefinitionSource interface {
	LoadDefinition(ctx context.Context, location string) (schema.ReportDefinition, error)
}

// Sources bundles the input sources used by a run.
type Sources struct {
	People     PeopleSource
	Definition DefinitionSource
}

// ResultWriter renders the results of a run.
type ResultWriter interface {
	// WriteReport writes the selected top performers.
	WriteReport(report schema.Report, meta schema.RunMeta, cfg *Config) error

	// WriteRanking writes the full eligible ranking.
	WriteRanking(report schema.Report, meta schema.RunMeta, cfg *Config) error
}
