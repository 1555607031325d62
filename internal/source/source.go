// Package source provides the people and definition sources used by a run.
package source

import (
	"context"
	"fmt"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/loader"
	"github.com/huangsam/salesrank/schema"
)

// JSONPeopleSource reads people from a JSON file.
type JSONPeopleSource struct{}

var _ contract.PeopleSource = &JSONPeopleSource{} // Compile-time check

// LoadPeople decodes the JSON file at location.
func (s *JSONPeopleSource) LoadPeople(_ context.Context, location string) ([]schema.Person, error) {
	return loader.LoadPeople(location)
}

// Close is a no-op for file sources.
func (s *JSONPeopleSource) Close() error { return nil }

// JSONDefinitionSource reads the report definition from a JSON file.
type JSONDefinitionSource struct{}

var _ contract.DefinitionSource = &JSONDefinitionSource{} // Compile-time check

// LoadDefinition decodes the JSON file at location.
func (s *JSONDefinitionSource) LoadDefinition(_ context.Context, location string) (schema.ReportDefinition, error) {
	return loader.LoadDefinition(location)
}

// NewPeopleSource selects the people source from the configuration.
func NewPeopleSource(ctx context.Context, cfg *contract.Config) (contract.PeopleSource, error) {
	switch cfg.PeopleSource {
	case schema.JSONSource, "":
		return &JSONPeopleSource{}, nil
	case schema.SQLiteSource, schema.MySQLSource, schema.PostgreSQLSource:
		return NewSQLPeopleSource(ctx, cfg.PeopleSource, cfg.PeopleDSN, cfg.PeopleTable)
	default:
		return nil, fmt.Errorf("%w: %s", contract.ErrUnsupportedSource, cfg.PeopleSource)
	}
}

// NewSources builds the sources for a run. The caller must close the people source.
func NewSources(ctx context.Context, cfg *contract.Config) (contract.Sources, error) {
	people, err := NewPeopleSource(ctx, cfg)
	if err != nil {
		return contract.Sources{}, err
	}
	return contract.Sources{
		People:     people,
		Definition: &JSONDefinitionSource{},
	}, nil
}
