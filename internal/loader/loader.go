// Package loader decodes the salespeople list and the report definition from JSON.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
)

// json decodes with the same semantics as encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Messages shown when an input file cannot be loaded.
const (
	PeopleLoadMessage     = "Problem with opening sales people file."
	DefinitionLoadMessage = "Problem with opening report definition file."
)

// rawPerson mirrors schema.Person with pointer fields so missing keys can be
// told apart from zero values.
type rawPerson struct {
	Name                 *string  `json:"name"`
	TotalSales           *int64   `json:"totalSales"`
	SalesPeriod          *int64   `json:"salesPeriod"`
	ExperienceMultiplier *float64 `json:"experienceMultiplier"`
}

// rawDefinition mirrors schema.ReportDefinition. The misspelled key is canonical;
// the correct spelling is only read when the canonical one is absent.
type rawDefinition struct {
	TopPerformersThreshold  *int64 `json:"topPerformersThreshold"`
	UseExprienceMultiplier  *bool  `json:"useExprienceMultiplier"`
	UseExperienceMultiplier *bool  `json:"useExperienceMultiplier"`
	PeriodLimit             *int64 `json:"periodLimit"`
}

// LoadPeople reads and decodes the salespeople file at path.
func LoadPeople(path string) ([]schema.Person, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePeople(data)
}

// LoadDefinition reads and decodes the report definition file at path.
func LoadDefinition(path string) (schema.ReportDefinition, error) {
	data, err := readFile(path)
	if err != nil {
		return schema.ReportDefinition{}, err
	}
	return DecodeDefinition(data)
}

// DecodePeople decodes a JSON array of people, preserving input order.
func DecodePeople(data []byte) ([]schema.Person, error) {
	var raw []rawPerson
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: sales people: %w", contract.ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: sales people: expected a JSON array", contract.ErrParse)
	}

	people := make([]schema.Person, 0, len(raw))
	for i, r := range raw {
		switch {
		case r.Name == nil:
			return nil, missingField("name", i)
		case r.TotalSales == nil:
			return nil, missingField("totalSales", i)
		case r.SalesPeriod == nil:
			return nil, missingField("salesPeriod", i)
		case r.ExperienceMultiplier == nil:
			return nil, missingField("experienceMultiplier", i)
		}
		people = append(people, schema.Person{
			Name:                 *r.Name,
			TotalSales:           *r.TotalSales,
			SalesPeriod:          *r.SalesPeriod,
			ExperienceMultiplier: *r.ExperienceMultiplier,
		})
	}
	return people, nil
}

// DecodeDefinition decodes a single report definition object.
func DecodeDefinition(data []byte) (schema.ReportDefinition, error) {
	var raw *rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return schema.ReportDefinition{}, fmt.Errorf("%w: report definition: %w", contract.ErrParse, err)
	}
	if raw == nil {
		return schema.ReportDefinition{}, fmt.Errorf("%w: report definition: expected a JSON object", contract.ErrParse)
	}

	useMultiplier := raw.UseExprienceMultiplier
	if useMultiplier == nil {
		useMultiplier = raw.UseExperienceMultiplier
	}

	switch {
	case raw.TopPerformersThreshold == nil:
		return schema.ReportDefinition{}, missingField("topPerformersThreshold", -1)
	case useMultiplier == nil:
		return schema.ReportDefinition{}, missingField("useExprienceMultiplier", -1)
	case raw.PeriodLimit == nil:
		return schema.ReportDefinition{}, missingField("periodLimit", -1)
	}

	return schema.ReportDefinition{
		TopPerformersThreshold:  *raw.TopPerformersThreshold,
		UseExperienceMultiplier: *useMultiplier,
		PeriodLimit:             *raw.PeriodLimit,
	}, nil
}

// readFile wraps every read failure as an I/O error.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", contract.ErrIO, path)
		}
		return nil, fmt.Errorf("%w: %w", contract.ErrIO, err)
	}
	return data, nil
}

// missingField builds an ErrMissingField error. A negative index means the
// field belongs to a top-level object.
func missingField(key string, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: %q", contract.ErrMissingField, key)
	}
	return fmt.Errorf("%w: %q in entry %d", contract.ErrMissingField, key, index)
}
