package loader

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/huangsam/salesrank/core/algo"
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPeople(t *testing.T) {
	path := writeTemp(t, "people.json", `[
		{"name": "Alice", "totalSales": 100, "salesPeriod": 10, "experienceMultiplier": 2.0},
		{"name": "Bob", "totalSales": 50, "salesPeriod": 5, "experienceMultiplier": 1}
	]`)

	people, err := LoadPeople(path)
	require.NoError(t, err)
	assert.Equal(t, []schema.Person{
		{Name: "Alice", TotalSales: 100, SalesPeriod: 10, ExperienceMultiplier: 2.0},
		{Name: "Bob", TotalSales: 50, SalesPeriod: 5, ExperienceMultiplier: 1},
	}, people)
}

func TestDecodePeople(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		wantErr error
		errText string
	}{
		{name: "empty array", input: `[]`, count: 0},
		{name: "unknown keys ignored", input: `[{"name":"A","totalSales":1,"salesPeriod":1,"experienceMultiplier":1,"region":"EU"}]`, count: 1},
		{name: "not json", input: `not json`, wantErr: contract.ErrParse},
		{name: "object instead of array", input: `{"name":"A"}`, wantErr: contract.ErrParse},
		{name: "null document", input: `null`, wantErr: contract.ErrParse},
		{name: "wrong type", input: `[{"name":"A","totalSales":"lots","salesPeriod":1,"experienceMultiplier":1}]`, wantErr: contract.ErrParse},
		{
			name:    "missing sales period",
			input:   `[{"name":"A","totalSales":1,"salesPeriod":1,"experienceMultiplier":1},{"name":"B","totalSales":1,"experienceMultiplier":1}]`,
			wantErr: contract.ErrMissingField,
			errText: `"salesPeriod" in entry 1`,
		},
		{
			name:    "missing name",
			input:   `[{"totalSales":1,"salesPeriod":1,"experienceMultiplier":1}]`,
			wantErr: contract.ErrMissingField,
			errText: `"name" in entry 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := DecodePeople([]byte(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.errText != "" {
					assert.Contains(t, err.Error(), tt.errText)
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, people, tt.count)
		})
	}
}

func TestZeroValuesArePresent(t *testing.T) {
	people, err := DecodePeople([]byte(`[{"name":"","totalSales":0,"salesPeriod":0,"experienceMultiplier":0}]`))
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, schema.Person{}, people[0])
}

func TestDecodeDefinition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected schema.ReportDefinition
		wantErr  error
	}{
		{
			name:     "canonical key",
			input:    `{"topPerformersThreshold": 10, "useExprienceMultiplier": true, "periodLimit": 12}`,
			expected: schema.ReportDefinition{TopPerformersThreshold: 10, UseExperienceMultiplier: true, PeriodLimit: 12},
		},
		{
			name:     "correct spelling fallback",
			input:    `{"topPerformersThreshold": 50, "useExperienceMultiplier": true, "periodLimit": 3}`,
			expected: schema.ReportDefinition{TopPerformersThreshold: 50, UseExperienceMultiplier: true, PeriodLimit: 3},
		},
		{
			name:     "canonical key wins",
			input:    `{"topPerformersThreshold": 50, "useExprienceMultiplier": false, "useExperienceMultiplier": true, "periodLimit": 3}`,
			expected: schema.ReportDefinition{TopPerformersThreshold: 50, PeriodLimit: 3},
		},
		{
			name:    "missing multiplier flag",
			input:   `{"topPerformersThreshold": 50, "periodLimit": 3}`,
			wantErr: contract.ErrMissingField,
		},
		{
			name:    "missing threshold",
			input:   `{"useExprienceMultiplier": false, "periodLimit": 3}`,
			wantErr: contract.ErrMissingField,
		},
		{
			name:    "missing period limit",
			input:   `{"topPerformersThreshold": 50, "useExprienceMultiplier": false}`,
			wantErr: contract.ErrMissingField,
		},
		{
			name:    "array instead of object",
			input:   `[]`,
			wantErr: contract.ErrParse,
		},
		{
			name:    "truncated",
			input:   `{"topPerformersThreshold": 5`,
			wantErr: contract.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := DecodeDefinition([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, def)
		})
	}
}

func TestLoadMissingFiles(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadPeople(missing)
	assert.ErrorIs(t, err, contract.ErrIO)

	_, err = LoadDefinition(missing)
	assert.ErrorIs(t, err, contract.ErrIO)
}

func TestLoadDefinitionFromFile(t *testing.T) {
	path := writeTemp(t, "report.json", `{"topPerformersThreshold": 34, "useExprienceMultiplier": false, "periodLimit": 10}`)
	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, int64(34), def.TopPerformersThreshold)
}

func TestDecoderMatchesStandardLibrary(t *testing.T) {
	assert.Same(t, jsoniter.ConfigCompatibleWithStandardLibrary, json)
}

func TestHugeThresholdSelectsEveryone(t *testing.T) {
	def, err := DecodeDefinition([]byte(`{"topPerformersThreshold": 4611686018427387904, "useExprienceMultiplier": false, "periodLimit": 10}`))
	require.NoError(t, err)
	assert.Equal(t, int64(4611686018427387904), def.TopPerformersThreshold)

	people, err := DecodePeople([]byte(`[
		{"name": "Alice", "totalSales": 100, "salesPeriod": 10, "experienceMultiplier": 1},
		{"name": "Bob", "totalSales": 50, "salesPeriod": 5, "experienceMultiplier": 1},
		{"name": "Carol", "totalSales": 90, "salesPeriod": 3, "experienceMultiplier": 1}
	]`))
	require.NoError(t, err)

	report := algo.ComputeTopPerformers(people, def)
	assert.Len(t, report.Entries, 3)
}
