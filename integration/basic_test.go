//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/salesrank/schema"
)

// TestReportWritesCSV runs the default command and checks TopPerformers.csv.
func TestReportWritesCSV(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	_, _, err := runSalesrank(t, dir, "people.json", "definition.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, schema.DefaultCSVFile))
	require.NoError(t, err)
	// Barbara is over the period limit; Grace (180) and Ada (120) beat Linus (50).
	assert.Equal(t, "Name, Score\nGrace, 180.0\n", string(data))
}

// TestReportSubcommandWithMultiplier checks the multiplier and the report subcommand.
func TestReportSubcommandWithMultiplier(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, `{"topPerformersThreshold": 100, "useExprienceMultiplier": true, "periodLimit": 12}`)

	_, _, err := runSalesrank(t, dir, "report", "people.json", "definition.json")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, schema.DefaultCSVFile))
	require.NoError(t, err)
	assert.Equal(t, "Name, Score\nGrace, 162.0\nAda, 144.0\nLinus, 50.0\n", string(data))
}

// TestReportEmptyResult checks the notice and that no file is created.
func TestReportEmptyResult(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, `{"topPerformersThreshold": 10, "useExprienceMultiplier": false, "periodLimit": 12}`)

	stdout, _, err := runSalesrank(t, dir, "people.json", "definition.json")
	require.NoError(t, err)
	assert.Contains(t, stdout, schema.EmptyResultMessage)

	_, statErr := os.Stat(filepath.Join(dir, schema.DefaultCSVFile))
	assert.True(t, os.IsNotExist(statErr))
}

// TestArgumentErrors checks the messages for bad positional arguments.
func TestArgumentErrors(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no arguments", args: nil, want: []string{"Please type 2 arguments."}},
		{name: "one argument", args: []string{"people.json"}, want: []string{"Please type a second argument as well."}},
		{
			name: "both not json",
			args: []string{"people.txt", "definition.txt"},
			want: []string{
				"The sales people file you've typed is not in .json format",
				"The report definition file you have typed is not in .json format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runSalesrank(t, dir, tt.args...)
			require.Error(t, err)
			for _, msg := range tt.want {
				assert.Contains(t, stderr, msg)
			}
		})
	}
}

// TestMissingPeopleFile checks the load failure message.
func TestMissingPeopleFile(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	_, stderr, err := runSalesrank(t, dir, "missing.json", "definition.json")
	require.Error(t, err)
	assert.Contains(t, stderr, "Problem with opening sales people file.")
}

// TestReportJSONOutput checks the JSON document printed to stdout.
func TestReportJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	stdout, _, err := runSalesrank(t, dir, "report", "people.json", "definition.json", "--output", "json")
	require.NoError(t, err)

	var out schema.RankingOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "Grace", out.Entries[0].Name)
	assert.Equal(t, 1, out.Entries[0].Rank)
	assert.Equal(t, 3, out.Meta.Eligible)
	assert.Equal(t, 1, out.Meta.Selected)
	assert.NotEmpty(t, out.Meta.RunID)
}

// TestReportTextOutput checks the table printed to stdout.
func TestReportTextOutput(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	stdout, _, err := runSalesrank(t, dir, "report", "people.json", "definition.json", "--output", "text")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Grace")
	assert.Contains(t, stdout, "Showing 1 of 3 eligible people")

	_, statErr := os.Stat(filepath.Join(dir, schema.DefaultCSVFile))
	assert.True(t, os.IsNotExist(statErr))
}

// TestRankShowsEveryEligiblePerson checks the rank command ignores the threshold.
func TestRankShowsEveryEligiblePerson(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, samplePeople, sampleDefinition)

	stdout, _, err := runSalesrank(t, dir, "rank", "people.json", "definition.json", "--output", "json")
	require.NoError(t, err)

	var out schema.RankingOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	names := make([]string, len(out.Entries))
	for i, e := range out.Entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"Grace", "Ada", "Linus"}, names)
}

// TestVersion checks the version command.
func TestVersion(t *testing.T) {
	stdout, _, err := runSalesrank(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "salesrank CLI")
}
