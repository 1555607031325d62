package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/huangsam/salesrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		precision int
		expected  string
	}{
		{"integral shortest", 10, 0, "10.0"},
		{"fraction shortest", 1.5, 0, "1.5"},
		{"repeating shortest", 1.0 / 3.0, 0, "0.3333333333333333"},
		{"zero shortest", 0, 0, "0.0"},
		{"two decimals", 1.0 / 3.0, 2, "0.33"},
		{"six decimals", 20, 6, "20.000000"},
		{"large integral", 1e21, 0, "1.0E21"},
		{"just below plain upper bound", 9999999, 0, "9999999.0"},
		{"plain upper bound", 1e7, 0, "1.0E7"},
		{"eight digit score", 12345678, 0, "1.2345678E7"},
		{"plain lower bound", 0.001, 0, "0.001"},
		{"tiny score", 0.00012, 0, "1.2E-4"},
		{"negative large", -25000000, 0, "-2.5E7"},
		{"large with fixed precision", 12345678, 2, "12345678.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatScore(tt.score, tt.precision))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, schema.EliteLabel, GetColorLabel(95, 100))
	assert.Equal(t, schema.StrongLabel, GetColorLabel(80, 100))
	assert.Equal(t, schema.SolidLabel, GetColorLabel(50, 100))
	assert.Equal(t, schema.DevelopingLabel, GetColorLabel(10, 100))
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"short name unchanged", "Alice", 10, "Alice"},
		{"exact width unchanged", "Alice", 5, "Alice"},
		{"long name truncated", "Bartholomew Jones", 10, "Barthol..."},
		{"unicode safe", "Zoë Østergård", 6, "Zoë..."},
		{"tiny width ignored", "Alice", 3, "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("")
	assert.Error(t, err)
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
