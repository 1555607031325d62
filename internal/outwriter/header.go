package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
)

// LogRunHeader prints a concise, 2-line header for a run. It goes to w
// (usually stderr) so it never mixes with report data on stdout.
func LogRunHeader(w io.Writer, cfg *contract.Config, def schema.ReportDefinition) {
	source := cfg.PeoplePath
	if cfg.PeopleSource != schema.JSONSource && cfg.PeopleSource != "" {
		source = fmt.Sprintf("%s table %s", cfg.PeopleSource, cfg.PeopleTable)
	}
	_, _ = fmt.Fprintf(w, "🔎 People: %s (definition: %s)\n", source, cfg.DefinitionPath)
	_, _ = fmt.Fprintf(w, "🎯 Top %d%% within a period of %d (multiplier: %t)\n",
		def.TopPerformersThreshold, def.PeriodLimit, def.UseExperienceMultiplier)
}
