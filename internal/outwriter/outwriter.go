// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
)

// OutWriter provides a unified interface for all output operations.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport writes the top performers using the configured output format.
func (ow *OutWriter) WriteReport(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	return PrintReport(report, meta, cfg)
}

// WriteRanking writes the full eligible ranking.
func (ow *OutWriter) WriteRanking(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	return PrintRanking(report, meta, cfg)
}
