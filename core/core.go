// Package core has core logic for loading inputs, running the pipeline and
// handing results to the writers.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/huangsam/salesrank/core/algo"
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/loader"
	"github.com/huangsam/salesrank/internal/observability"
	"github.com/huangsam/salesrank/internal/outwriter"
	"github.com/huangsam/salesrank/schema"
)

// ExecutorFunc defines the function signature for executing a command.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, sources contract.Sources, out contract.ResultWriter) error

// computeFunc is one of the pipelines in core/algo.
type computeFunc func(people []schema.Person, def schema.ReportDefinition) schema.Report

// ExecuteReport computes the top performers and writes them.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, sources contract.Sources, out contract.ResultWriter) error {
	report, meta, err := GetReportResults(ctx, cfg, sources)
	if err != nil {
		return err
	}
	return out.WriteReport(report, meta, cfg)
}

// ExecuteRank computes the full eligible ranking and writes it.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config, sources contract.Sources, out contract.ResultWriter) error {
	report, meta, err := GetRankingResults(ctx, cfg, sources)
	if err != nil {
		return err
	}
	return out.WriteRanking(report, meta, cfg)
}

// GetReportResults loads the inputs and returns the top performers.
func GetReportResults(ctx context.Context, cfg *contract.Config, sources contract.Sources) (schema.Report, schema.RunMeta, error) {
	return runPipeline(ctx, cfg, sources, algo.ComputeTopPerformers)
}

// GetRankingResults loads the inputs and returns every eligible person, ranked.
func GetRankingResults(ctx context.Context, cfg *contract.Config, sources contract.Sources) (schema.Report, schema.RunMeta, error) {
	return runPipeline(ctx, cfg, sources, algo.ComputeRanking)
}

// runPipeline loads both inputs, runs compute and logs every warning with the run ID.
func runPipeline(ctx context.Context, cfg *contract.Config, sources contract.Sources, compute computeFunc) (schema.Report, schema.RunMeta, error) {
	runID, ok := GetRunID(ctx)
	if !ok {
		runID = uuid.New().String()
	}
	logger := observability.GetLogger().With(zap.String(observability.RunIDKey, runID))

	people, err := sources.People.LoadPeople(ctx, cfg.PeoplePath)
	if err != nil {
		return schema.Report{}, schema.RunMeta{}, fmt.Errorf("%s %w", loader.PeopleLoadMessage, err)
	}
	def, err := sources.Definition.LoadDefinition(ctx, cfg.DefinitionPath)
	if err != nil {
		return schema.Report{}, schema.RunMeta{}, fmt.Errorf("%s %w", loader.DefinitionLoadMessage, err)
	}

	if !shouldSuppressHeader(ctx) {
		outwriter.LogRunHeader(os.Stderr, cfg, def)
	}

	start := time.Now()
	report := compute(people, def)
	logWarnings(logger, report.Warnings)
	logger.Debug("pipeline finished",
		zap.Int("people", len(people)),
		zap.Int("eligible", report.Eligible),
		zap.Int("selected", len(report.Entries)),
		zap.Duration("duration", time.Since(start)))

	meta := schema.RunMeta{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Source:      sourceLabel(cfg),
		Definition:  def,
		Eligible:    report.Eligible,
		Selected:    len(report.Entries),
	}
	return report, meta, nil
}

// logWarnings surfaces the pipeline warnings at Warn level.
func logWarnings(logger *zap.Logger, warnings []schema.Warning) {
	for _, w := range warnings {
		fields := []zap.Field{
			zap.String(observability.KindKey, string(w.Kind)),
			zap.String(observability.NameKey, w.Name),
			zap.Int(observability.IndexKey, w.Index),
		}
		if w.Kind == schema.DuplicateNameWarning {
			fields = append(fields, zap.Int("first_index", w.FirstIndex))
		}
		logger.Warn(w.Message(), fields...)
	}
}

// sourceLabel names where the people were read from.
func sourceLabel(cfg *contract.Config) string {
	if cfg.PeopleSource == schema.JSONSource || cfg.PeopleSource == "" {
		return cfg.PeoplePath
	}
	return fmt.Sprintf("%s:%s", cfg.PeopleSource, cfg.PeopleTable)
}
