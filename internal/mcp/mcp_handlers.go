package mcp

import (
	"context"
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huangsam/salesrank/core"
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg    *contract.Config
	newSources SourceFactory
}

// resultsFunc is one of the core result getters.
type resultsFunc func(ctx context.Context, cfg *contract.Config, sources contract.Sources) (schema.Report, schema.RunMeta, error)

func (h *toolHandler) handleGetTopPerformers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, request, core.GetReportResults)
}

func (h *toolHandler) handleGetEligibleRanking(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, request, core.GetRankingResults)
}

// run validates the tool arguments, runs the pipeline and renders the JSON result.
// Failures are reported as tool errors, never as raw errors.
func (h *toolHandler) run(ctx context.Context, request mcp.CallToolRequest, getResults resultsFunc) (*mcp.CallToolResult, error) {
	paths, err := contract.ValidateInputArgs([]string{
		request.GetString("people_path", ""),
		request.GetString("definition_path", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	cfg := h.baseCfg.Clone()
	cfg.PeoplePath = paths.People
	cfg.DefinitionPath = paths.Definition

	sources, err := h.newSources(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open sources: %v", err)), nil
	}
	defer func() { _ = sources.People.Close() }()

	report, meta, err := getResults(core.WithSuppressHeader(ctx), cfg, sources)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("report failed: %v", err)), nil
	}

	warnings := report.Warnings
	if warnings == nil {
		warnings = []schema.Warning{}
	}
	jsonData, err := json.MarshalIndent(schema.RankingOutput{
		Meta:     meta,
		Entries:  schema.EnrichEntries(report.Entries),
		Warnings: warnings,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}
