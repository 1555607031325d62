// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/source"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SourceFactory builds the input sources for a tool call.
type SourceFactory func(ctx context.Context, cfg *contract.Config) (contract.Sources, error)

// NewMCPServer initializes and configures the salesrank MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, newSources SourceFactory) *server.MCPServer {
	s := server.NewMCPServer(
		"Salesrank Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	if newSources == nil {
		newSources = source.NewSources
	}
	h := &toolHandler{
		baseCfg:    baseCfg,
		newSources: newSources,
	}

	// --- 1. Tool: get_top_performers ---
	s.AddTool(mcp.NewTool("get_top_performers",
		mcp.WithDescription("Score salespeople and return the top performers selected by the report definition."),
		mcp.WithString("people_path", mcp.Description("Path to the sales people .json file."), mcp.Required()),
		mcp.WithString("definition_path", mcp.Description("Path to the report definition .json file."), mcp.Required()),
	), h.handleGetTopPerformers)

	// --- 2. Tool: get_eligible_ranking ---
	s.AddTool(mcp.NewTool("get_eligible_ranking",
		mcp.WithDescription("Score salespeople and return every eligible person ranked, before the threshold cut."),
		mcp.WithString("people_path", mcp.Description("Path to the sales people .json file."), mcp.Required()),
		mcp.WithString("definition_path", mcp.Description("Path to the report definition .json file."), mcp.Required()),
	), h.handleGetEligibleRanking)

	return s
}

// StartMCPServer starts the salesrank MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg, source.NewSources)
	return server.ServeStdio(s)
}
