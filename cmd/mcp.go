package cmd

import (
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the salesrank MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute sales reports via standard tools.`,
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// Tool calls carry their own paths, so placeholders satisfy argument validation.
		return sharedSetup(rootCtx, cmd, []string{"people.json", "definition.json"})
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		base := cfg.Clone()
		base.PeoplePath, base.DefinitionPath = "", ""
		if err := mcp.StartMCPServer(rootCtx, base); err != nil {
			contract.LogWarn("MCP server stopped", err)
			return err
		}
		return nil
	},
}
