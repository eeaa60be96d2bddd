package cmd

import (
	"github.com/huangsam/llmpick/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the llmpick MCP server",
	Long:  `Launch an MCP server over stdio that lets AI agents rank and list local models via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Header logs are suppressed per request inside the handlers,
		// since stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, cacheManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
