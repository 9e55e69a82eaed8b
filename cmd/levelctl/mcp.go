package main

import (
	"github.com/spf13/cobra"

	"github.com/Ko-stant/dungeon-layout-engine/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the layout tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	server := mcp.NewServer(cfg.SessionOptions(), version)
	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}
