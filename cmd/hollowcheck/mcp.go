package main

import (
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/hollowcheck/hollowcheck/app"
	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/mcpserver"
	"github.com/hollowcheck/hollowcheck/service"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Expose hollowcheck's analyze operation to AI coding assistants over the Model Context Protocol.",
	}
	cmd.AddCommand(mcpServeCmd())
	return cmd
}

func mcpServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the hollowcheck MCP server (stdio)",
		RunE:  runMCPServe,
	}
	return cmd
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "hollowcheck")

	progress := service.NewProgressManager(false)
	defer progress.Close()

	useCase := app.NewAnalyzeUseCase(cacheDir, progress)
	s := mcpserver.New(useCase)

	if err := server.ServeStdio(s); err != nil {
		return apperr.Internal(err, "mcp server exited")
	}
	return nil
}
