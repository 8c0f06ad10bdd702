// Package mcpserver exposes hollowcheck's Analyze pipeline as a single
// mark3labs/mcp-go tool, grounded on openkraft's
// internal/adapters/inbound/mcp package, so an agent harness can run the
// same gate cmd/hollowcheck runs without shelling out.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/apperr"
	"github.com/hollowcheck/hollowcheck/internal/contractio"
	"github.com/hollowcheck/hollowcheck/internal/version"
)

// Analyzer is the capability mcpserver needs from app.AnalyzeUseCase,
// scoped down to keep this package independent of the app package's
// concrete wiring.
type Analyzer interface {
	Analyze(ctx context.Context, root string, contract *domain.Contract, opts domain.Options) (*domain.Report, error)
}

// New builds an MCP server exposing the hollowcheck_analyze tool over the
// given Analyzer.
func New(analyzer Analyzer) *server.MCPServer {
	s := server.NewMCPServer(
		"hollowcheck",
		version.GetVersion(),
		server.WithToolCapabilities(true),
	)
	registerTools(s, analyzer)
	return s
}

func registerTools(s *server.MCPServer, analyzer Analyzer) {
	s.AddTool(
		mcplib.NewTool("hollowcheck_analyze",
			mcplib.WithDescription("Runs the hollowcheck quality gate against a project root and returns the JSON report"),
			mcplib.WithString("root", mcplib.Required(), mcplib.Description("Absolute path to the project root to scan")),
			mcplib.WithString("contract_path", mcplib.Required(), mcplib.Description("Path to the hollowcheck contract YAML")),
			mcplib.WithBoolean("skip_registry_check", mcplib.Description("Skip the dependency verifier's network probes")),
		),
		handleAnalyze(analyzer),
	)
}

func handleAnalyze(analyzer Analyzer) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root, err := request.RequireString("root")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		contractPath, err := request.RequireString("contract_path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		contract, err := contractio.Load(contractPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading contract failed: %v", err)), nil
		}

		opts := domain.DefaultOptions()
		if skip, ok := request.GetArguments()["skip_registry_check"].(bool); ok {
			opts.SkipRegistryCheck = skip
		}

		report, err := analyzer.Analyze(ctx, root, contract, opts)
		if err != nil {
			if appErr, ok := err.(*apperr.Error); ok {
				return errorResult(appErr.Error()), nil
			}
			return errorResult(fmt.Sprintf("analyze failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
