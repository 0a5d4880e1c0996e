// Package mcptools exposes diagnosis, the tool catalog, and the advisor to
// MCP clients over stdio.
//
// Each tool follows one shape: a struct holding its use case, Definition()
// for the schema, and Handle() for calls. Use-case failures are returned as
// tool errors so the client sees the code and message.
package mcptools

import (
	"github.com/alexanderramin/compass/internal/app"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/mark3labs/mcp-go/server"
)

// Version is reported to MCP clients.
var Version = "dev"

type Deps struct {
	Catalog  service.CatalogService
	Diagnose app.DiagnoseUseCase
	Advisor  app.AdvisorUseCase
}

// Tools returns every tool with its handler, in registration order.
func Tools(deps Deps) []server.ServerTool {
	diagnose := NewDiagnoseTool(deps.Diagnose)
	listTools := NewListToolsTool(deps.Catalog)
	advisor := NewAdvisorTool(deps.Advisor)
	return []server.ServerTool{
		{Tool: diagnose.Definition(), Handler: diagnose.Handle},
		{Tool: listTools.Definition(), Handler: listTools.Handle},
		{Tool: advisor.Definition(), Handler: advisor.Handle},
	}
}

// New creates the MCP server with all compass tools registered.
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"compass",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	s.AddTools(Tools(deps)...)
	return s
}

// ServeStdio blocks serving s on stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = `compass recommends strategy frameworks for a business challenge.
Call compass_list_tools to browse the catalog, compass_diagnose with a challenge,
urgency, scope, and optional capability answers for a ranked recommendation, and
compass_advisor for free-text strategy questions.`
