package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListToolsTool handles the compass_list_tools MCP tool.
type ListToolsTool struct {
	catalog service.CatalogService
}

func NewListToolsTool(catalog service.CatalogService) *ListToolsTool {
	return &ListToolsTool{catalog: catalog}
}

func (t *ListToolsTool) Definition() mcp.Tool {
	return mcp.NewTool("compass_list_tools",
		mcp.WithDescription("List strategy tools in the catalog, optionally narrowed to a category or to what a plan can open."),
		mcp.WithString("category",
			mcp.Description("Tool category, e.g. Growth, Risk, Operations"),
		),
		mcp.WithString("plan",
			mcp.Description("Only list tools this plan can open; omit for the full catalog"),
		),
	)
}

func (t *ListToolsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := planArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filter := service.ToolFilter{
		Category: domain.ToolCategory(strings.TrimSpace(req.GetString("category", ""))),
		Plan:     plan,
		All:      plan == nil,
	}

	tools, err := t.catalog.ListTools(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(tools) == 0 {
		return mcp.NewToolResultText("No tools match."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d tools:\n\n", len(tools))
	writeToolList(&b, tools)
	return mcp.NewToolResultText(b.String()), nil
}
