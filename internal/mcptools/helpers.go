package mcptools

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

// stringSliceArg reads an array of strings, skipping non-string entries.
func stringSliceArg(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// stringMapArg reads an object of string values.
func stringMapArg(req mcp.CallToolRequest, key string) (map[string]string, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return map[string]string{}, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("'%s' must be an object", key)
	}
	out := make(map[string]string, len(obj))
	for k, v := range obj {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("'%s.%s' must be a string", key, k)
		}
		out[k] = s
	}
	return out, nil
}

func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// planArg returns nil when the plan argument is absent.
func planArg(req mcp.CallToolRequest) (*domain.Plan, error) {
	raw := strings.TrimSpace(req.GetString("plan", ""))
	if raw == "" {
		return nil, nil
	}
	p, err := domain.ParsePlan(raw)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func writeToolList(b *strings.Builder, tools []domain.ToolRecord) {
	for _, t := range tools {
		fmt.Fprintf(b, "- **%s** (`%s`): %s, %s, %s plan\n", t.Name, t.ID, t.Category, t.Complexity, t.RequiredPlan)
	}
}
