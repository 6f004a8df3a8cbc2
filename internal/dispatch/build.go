package dispatch

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/protocol"
)

// Build creates an MCP server whose tools all route through the dispatcher.
func Build(cfg *catalog.Catalog, d *Dispatcher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	for _, tool := range cfg.Tools {
		name := tool.Name
		mcpTool := &mcp.Tool{
			Name:        tool.Name,
			Title:       tool.Title,
			Description: tool.Description,
			InputSchema: tool.InputSchema,
			Annotations: buildAnnotations(tool.Annotations),
		}
		mcp.AddTool(server, mcpTool, func(ctx context.Context, _ *mcp.CallToolRequest, input map[string]any) (*mcp.CallToolResult, protocol.ToolResponse, error) {
			return nil, d.Handle(ctx, name, input), nil
		})
	}
	return server
}

func buildAnnotations(cfg *catalog.ToolAnnotationsConfig) *mcp.ToolAnnotations {
	if cfg == nil {
		return nil
	}
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    cfg.ReadOnlyHint,
		DestructiveHint: cfg.DestructiveHint,
		IdempotentHint:  cfg.IdempotentHint,
		OpenWorldHint:   cfg.OpenWorldHint,
		Title:           cfg.Title,
	}
}
