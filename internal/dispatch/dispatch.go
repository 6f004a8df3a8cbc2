package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/applebridge/osascript-mcp-server/internal/audit"
	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/protocol"
	"github.com/applebridge/osascript-mcp-server/internal/script"
	"github.com/applebridge/osascript-mcp-server/internal/security"
)

// Runner executes composed scripts and the availability probe.
type Runner interface {
	// Run executes a script and returns trimmed interpreter output.
	Run(ctx context.Context, script string) (string, error)
	// Probe reports whether the host application responds.
	Probe(ctx context.Context, appName string) bool
}

// Dispatcher routes tool invocations to catalog operations. Every failure is
// normalized into a ToolResponse; no error escapes a request.
type Dispatcher struct {
	logger  *slog.Logger
	audit   audit.Logger
	runner  Runner
	appName string
	tools   map[string]*toolRuntime
}

type toolRuntime struct {
	cfg     catalog.ToolConfig
	limiter *limiter
}

// New builds a Dispatcher over the catalog's tools.
func New(cfg *catalog.Catalog, runner Runner, appName string, logger *slog.Logger, auditLog audit.Logger) *Dispatcher {
	tools := make(map[string]*toolRuntime, len(cfg.Tools))
	for _, tool := range cfg.Tools {
		tools[tool.Name] = &toolRuntime{
			cfg:     tool,
			limiter: newLimiter(tool.Limits),
		}
	}
	return &Dispatcher{
		logger:  logger,
		audit:   auditLog,
		runner:  runner,
		appName: appName,
		tools:   tools,
	}
}

// Handle runs one tool invocation end to end: availability precheck,
// argument binding, composition, execution, and response normalization.
func (d *Dispatcher) Handle(ctx context.Context, toolName string, args map[string]any) protocol.ToolResponse {
	redacted := security.RedactArguments(args)
	if d.logger != nil {
		d.logger.Info("tool call", "tool", toolName, "args", redacted)
	}
	if d.audit != nil {
		d.audit.Record(ctx, audit.Event{Type: "tool_call", Tool: toolName})
	}

	tool, ok := d.tools[toolName]
	if !ok {
		return d.fail(ctx, toolName, args, "", fmt.Sprintf("%v: %s", protocol.ErrUnknownOperation, toolName))
	}

	if tool.limiter != nil {
		if err := tool.limiter.allow(); err != nil {
			return d.fail(ctx, toolName, args, "", err.Error())
		}
	}

	if !d.runner.Probe(ctx, d.appName) {
		if d.audit != nil {
			d.audit.Record(ctx, audit.Event{Type: "probe_failed", Tool: toolName})
		}
		return d.fail(ctx, toolName, args, "", protocol.UnavailableMessage)
	}

	op, err := buildOperation(d.appName, tool.cfg, args)
	if err != nil {
		return d.fail(ctx, toolName, args, "", err.Error())
	}

	text := script.Compose(op)
	output, err := d.runner.Run(ctx, text)
	if err != nil {
		return d.fail(ctx, toolName, args, text, err.Error())
	}

	resp := protocol.ToolResponse{
		// Success means the interpreter did not answer with the sentinel
		// failure value, not that the host operation semantically succeeded.
		Success: output != protocol.SentinelFailure,
		Tool:    toolName,
		Script:  text,
		Args:    args,
	}
	if resp.Success {
		resp.Result = output
	} else {
		resp.Error = output
	}

	if d.audit != nil {
		eventType := "tool_ok"
		if !resp.Success {
			eventType = "tool_error"
		}
		d.audit.Record(ctx, audit.Event{Type: eventType, Tool: toolName, Detail: output})
	}
	return resp
}

func (d *Dispatcher) fail(ctx context.Context, toolName string, args map[string]any, scriptText, message string) protocol.ToolResponse {
	if d.logger != nil {
		d.logger.Warn("tool failed", "tool", toolName, "error", message)
	}
	if d.audit != nil {
		d.audit.Record(ctx, audit.Event{Type: "tool_error", Tool: toolName, Detail: message})
	}
	return protocol.ToolResponse{
		Success: false,
		Error:   message,
		Tool:    toolName,
		Script:  scriptText,
		Args:    args,
	}
}
