package startup

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/applebridge/osascript-mcp-server/internal/catalog"
)

// Run executes configured startup hooks sequentially. A hook typically
// launches the host application (e.g. "open -a iTerm") before the first
// probe.
func Run(ctx context.Context, hooks []catalog.HookConfig, logger *slog.Logger) error {
	for idx, hook := range hooks {
		if strings.TrimSpace(hook.Command) == "" {
			continue
		}
		hookCtx := ctx
		var cancel context.CancelFunc
		if strings.TrimSpace(hook.Timeout) != "" {
			timeout, err := time.ParseDuration(hook.Timeout)
			if err != nil {
				return fmt.Errorf("startup hook %d: invalid timeout: %w", idx, err)
			}
			hookCtx, cancel = context.WithTimeout(ctx, timeout)
		}

		if logger != nil {
			logger.Info("running startup hook", "index", idx, "command", hook.Command)
		}

		cmd := exec.CommandContext(hookCtx, hook.Command, hook.Args...)
		var output bytes.Buffer
		cmd.Stdout = &output
		cmd.Stderr = &output
		err := cmd.Run()
		if cancel != nil {
			cancel()
		}
		trimmed := strings.TrimSpace(output.String())
		if err != nil {
			if logger != nil && trimmed != "" {
				logger.Error("startup hook failed", "index", idx, "output", trimmed)
			}
			return fmt.Errorf("startup hook %d failed: %w", idx, err)
		}
		if logger != nil && trimmed != "" {
			logger.Info("startup hook output", "index", idx, "output", trimmed)
		}
	}
	return nil
}
