package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/applebridge/osascript-mcp-server/configs"
	"github.com/applebridge/osascript-mcp-server/internal/app"
	"github.com/applebridge/osascript-mcp-server/internal/audit"
	"github.com/applebridge/osascript-mcp-server/internal/catalog"
	"github.com/applebridge/osascript-mcp-server/internal/config"
	"github.com/applebridge/osascript-mcp-server/internal/dispatch"
	"github.com/applebridge/osascript-mcp-server/internal/log"
	"github.com/applebridge/osascript-mcp-server/internal/osascript"
	"github.com/applebridge/osascript-mcp-server/internal/render"
	"github.com/applebridge/osascript-mcp-server/internal/startup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	var rendered []byte
	if cfg.CatalogPath != "" {
		rendered, err = render.File(cfg.CatalogPath)
	} else {
		rendered, err = render.Bytes("tools.yaml", configs.Default())
	}
	if err != nil {
		logger.Error("render catalog failed", "error", err)
		os.Exit(1)
	}

	table, err := catalog.Load(rendered)
	if err != nil {
		logger.Error("parse catalog failed", "error", err)
		os.Exit(1)
	}

	runner := osascript.New(osascript.Options{
		Binary:     cfg.Interpreter,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		OutputCap:  cfg.OutputCap,
	}, logger)

	dispatcher := dispatch.New(table, runner, cfg.AppName, logger, audit.New(logger))
	server := dispatch.Build(table, dispatcher)

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	if err := startup.Run(baseCtx, table.Server.StartupHooks, logger); err != nil {
		logger.Error("startup hooks failed", "error", err)
		os.Exit(1)
	}

	switch table.Server.Transport {
	case "http":
		if err := runHTTP(baseCtx, cfg, table, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := server.Run(baseCtx, &mcp.StdioTransport{}); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func runHTTP(ctx context.Context, envCfg config.Config, table *catalog.Catalog, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: table.Server.HTTP.Stateless,
	})

	application, err := app.New(ctx, table.Server, handler, logger, envCfg.ShutdownTimeout)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
