// Task suggestion MCP server.
//
// Exposes suggest_tasks and validate_description over stdio so MCP clients
// can ask for follow-up tasks. Logs go to stderr; stdout carries the protocol.
//
// Usage:
//
//	task-suggestion-mcp [config.yaml]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"task-suggestion/config"
	"task-suggestion/internal/app"
	suggestionMCP "task-suggestion/internal/suggestion/delivery/mcp"
	"task-suggestion/pkg/log"
)

const (
	serverName    = "task-suggestion"
	serverVersion = "1.0.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var path string
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	defer application.Close()

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Call validate_description to check whether a project description is usable, "+
			"then suggest_tasks to get follow-up tasks drawn from similar past projects."),
	)
	suggestionMCP.Register(s, logger, application.Suggestion)

	logger.Infof(ctx, "Serving %s %s on stdio", serverName, serverVersion)
	return server.ServeStdio(s)
}
