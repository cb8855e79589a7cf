package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/search-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	appLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = appLogger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/search-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "search-agent",
			Version: setup.Version,
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "deep_search",
		Description: "Answer a natural-language question with web search and reasoning. Modes: default (single search), pro (multi-step tool use), code (computational planning).",
	}, mcpadapter.NewDeepSearchHandler(deps.Router))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_web",
		Description: "Run a reranked web search and return numbered sources without answer synthesis. Faster than deep_search.",
	}, mcpadapter.NewWebSearchHandler(deps.WebSearch))

	return server
}
