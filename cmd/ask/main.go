package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

// One-shot query runner, mainly for smoke-testing the agents without
// the HTTP server.
func main() {
	query := flag.String("query", "", "Query to answer")
	mode := flag.String("mode", string(models.ModeDefault), "Processing mode: default, pro or code")
	flag.Parse()

	// Setup logging
	appLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = appLogger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	queryCtx := models.QueryContext{
		RequestID: uuid.NewString(),
		Text:      *query,
		Mode:      models.Mode(*mode),
		CreatedAt: time.Now(),
	}

	result, err := deps.Router.Handle(ctx, queryCtx)
	if err != nil {
		log.Fatal().Err(err).Msg("Query failed")
	}

	fmt.Println(result.Response)
}
