package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/search-agent/internal/api"
	"github.com/povarna/generative-ai-agents/search-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/search-agent/internal/setup/logger"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Deep Search Agent API",
			Description: "Web search and reasoning agents behind a single query endpoint",
			Version:     setup.Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "config", Description: "Static configuration"}},
		{TagProps: spec.TagProps{Name: "query", Description: "Query operations"}},
	}
}

func main() {
	// Setup logging
	appLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = appLogger

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx := context.Background()

	// Load Config and wire dependencies. A missing provider key aborts
	// start-up here rather than failing a mode at request time.
	cfg := setup.LoadConfig()
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// API
	handler := api.NewHandler(deps.Router, deps.Recorder, deps.Info, &appLogger)
	container := restful.NewContainer()
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	// OpenAPI
	swaggerConfig := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(swaggerConfig))

	// CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	// Server
	port := os.Getenv("DEEPSEARCH_API_PORT")
	if port == "" {
		port = "8080"
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("address", addr).Str("model", deps.Info.Model).Msg("Starting Deep Search Agent API")

	server := http.Server{
		Addr:    addr,
		Handler: corsHandler.Handler(container),
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
