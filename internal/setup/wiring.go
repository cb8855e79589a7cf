package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/search-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/search-agent/internal/api"
	"github.com/povarna/generative-ai-agents/search-agent/internal/config"
	"github.com/povarna/generative-ai-agents/search-agent/internal/history"
	"github.com/povarna/generative-ai-agents/search-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/search-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/search-agent/internal/llm/openrouter"
	"github.com/povarna/generative-ai-agents/search-agent/internal/models"
	"github.com/povarna/generative-ai-agents/search-agent/internal/rerank"
	"github.com/povarna/generative-ai-agents/search-agent/internal/router"
	"github.com/povarna/generative-ai-agents/search-agent/internal/search"
	"github.com/povarna/generative-ai-agents/search-agent/internal/tools"
	"github.com/rs/zerolog"
)

const Version = "1.0.0"

type Config struct {
	SerperAPIKey     string
	OpenRouterAPIKey string
	JinaAPIKey       string
	WolframAppID     string
	LLMProvider      string
	ModelID          string
	SearchProvider   string
	SearxngURL       string
	SearxngAPIKey    string
	AWSRegion        string
	ClaudeModelID    string
	RedisAddr        string
	RedisPassword    string
	MaxSearchResults int
}

type Dependencies struct {
	Router    *router.Router
	Recorder  history.Recorder
	WebSearch *tools.WebSearchTool
	Info      api.ServiceInfo
	Logger    *zerolog.Logger
}

// EffectiveModelID is the model ID of the LLM client Wire builds for
// the configured provider. /config must report this one, not the
// openrouter default.
func (c *Config) EffectiveModelID() string {
	if c.LLMProvider == "bedrock" {
		return c.ClaudeModelID
	}
	return c.ModelID
}

func LoadConfig() *Config {
	return &Config{
		SerperAPIKey:     getEnv("SERPER_API_KEY", ""),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		JinaAPIKey:       getEnv("JINA_API_KEY", ""),
		WolframAppID:     getEnv("WOLFRAM_ALPHA_APP_ID", ""),
		LLMProvider:      getEnv("LLM_PROVIDER", "openrouter"),
		ModelID:          getEnv("LLM_MODEL_ID", "google/gemini-2.0-flash-001"),
		SearchProvider:   getEnv("SEARCH_PROVIDER", "serper"),
		SearxngURL:       getEnv("SEARXNG_INSTANCE_URL", ""),
		SearxngAPIKey:    getEnv("SEARXNG_API_KEY", ""),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:    getEnv("CLAUDE_MODEL_ID", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		MaxSearchResults: getEnvInt("MAX_SEARCH_RESULTS", 5),
	}
}

// Wire builds every agent handle and the dispatch table. A missing
// provider key fails here so the process aborts at start-up instead of
// degrading a single mode at request time.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	searchProvider, err := createSearchProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create search provider: %w", err)
	}

	reranker, err := rerank.NewJinaReranker(rerank.JinaConfig{APIKey: cfg.JinaAPIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create reranker: %w", err)
	}

	// Tools
	webSearch := tools.NewWebSearchTool(searchProvider, reranker, cfg.MaxSearchResults, logger)
	toolList := []tools.Tool{webSearch}

	if cfg.WolframAppID != "" {
		wolfram, err := tools.NewWolframTool(cfg.WolframAppID)
		if err != nil {
			return nil, fmt.Errorf("failed to create wolfram tool: %w", err)
		}
		toolList = append(toolList, wolfram)
	}

	registry := tools.NewRegistry(toolList...)

	// Agents from YAML config
	agentsConfig, err := config.LoadAgentsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load agents config: %w", err)
	}

	searchCfg, err := agentsConfig.Agent("search")
	if err != nil {
		return nil, err
	}
	searchAgent, err := agent.NewSearchAgent(*searchCfg, webSearch, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build search agent: %w", err)
	}

	reactCfg, err := agentsConfig.Agent("react")
	if err != nil {
		return nil, err
	}
	reactAgent, err := agent.NewReactAgent(*reactCfg, registry, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build react agent: %w", err)
	}

	codeCfg, err := agentsConfig.Agent("code")
	if err != nil {
		return nil, err
	}
	codeAgent, err := agent.NewReactAgent(*codeCfg, registry, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build code agent: %w", err)
	}

	queryRouter := router.NewRouter(map[models.Mode]agent.Agent{
		models.ModeDefault: searchAgent,
		models.ModePro:     reactAgent,
		models.ModeCode:    codeAgent,
	}, logger)

	// Query journal (optional)
	var recorder history.Recorder = history.NopRecorder{}
	if cfg.RedisAddr != "" {
		redisClient, err := history.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		recorder = history.NewRedisRecorder(redisClient, "", logger)
	}

	return &Dependencies{
		Router:    queryRouter,
		Recorder:  recorder,
		WebSearch: webSearch,
		Info: api.ServiceInfo{
			Model:          cfg.EffectiveModelID(),
			SearchProvider: searchProvider.Name(),
			Reranker:       reranker.Name(),
			Version:        Version,
			ActiveTools:    registry.Names(),
		},
		Logger: logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.LLMProvider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.EffectiveModelID())
	case "openrouter":
		return openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.EffectiveModelID())
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (expected 'openrouter' or 'bedrock')", cfg.LLMProvider)
	}
}

func createSearchProvider(cfg *Config) (search.Provider, error) {
	switch cfg.SearchProvider {
	case "serper":
		return search.NewSerperProvider(search.SerperConfig{APIKey: cfg.SerperAPIKey})
	case "searxng":
		return search.NewSearxngProvider(search.SearxngConfig{
			InstanceURL: cfg.SearxngURL,
			APIKey:      cfg.SearxngAPIKey,
		})
	default:
		return nil, fmt.Errorf("unknown search provider: %s (expected 'serper' or 'searxng')", cfg.SearchProvider)
	}
}
