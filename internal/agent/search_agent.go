package agent

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/search-agent/internal/config"
	"github.com/povarna/generative-ai-agents/search-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/search-agent/internal/tools"
	"github.com/rs/zerolog"
)

// SearchAgent is the default-mode handle: one web search, one rerank,
// one synthesis call. No tool loop.
type SearchAgent struct {
	name           string
	searchTool     *tools.WebSearchTool
	llmClient      llm.LLMClient
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	logger         *zerolog.Logger
}

type searchPromptData struct {
	Query   string
	Sources string
}

func NewSearchAgent(
	agentCfg config.AgentConfiguration,
	searchTool *tools.WebSearchTool,
	llmClient llm.LLMClient,
	logger *zerolog.Logger,
) (*SearchAgent, error) {
	tmpl, err := template.New(agentCfg.Name).Parse(agentCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for agent %s: %w", agentCfg.Name, err)
	}

	if agentCfg.Model == nil {
		return nil, fmt.Errorf("agent %s has nil model config (should be populated by config loader)", agentCfg.Name)
	}

	return &SearchAgent{
		name:           fmt.Sprintf("%s-agent", agentCfg.Name),
		searchTool:     searchTool,
		llmClient:      llmClient,
		promptTemplate: tmpl,
		modelConfig:    *agentCfg.Model,
		logger:         logger,
	}, nil
}

func (a *SearchAgent) Name() string {
	return a.name
}

func (a *SearchAgent) Run(ctx context.Context, query string) (string, error) {
	now := time.Now()

	sources, err := a.searchTool.Call(ctx, query)
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}

	prompt, err := a.buildPrompt(query, sources)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := a.invoke(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}

	a.logger.Info().
		Str("agent", a.name).
		Dur("duration", time.Since(now)).
		Msg("agent completed")

	return resp.Content, nil
}

func (a *SearchAgent) invoke(ctx context.Context, prompt string) (*llm.LLMResponse, error) {
	request := llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   a.modelConfig.MaxTokens,
		Temperature: a.modelConfig.Temperature,
	}

	if a.modelConfig.Retry {
		return a.llmClient.InvokeModelWithRetry(ctx, request)
	}
	return a.llmClient.InvokeModel(ctx, request)
}

func (a *SearchAgent) buildPrompt(query string, sources string) (string, error) {
	var buf bytes.Buffer
	if err := a.promptTemplate.Execute(&buf, searchPromptData{Query: query, Sources: sources}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
