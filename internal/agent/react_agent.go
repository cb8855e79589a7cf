package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/povarna/generative-ai-agents/search-agent/internal/config"
	"github.com/povarna/generative-ai-agents/search-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/search-agent/internal/tools"
	"github.com/rs/zerolog"
)

// ReactAgent runs a bounded think/act/observe loop over the tool
// registry. Both the pro and code modes are instances of this engine
// with different prompts and step budgets.
type ReactAgent struct {
	name           string
	registry       *tools.Registry
	llmClient      llm.LLMClient
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	maxSteps       int
	logger         *zerolog.Logger
}

type reactPromptData struct {
	Query string
	Tools string
}

// action is the JSON object the model must emit at every step.
type action struct {
	Thought     string `json:"thought"`
	Tool        string `json:"tool"`
	ToolInput   string `json:"tool_input"`
	FinalAnswer string `json:"final_answer"`
}

func NewReactAgent(
	agentCfg config.AgentConfiguration,
	registry *tools.Registry,
	llmClient llm.LLMClient,
	logger *zerolog.Logger,
) (*ReactAgent, error) {
	tmpl, err := template.New(agentCfg.Name).Parse(agentCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for agent %s: %w", agentCfg.Name, err)
	}

	if agentCfg.Model == nil {
		return nil, fmt.Errorf("agent %s has nil model config (should be populated by config loader)", agentCfg.Name)
	}

	return &ReactAgent{
		name:           fmt.Sprintf("%s-agent", agentCfg.Name),
		registry:       registry,
		llmClient:      llmClient,
		promptTemplate: tmpl,
		modelConfig:    *agentCfg.Model,
		maxSteps:       agentCfg.MaxSteps,
		logger:         logger,
	}, nil
}

func (a *ReactAgent) Name() string {
	return a.name
}

func (a *ReactAgent) Run(ctx context.Context, query string) (string, error) {
	now := time.Now()

	systemPrompt, err := a.buildPrompt(query)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	var transcript strings.Builder
	transcript.WriteString(systemPrompt)

	for step := 1; step <= a.maxSteps; step++ {
		resp, err := a.invoke(ctx, transcript.String())
		if err != nil {
			return "", fmt.Errorf("step %d failed: %w", step, err)
		}

		act, parseErr := parseAction(resp.Content)
		if parseErr != nil {
			// The model skipped the protocol and answered in prose.
			// Take the text as the final answer rather than failing.
			a.logger.Warn().
				Str("agent", a.name).
				Int("step", step).
				Msg("model response is not an action, treating as final answer")
			return strings.TrimSpace(resp.Content), nil
		}

		if act.FinalAnswer != "" {
			a.logger.Info().
				Str("agent", a.name).
				Int("steps", step).
				Dur("duration", time.Since(now)).
				Msg("agent completed")
			return act.FinalAnswer, nil
		}

		observation := a.callTool(ctx, act)

		transcript.WriteString("\n")
		transcript.WriteString(strings.TrimSpace(resp.Content))
		transcript.WriteString("\nObservation: ")
		transcript.WriteString(observation)
		transcript.WriteString("\n")
	}

	return "", fmt.Errorf("agent %s exceeded max steps (%d) without a final answer", a.name, a.maxSteps)
}

func (a *ReactAgent) callTool(ctx context.Context, act action) string {
	if act.Tool == "" {
		return "No tool named. Name a tool or provide final_answer."
	}

	tool, err := a.registry.Get(act.Tool)
	if err != nil {
		return fmt.Sprintf("Unknown tool %q. Available tools: %s.", act.Tool, strings.Join(a.registry.Names(), ", "))
	}

	a.logger.Info().
		Str("agent", a.name).
		Str("tool", act.Tool).
		Msg("calling tool")

	output, err := tool.Call(ctx, act.ToolInput)
	if err != nil {
		a.logger.Warn().
			Err(err).
			Str("agent", a.name).
			Str("tool", act.Tool).
			Msg("tool call failed")
		return fmt.Sprintf("Tool %s failed: %v", act.Tool, err)
	}

	return output
}

func (a *ReactAgent) invoke(ctx context.Context, prompt string) (*llm.LLMResponse, error) {
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

func (a *ReactAgent) buildPrompt(query string) (string, error) {
	var buf bytes.Buffer
	data := reactPromptData{
		Query: query,
		Tools: describeTools(a.registry),
	}
	if err := a.promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

func parseAction(content string) (action, error) {
	content = stripMarkdownCodeBlock(content)

	// Models sometimes prefix the JSON with prose; start at the first brace.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return action{}, fmt.Errorf("no JSON object in model response")
	}

	var act action
	if err := json.Unmarshal([]byte(content[start:end+1]), &act); err != nil {
		return action{}, fmt.Errorf("failed to deserialize action: %w", err)
	}

	if act.Tool == "" && act.FinalAnswer == "" {
		return action{}, fmt.Errorf("action names no tool and no final answer")
	}

	return act, nil
}

func describeTools(registry *tools.Registry) string {
	var sb strings.Builder
	for _, tool := range registry.All() {
		fmt.Fprintf(&sb, "- %s: %s\n", tool.Name(), tool.Description())
	}
	return strings.TrimRight(sb.String(), "\n")
}
