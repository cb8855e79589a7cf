package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func LoadAgentsConfig() (*AgentsConfig, error) {
	path := os.Getenv("AGENTS_CONFIG_PATH")
	if path == "" {
		path = "configs/agents.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AgentsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *AgentsConfig) {
	if cfg.DefaultModel.MaxTokens == 0 {
		cfg.DefaultModel.MaxTokens = 2048
	}

	for i := range cfg.Agents {
		agent := &cfg.Agents[i]

		if agent.Model == nil {
			model := cfg.DefaultModel
			agent.Model = &model
		} else if agent.Model.MaxTokens == 0 {
			agent.Model.MaxTokens = cfg.DefaultModel.MaxTokens
		}

		if agent.MaxSteps == 0 {
			agent.MaxSteps = 6
		}
	}
}

func (c *AgentsConfig) Validate() error {
	seen := make(map[string]bool)

	for _, agent := range c.Agents {
		if agent.Name == "" {
			return fmt.Errorf("agent with empty name in config")
		}
		if seen[agent.Name] {
			return fmt.Errorf("duplicate agent name in config: %s", agent.Name)
		}
		seen[agent.Name] = true

		if agent.Prompt == "" {
			return fmt.Errorf("agent %s has no prompt", agent.Name)
		}
	}

	return nil
}

// Agent returns the configuration for the named agent.
func (c *AgentsConfig) Agent(name string) (*AgentConfiguration, error) {
	for i := range c.Agents {
		if c.Agents[i].Name == name {
			return &c.Agents[i], nil
		}
	}

	return nil, fmt.Errorf("agent %s not found in config", name)
}
