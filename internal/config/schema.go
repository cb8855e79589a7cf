package config

// AgentsConfig is the root of configs/agents.yaml.
type AgentsConfig struct {
	DefaultModel ModelConfig          `yaml:"default_model"`
	Agents       []AgentConfiguration `yaml:"agents"`
}

// ModelConfig holds the sampling parameters for one agent.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
}

// AgentConfiguration describes one configurable agent handle.
type AgentConfiguration struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Prompt      string       `yaml:"prompt"`
	MaxSteps    int          `yaml:"max_steps"`
	Model       *ModelConfig `yaml:"model"`
}
