package tools

import (
	"context"
	"fmt"
)

// Tool is a capability an agent can invoke with a plain-text input.
type Tool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
}

// Registry holds the tools available to the agents. It is built once
// at start-up and read-only afterwards.
type Registry struct {
	tools []Tool
}

func NewRegistry(tools ...Tool) *Registry {
	return &Registry{
		tools: tools,
	}
}

func (r *Registry) Get(name string) (Tool, error) {
	for _, tool := range r.tools {
		if tool.Name() == name {
			return tool, nil
		}
	}

	return nil, fmt.Errorf("tool not found: %s", name)
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, tool := range r.tools {
		names = append(names, tool.Name())
	}

	return names
}

func (r *Registry) All() []Tool {
	return r.tools
}
