package setup

import (
	"testing"
)

func TestConfig_EffectiveModelID(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "openrouter uses model id",
			cfg: Config{
				LLMProvider:   "openrouter",
				ModelID:       "google/gemini-2.0-flash-001",
				ClaudeModelID: "anthropic.claude-3-5-sonnet-20241022-v2:0",
			},
			want: "google/gemini-2.0-flash-001",
		},
		{
			name: "bedrock uses claude model id",
			cfg: Config{
				LLMProvider:   "bedrock",
				ModelID:       "google/gemini-2.0-flash-001",
				ClaudeModelID: "anthropic.claude-3-5-sonnet-20241022-v2:0",
			},
			want: "anthropic.claude-3-5-sonnet-20241022-v2:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EffectiveModelID(); got != tt.want {
				t.Errorf("Expected model %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL_ID", "")
	t.Setenv("SEARCH_PROVIDER", "")
	t.Setenv("MAX_SEARCH_RESULTS", "")

	cfg := LoadConfig()

	if cfg.LLMProvider != "openrouter" {
		t.Errorf("Expected default provider 'openrouter', got %q", cfg.LLMProvider)
	}
	if cfg.ModelID != "google/gemini-2.0-flash-001" {
		t.Errorf("Expected default model, got %q", cfg.ModelID)
	}
	if cfg.SearchProvider != "serper" {
		t.Errorf("Expected default search provider 'serper', got %q", cfg.SearchProvider)
	}
	if cfg.MaxSearchResults != 5 {
		t.Errorf("Expected default max results 5, got %d", cfg.MaxSearchResults)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT_VALUE", "12")
	if got := getEnvInt("TEST_INT_VALUE", 5); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}

	t.Setenv("TEST_INT_VALUE", "not-a-number")
	if got := getEnvInt("TEST_INT_VALUE", 5); got != 5 {
		t.Errorf("Expected fallback 5, got %d", got)
	}
}
