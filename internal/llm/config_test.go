package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var providerEnv = []string{
	"STUDYPLANNER_LLM_PROVIDER",
	"STUDYPLANNER_GEMINI_API_KEY", "STUDYPLANNER_GEMINI_MODEL",
	"STUDYPLANNER_ANTHROPIC_API_KEY", "STUDYPLANNER_ANTHROPIC_MODEL",
	"STUDYPLANNER_OPENAI_API_KEY", "STUDYPLANNER_OPENAI_MODEL", "STUDYPLANNER_OPENAI_BASE_URL",
	"STUDYPLANNER_OPENROUTER_API_KEY", "STUDYPLANNER_OPENROUTER_MODEL",
	"STUDYPLANNER_LLM_TIMEOUT", "STUDYPLANNER_LLM_MAX_ATTEMPTS",
	"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range providerEnv {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
		check        func(t *testing.T, cfg Config)
	}{
		{
			name:         "nothing set keeps gemini default",
			wantProvider: ProviderGemini,
		},
		{
			name:         "explicit provider wins",
			env:          map[string]string{"STUDYPLANNER_LLM_PROVIDER": "mock", "STUDYPLANNER_OPENAI_API_KEY": "sk"},
			wantProvider: ProviderMock,
		},
		{
			name:         "provider follows the key that is set",
			env:          map[string]string{"STUDYPLANNER_ANTHROPIC_API_KEY": "ak", "STUDYPLANNER_ANTHROPIC_MODEL": "claude-sonnet"},
			wantProvider: ProviderAnthropic,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "ak", cfg.Anthropic.APIKey)
				assert.Equal(t, "claude-sonnet", cfg.Anthropic.Model)
			},
		},
		{
			name:         "vendor variable discovered",
			env:          map[string]string{"OPENROUTER_API_KEY": "or", "STUDYPLANNER_LLM_MAX_ATTEMPTS": "3"},
			wantProvider: ProviderOpenRouter,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "or", cfg.OpenRouter.APIKey)
				assert.Equal(t, 3, cfg.Retry.MaxAttempts)
			},
		},
		{
			name:         "google key maps to gemini",
			env:          map[string]string{"GOOGLE_API_KEY": "g"},
			wantProvider: ProviderGemini,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "g", cfg.Gemini.APIKey)
			},
		},
		{
			name:         "timeout and base url",
			env:          map[string]string{"STUDYPLANNER_OPENAI_API_KEY": "sk", "STUDYPLANNER_OPENAI_BASE_URL": "http://localhost:11434/v1", "STUDYPLANNER_LLM_TIMEOUT": "5s"},
			wantProvider: ProviderOpenAI,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "http://localhost:11434/v1", cfg.OpenAI.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Timeout)
			},
		},
		{
			name:         "invalid numbers are ignored",
			env:          map[string]string{"STUDYPLANNER_LLM_TIMEOUT": "soon", "STUDYPLANNER_LLM_MAX_ATTEMPTS": "0"},
			wantProvider: ProviderGemini,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 60*time.Second, cfg.Timeout)
				assert.Equal(t, 1, cfg.Retry.MaxAttempts)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearProviderEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := ConfigFromEnv()
			assert.Equal(t, tt.wantProvider, cfg.Provider)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, cfg.Validate(), "gemini without key")

	cfg.Gemini.APIKey = "k"
	require.NoError(t, cfg.Validate())

	cfg.Retry.MaxAttempts = 0
	require.Error(t, cfg.Validate())

	mock := DefaultConfig()
	mock.Provider = ProviderMock
	require.NoError(t, mock.Validate())

	unknown := DefaultConfig()
	unknown.Provider = "llama"
	require.ErrorContains(t, unknown.Validate(), "unknown LLM provider")
}
