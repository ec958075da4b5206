package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       func() Config
		wantModel string
		wantErr   bool
	}{
		{
			name: "mock",
			cfg: func() Config {
				c := DefaultConfig()
				c.Provider = ProviderMock
				return c
			},
			wantModel: "mock",
		},
		{
			name: "openai",
			cfg: func() Config {
				c := DefaultConfig()
				c.Provider = ProviderOpenAI
				c.OpenAI.APIKey = "sk"
				return c
			},
			wantModel: "gpt-4o-mini",
		},
		{
			name: "anthropic alias",
			cfg: func() Config {
				c := DefaultConfig()
				c.Provider = ProviderAnthropic
				c.Anthropic.APIKey = "ak"
				return c
			},
			wantModel: "claude-haiku-4-5-20251001",
		},
		{
			name: "openrouter",
			cfg: func() Config {
				c := DefaultConfig()
				c.Provider = ProviderOpenRouter
				c.OpenRouter.APIKey = "or"
				return c
			},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:    "missing key",
			cfg:     DefaultConfig,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(context.Background(), tt.cfg(), nil, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, p.ModelID())
		})
	}
}

func TestNewProvider_MockEchoesSchema(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), UserRequest("", "p", planSchema()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"dailyPlan":"Mock dailyPlan."}`, string(resp.Content))
}
