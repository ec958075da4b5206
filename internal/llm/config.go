package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures the text-generation provider.
type Config struct {
	Provider string

	Gemini     GeminiConfig
	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout caps a single Generate call including retries. Zero disables it.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig also covers OpenAI-compatible endpoints through BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retries of transient failures. MaxAttempts of 1
// means a single attempt; a failed call is surfaced immediately.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the default configuration: Gemini, one attempt, 60s.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderGemini,
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv reads STUDYPLANNER_* variables on top of DefaultConfig.
// Without STUDYPLANNER_LLM_PROVIDER the provider follows whichever
// STUDYPLANNER_* key is set, then the vendor variables probed by
// DiscoverConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	explicit := false
	if p := os.Getenv("STUDYPLANNER_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		explicit = true
	}

	setIf(&cfg.Gemini.APIKey, "STUDYPLANNER_GEMINI_API_KEY")
	setIf(&cfg.Gemini.Model, "STUDYPLANNER_GEMINI_MODEL")
	setIf(&cfg.Anthropic.APIKey, "STUDYPLANNER_ANTHROPIC_API_KEY")
	setIf(&cfg.Anthropic.Model, "STUDYPLANNER_ANTHROPIC_MODEL")
	setIf(&cfg.OpenAI.APIKey, "STUDYPLANNER_OPENAI_API_KEY")
	setIf(&cfg.OpenAI.Model, "STUDYPLANNER_OPENAI_MODEL")
	setIf(&cfg.OpenAI.BaseURL, "STUDYPLANNER_OPENAI_BASE_URL")
	setIf(&cfg.OpenRouter.APIKey, "STUDYPLANNER_OPENROUTER_API_KEY")
	setIf(&cfg.OpenRouter.Model, "STUDYPLANNER_OPENROUTER_MODEL")

	if v := os.Getenv("STUDYPLANNER_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("STUDYPLANNER_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}

	if explicit {
		return cfg
	}
	switch {
	case cfg.Gemini.APIKey != "":
		cfg.Provider = ProviderGemini
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = ProviderOpenAI
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = ProviderAnthropic
	case cfg.OpenRouter.APIKey != "":
		cfg.Provider = ProviderOpenRouter
	default:
		if found, ok := DiscoverConfig(); ok {
			found.Retry = cfg.Retry
			found.Timeout = cfg.Timeout
			return found
		}
	}
	return cfg
}

// DiscoverConfig probes vendor API key variables in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the first
// one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if k := os.Getenv(name); k != "" {
			cfg.Provider = ProviderGemini
			cfg.Gemini.APIKey = k
			return cfg, true
		}
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenAI
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = ProviderAnthropic
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("STUDYPLANNER_GEMINI_API_KEY is required for the gemini provider")
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("STUDYPLANNER_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("STUDYPLANNER_OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("STUDYPLANNER_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

func setIf(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
