package studyplan

// Config holds generation settings per flow.
type Config struct {
	DailyPlan FlowConfig
	Adapt     FlowConfig
	Recommend FlowConfig
}

type FlowConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default token budgets and temperatures.
func DefaultConfig() Config {
	return Config{
		DailyPlan: FlowConfig{MaxTokens: 2048, Temperature: 0.7},
		Adapt:     FlowConfig{MaxTokens: 2048, Temperature: 0.5},
		Recommend: FlowConfig{MaxTokens: 1024, Temperature: 0.3},
	}
}
