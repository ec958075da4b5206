package llm

func planSchema() *Schema {
	return &Schema{
		Name: "test-plan",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"dailyPlan": map[string]any{"type": "string"},
			},
			"required":             []string{"dailyPlan"},
			"additionalProperties": false,
		},
	}
}
