package studyplan

import (
	"errors"
	"sort"

	"github.com/abhisek/studyplanner/internal/llm"
)

func textObject(name, description string, props map[string]string) *llm.Schema {
	properties := make(map[string]any, len(props))
	required := make([]string, 0, len(props))
	for _, field := range sortedKeys(props) {
		properties[field] = map[string]any{
			"type":        "string",
			"description": props[field],
		}
		required = append(required, field)
	}
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type":                 "object",
			"properties":           properties,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

// DailyPlanSchema is the output shape of the daily plan flow.
var DailyPlanSchema = textObject("daily-study-plan", "A personalized daily study plan", map[string]string{
	"dailyPlan": "A personalized daily study plan.",
})

// AdaptSchema is the output shape of the adapt flow.
var AdaptSchema = textObject("adapted-study-plan", "A study plan adapted to progress", map[string]string{
	"adaptedStudyPlan": "The adapted study plan based on progress and performance.",
})

// RecommendSchema is the output shape of the recommend flow.
var RecommendSchema = textObject("resource-recommendation", "Recommended study resources with reasoning", map[string]string{
	"recommendedResources": "The most relevant study resources, including web links and document titles, separated by commas.",
	"reasoning":            "The reasoning behind the resource recommendations.",
})

var errEmptyOutput = errors.New("model returned empty text")

func checkDailyPlan(out *DailyPlanResult) error {
	if blank(out.DailyPlan) {
		return errEmptyOutput
	}
	return nil
}

func checkAdapt(out *AdaptResult) error {
	if blank(out.AdaptedStudyPlan) {
		return errEmptyOutput
	}
	return nil
}

func checkRecommend(out *RecommendResult) error {
	if blank(out.RecommendedResources) || blank(out.Reasoning) {
		return errEmptyOutput
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
