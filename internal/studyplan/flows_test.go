package studyplan

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplanner/internal/flow"
	"github.com/abhisek/studyplanner/internal/llm"
)

func TestDailyPlanFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"dailyPlan":"08:00 Integrals drill\n10:00 Review"}`),
	})
	flows := NewFlows(DefaultConfig())

	out, err := flows.DailyPlan.Run(context.Background(), mock, DailyPlanRequest{
		Deadlines:         "Math exam - Fri",
		SubjectDifficulty: "Math: Hard",
		PastPerformance:   "Struggling with integrals",
	})
	require.NoError(t, err)
	assert.Equal(t, "08:00 Integrals drill\n10:00 Review", out.DailyPlan)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Same(t, DailyPlanSchema, calls[0].Schema)
	assert.Equal(t, dailyPlanSystem, calls[0].System)
	assert.Equal(t, 2048, calls[0].MaxTokens)
}

func TestAdaptFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"adaptedStudyPlan":"More geometry"}`),
	})
	flows := NewFlows(DefaultConfig())

	out, err := flows.Adapt.Run(context.Background(), mock, AdaptRequest{
		CurrentStudyPlan:   "9am: Algebra",
		CompletedTopics:    []string{"Algebra", "Geometry"},
		PracticeTestScores: []TestScore{{Subject: "Math", Score: 90}},
		UpcomingDeadlines:  []string{"Math exam - Fri"},
	})
	require.NoError(t, err)
	assert.Equal(t, "More geometry", out.AdaptedStudyPlan)
	assert.Contains(t, mock.Calls()[0].Messages[0].Content, "Practice Test Scores: Math: 90")
}

func TestRecommendFlow(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendedResources":"Khan Academy","reasoning":"Good for beginners"}`),
	})
	flows := NewFlows(DefaultConfig())

	out, err := flows.Recommend.Run(context.Background(), mock, RecommendRequest{
		Topic: "Integrals", UserKnowledgeLevel: Beginner, AvailableResources: "Khan Academy, MIT OCW",
	})
	require.NoError(t, err)
	assert.Equal(t, RecommendResult{RecommendedResources: "Khan Academy", Reasoning: "Good for beginners"}, *out)
}

func TestFlowsRejectBlankOutput(t *testing.T) {
	flows := NewFlows(DefaultConfig())

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendedResources":"Khan Academy","reasoning":""}`),
	})
	_, err := flows.Recommend.Run(context.Background(), mock, RecommendRequest{
		Topic: "Integrals", UserKnowledgeLevel: Beginner, AvailableResources: "Khan Academy",
	})
	assert.Equal(t, flow.KindGeneration, flow.KindOf(err))
}

func TestFlowsMissingFieldNeverDispatch(t *testing.T) {
	flows := NewFlows(DefaultConfig())
	mock := llm.NewMockProvider()
	ctx := context.Background()

	_, err := flows.DailyPlan.Run(ctx, mock, DailyPlanRequest{Deadlines: "Fri", SubjectDifficulty: "Hard"})
	assert.Equal(t, flow.KindValidation, flow.KindOf(err))

	_, err = flows.Adapt.Run(ctx, mock, AdaptRequest{})
	assert.Equal(t, flow.KindValidation, flow.KindOf(err))

	_, err = flows.Recommend.Run(ctx, mock, RecommendRequest{Topic: "Integrals", AvailableResources: "x"})
	assert.Equal(t, flow.KindValidation, flow.KindOf(err))

	assert.Zero(t, mock.CallCount())
}

func TestSchemasAreStrictObjects(t *testing.T) {
	for _, s := range []*llm.Schema{DailyPlanSchema, AdaptSchema, RecommendSchema} {
		assert.Equal(t, "object", s.Definition["type"], s.Name)
		assert.Equal(t, false, s.Definition["additionalProperties"], s.Name)
		props := s.Definition["properties"].(map[string]any)
		assert.Len(t, s.Definition["required"], len(props), s.Name)
	}
	assert.Equal(t, []string{"reasoning", "recommendedResources"}, RecommendSchema.Definition["required"])
}
