package studyplan

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplanner/internal/flow"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verr *flow.ValidationError
	require.True(t, errors.As(err, &verr), "got %T", err)
	return verr.Fields
}

func TestDailyPlanRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  DailyPlanRequest
		want map[string]string
	}{
		{"complete", DailyPlanRequest{"Math exam - Fri", "Math: Hard", "Struggling"}, nil},
		{"all missing", DailyPlanRequest{}, map[string]string{
			"deadlines":         MsgDeadlinesRequired,
			"subjectDifficulty": MsgSubjectDifficultyRequired,
			"pastPerformance":   MsgPastPerformanceRequired,
		}},
		{"whitespace only", DailyPlanRequest{"  \n", "Math: Hard", "ok"}, map[string]string{
			"deadlines": MsgDeadlinesRequired,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldsOf(t, tt.req.Validate()))
		})
	}
}

func TestAdaptRequestValidate(t *testing.T) {
	ok := AdaptRequest{CurrentStudyPlan: "plan"}
	assert.NoError(t, ok.Validate(), "empty lists are allowed")

	assert.Equal(t, map[string]string{"currentStudyPlan": MsgCurrentPlanRequired},
		fieldsOf(t, AdaptRequest{}.Validate()))

	bad := AdaptRequest{
		CurrentStudyPlan:   "plan",
		PracticeTestScores: []TestScore{{Subject: "Math", Score: 101}, {Subject: " ", Score: math.NaN()}},
	}
	assert.Equal(t, map[string]string{
		"practiceTestScores[1].subject": MsgSubjectRequired,
		"practiceTestScores[1].score":   MsgScoreNotNumeric,
	}, fieldsOf(t, bad.Validate()), "range is not checked at this layer")
}

func TestRecommendRequestValidate(t *testing.T) {
	assert.NoError(t, RecommendRequest{"Integrals", Advanced, "Khan Academy"}.Validate())

	assert.Equal(t, map[string]string{
		"topic":              MsgTopicRequired,
		"userKnowledgeLevel": MsgKnowledgeLevelRequired,
		"availableResources": MsgResourcesRequired,
	}, fieldsOf(t, RecommendRequest{}.Validate()))

	assert.Equal(t, map[string]string{"userKnowledgeLevel": MsgKnowledgeLevelRequired},
		fieldsOf(t, RecommendRequest{"Integrals", "expert", "Khan Academy"}.Validate()))
}

func TestKnowledgeLevelValid(t *testing.T) {
	for _, l := range KnowledgeLevels {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, KnowledgeLevel("Beginner").Valid())
	assert.False(t, KnowledgeLevel("").Valid())
}
