package studyplan

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/studyplanner/internal/flow"
)

// Field messages shown next to the offending input.
const (
	MsgDeadlinesRequired         = "Deadlines are required."
	MsgSubjectDifficultyRequired = "Subject difficulty is required."
	MsgPastPerformanceRequired   = "Past performance is required."
	MsgCurrentPlanRequired       = "Generate a study plan before adapting it."
	MsgTopicRequired             = "Topic is required."
	MsgKnowledgeLevelRequired    = "Please select a knowledge level."
	MsgResourcesRequired         = "Please provide at least one resource."
	MsgSubjectRequired           = "Subject is required."
	MsgScoreNotNumeric           = "Score must be a number."
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate reports missing fields as *flow.ValidationError.
func (r DailyPlanRequest) Validate() error {
	fields := map[string]string{}
	if blank(r.Deadlines) {
		fields["deadlines"] = MsgDeadlinesRequired
	}
	if blank(r.SubjectDifficulty) {
		fields["subjectDifficulty"] = MsgSubjectDifficultyRequired
	}
	if blank(r.PastPerformance) {
		fields["pastPerformance"] = MsgPastPerformanceRequired
	}
	return flow.NewValidationError(fields)
}

// Validate requires a current plan and a subject and finite score on every
// logged test. The lists may be empty.
func (r AdaptRequest) Validate() error {
	fields := map[string]string{}
	if blank(r.CurrentStudyPlan) {
		fields["currentStudyPlan"] = MsgCurrentPlanRequired
	}
	for i, s := range r.PracticeTestScores {
		if blank(s.Subject) {
			fields[fmt.Sprintf("practiceTestScores[%d].subject", i)] = MsgSubjectRequired
		}
		if math.IsNaN(s.Score) || math.IsInf(s.Score, 0) {
			fields[fmt.Sprintf("practiceTestScores[%d].score", i)] = MsgScoreNotNumeric
		}
	}
	return flow.NewValidationError(fields)
}

func (r RecommendRequest) Validate() error {
	fields := map[string]string{}
	if blank(r.Topic) {
		fields["topic"] = MsgTopicRequired
	}
	if !r.UserKnowledgeLevel.Valid() {
		fields["userKnowledgeLevel"] = MsgKnowledgeLevelRequired
	}
	if blank(r.AvailableResources) {
		fields["availableResources"] = MsgResourcesRequired
	}
	return flow.NewValidationError(fields)
}
