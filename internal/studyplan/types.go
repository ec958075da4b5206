// Package studyplan defines the study planner's requests, results and the
// three flows that turn them into model calls.
package studyplan

// DailyPlanRequest asks for a plan for today.
type DailyPlanRequest struct {
	Deadlines         string `json:"deadlines"`
	SubjectDifficulty string `json:"subjectDifficulty"`
	PastPerformance   string `json:"pastPerformance"`
}

type DailyPlanResult struct {
	DailyPlan string `json:"dailyPlan"`
}

// TestScore is one logged practice test. The score range is only enforced
// by the score form.
type TestScore struct {
	Subject string  `json:"subject"`
	Score   float64 `json:"score"`
}

// AdaptRequest asks for the current plan to be reworked around progress.
type AdaptRequest struct {
	CurrentStudyPlan   string      `json:"currentStudyPlan"`
	CompletedTopics    []string    `json:"completedTopics"`
	PracticeTestScores []TestScore `json:"practiceTestScores"`
	UpcomingDeadlines  []string    `json:"upcomingDeadlines"`
}

type AdaptResult struct {
	AdaptedStudyPlan string `json:"adaptedStudyPlan"`
}

// KnowledgeLevel is the learner's familiarity with a topic.
type KnowledgeLevel string

const (
	Beginner     KnowledgeLevel = "beginner"
	Intermediate KnowledgeLevel = "intermediate"
	Advanced     KnowledgeLevel = "advanced"
)

// KnowledgeLevels lists the accepted levels in display order.
var KnowledgeLevels = []KnowledgeLevel{Beginner, Intermediate, Advanced}

func (l KnowledgeLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// RecommendRequest asks which of the learner's resources to study first.
// AvailableResources is free text, typically comma separated.
type RecommendRequest struct {
	Topic              string         `json:"topic"`
	UserKnowledgeLevel KnowledgeLevel `json:"userKnowledgeLevel"`
	AvailableResources string         `json:"availableResources"`
}

type RecommendResult struct {
	RecommendedResources string `json:"recommendedResources"`
	Reasoning            string `json:"reasoning"`
}
