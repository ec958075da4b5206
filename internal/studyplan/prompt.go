package studyplan

import (
	"fmt"
	"strconv"
	"strings"
)

const dailyPlanSystem = `You are an AI study planner that helps students create effective daily study plans.`

const adaptSystem = `You are an AI study planner that helps students optimize their learning.`

const recommendSystem = `You are an AI-powered study assistant that recommends the most relevant study resources for a given topic based on the user's knowledge level and available resources.`

func renderDailyPlan(r DailyPlanRequest) string {
	var b strings.Builder
	b.WriteString("Based on the following information, generate a personalized daily study plan:\n\n")
	fmt.Fprintf(&b, "Deadlines: %s\n", r.Deadlines)
	fmt.Fprintf(&b, "Subject Difficulty: %s\n", r.SubjectDifficulty)
	fmt.Fprintf(&b, "Past Performance: %s\n\n", r.PastPerformance)
	b.WriteString("The study plan should be detailed and actionable, including specific topics to study and practice problems to solve.\n")
	b.WriteString("Make sure the plan adapts to past performance, focusing on weak areas.")
	return b.String()
}

func renderAdapt(r AdaptRequest) string {
	var b strings.Builder
	b.WriteString("Based on the student's current study plan, completed topics, practice test scores, and upcoming deadlines, ")
	b.WriteString("adapt the study plan to focus on weak areas and ensure all deadlines are met.\n\n")
	fmt.Fprintf(&b, "Current Study Plan: %s\n", r.CurrentStudyPlan)
	fmt.Fprintf(&b, "Completed Topics: %s\n", JoinTopics(r.CompletedTopics))
	fmt.Fprintf(&b, "Practice Test Scores: %s\n", JoinScores(r.PracticeTestScores))
	fmt.Fprintf(&b, "Upcoming Deadlines: %s\n\n", JoinTopics(r.UpcomingDeadlines))
	b.WriteString("Adapted Study Plan:")
	return b.String()
}

func renderRecommend(r RecommendRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", r.Topic)
	fmt.Fprintf(&b, "User Knowledge Level: %s\n", r.UserKnowledgeLevel)
	fmt.Fprintf(&b, "Available Resources: %s\n\n", r.AvailableResources)
	b.WriteString("Based on the above information, recommend the most relevant study resources and explain your reasoning.")
	return b.String()
}

// JoinTopics renders items as "a, b, c".
func JoinTopics(items []string) string {
	return strings.Join(items, ", ")
}

// JoinScores renders scores as "Math: 90, Physics: 72.5", each score in its
// shortest decimal form.
func JoinScores(scores []TestScore) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = s.Subject + ": " + strconv.FormatFloat(s.Score, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
