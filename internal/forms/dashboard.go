package forms

import "github.com/abhisek/studyplanner/internal/studyplan"

// Dashboard owns the three independent forms of one session.
type Dashboard struct {
	Plan      *PlanForm
	Scores    *ScoreForm
	Recommend *RecommendForm
}

func NewDashboard() *Dashboard {
	return &Dashboard{
		Plan:      NewPlanForm(),
		Scores:    NewScoreForm(&ScoreLog{}),
		Recommend: NewRecommendForm(),
	}
}

// BeginAdapt starts an adapt request with the logged scores.
func (d *Dashboard) BeginAdapt() (studyplan.AdaptRequest, error) {
	return d.Plan.BeginAdapt(d.Scores.Log().Items())
}
