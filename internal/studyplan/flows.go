package studyplan

import "github.com/abhisek/studyplanner/internal/flow"

// Purpose labels, also used as flow names.
const (
	PurposeDailyPlan = "daily-plan"
	PurposeAdapt     = "adapt-plan"
	PurposeRecommend = "recommend-resources"
)

// Flows bundles the three flows built from one Config.
type Flows struct {
	DailyPlan *flow.Flow[DailyPlanRequest, DailyPlanResult]
	Adapt     *flow.Flow[AdaptRequest, AdaptResult]
	Recommend *flow.Flow[RecommendRequest, RecommendResult]
}

func NewFlows(cfg Config) Flows {
	return Flows{
		DailyPlan: &flow.Flow[DailyPlanRequest, DailyPlanResult]{
			Name:        PurposeDailyPlan,
			System:      dailyPlanSystem,
			Schema:      DailyPlanSchema,
			Render:      renderDailyPlan,
			Validate:    DailyPlanRequest.Validate,
			Check:       checkDailyPlan,
			MaxTokens:   cfg.DailyPlan.MaxTokens,
			Temperature: cfg.DailyPlan.Temperature,
		},
		Adapt: &flow.Flow[AdaptRequest, AdaptResult]{
			Name:        PurposeAdapt,
			System:      adaptSystem,
			Schema:      AdaptSchema,
			Render:      renderAdapt,
			Validate:    AdaptRequest.Validate,
			Check:       checkAdapt,
			MaxTokens:   cfg.Adapt.MaxTokens,
			Temperature: cfg.Adapt.Temperature,
		},
		Recommend: &flow.Flow[RecommendRequest, RecommendResult]{
			Name:        PurposeRecommend,
			System:      recommendSystem,
			Schema:      RecommendSchema,
			Render:      renderRecommend,
			Validate:    RecommendRequest.Validate,
			Check:       checkRecommend,
			MaxTokens:   cfg.Recommend.MaxTokens,
			Temperature: cfg.Recommend.Temperature,
		},
	}
}
