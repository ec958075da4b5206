// Package actions is the boundary between the presentation layer and the
// study flows. Every call returns a Result; failures are logged and counted
// here and reduced to a fixed message per action.
package actions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/studyplanner/internal/flow"
	"github.com/abhisek/studyplanner/internal/llm"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// Fixed failure messages.
const (
	MsgGenerateFailed  = "Failed to generate study plan."
	MsgAdaptFailed     = "Failed to adapt study plan."
	MsgRecommendFailed = "Failed to recommend resources."
)

// Action names used in logs and metrics.
const (
	ActionGenerate  = "generate_daily_study_plan"
	ActionAdapt     = "adapt_study_plan"
	ActionRecommend = "recommend_resources"
)

type Service struct {
	provider llm.Provider
	flows    studyplan.Flows
	logger   *zap.Logger
	metrics  *Metrics
}

// NewService wires the three flows to provider. logger and metrics may be nil.
func NewService(provider llm.Provider, logger *zap.Logger, metrics *Metrics, cfg studyplan.Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		flows:    studyplan.NewFlows(cfg),
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *Service) GenerateDailyStudyPlan(ctx context.Context, req studyplan.DailyPlanRequest) Result[studyplan.DailyPlanResult] {
	return dispatch(ctx, s, ActionGenerate, MsgGenerateFailed, s.flows.DailyPlan, req)
}

func (s *Service) AdaptStudyPlan(ctx context.Context, req studyplan.AdaptRequest) Result[studyplan.AdaptResult] {
	return dispatch(ctx, s, ActionAdapt, MsgAdaptFailed, s.flows.Adapt, req)
}

func (s *Service) RecommendResources(ctx context.Context, req studyplan.RecommendRequest) Result[studyplan.RecommendResult] {
	return dispatch(ctx, s, ActionRecommend, MsgRecommendFailed, s.flows.Recommend, req)
}

func dispatch[In, Out any](ctx context.Context, s *Service, action, failMsg string, f *flow.Flow[In, Out], in In) Result[Out] {
	start := time.Now()
	out, err := f.Run(ctx, s.provider, in)
	elapsed := time.Since(start)

	if err != nil {
		kind := flow.KindOf(err)
		s.metrics.observe(action, string(kind), elapsed)
		s.logger.Error("action failed",
			zap.String("action", action),
			zap.String("kind", string(kind)),
			zap.String("request_id", RequestIDFrom(ctx)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return failure[Out](failMsg)
	}

	s.metrics.observe(action, outcomeSuccess, elapsed)
	return success(out)
}

type requestIDKey struct{}

// WithRequestID tags ctx with a request id for failure logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id set by WithRequestID or a fresh UUID.
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
