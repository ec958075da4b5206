package actions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/studyplanner/internal/llm"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

type harness struct {
	svc     *Service
	mock    *llm.MockProvider
	logs    *observer.ObservedLogs
	metrics *Metrics
}

func newHarness(t *testing.T, responses ...llm.MockResponse) *harness {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	mock := llm.NewMockProvider(responses...)
	metrics := NewMetrics(prometheus.NewRegistry())
	return &harness{
		svc:     NewService(mock, zap.New(core), metrics, studyplan.DefaultConfig()),
		mock:    mock,
		logs:    logs,
		metrics: metrics,
	}
}

func (h *harness) count(action, outcome string) float64 {
	return testutil.ToFloat64(h.metrics.total.WithLabelValues(action, outcome))
}

var (
	validPlan      = studyplan.DailyPlanRequest{Deadlines: "Math exam - Fri", SubjectDifficulty: "Math: Hard", PastPerformance: "Struggling with integrals"}
	validAdapt     = studyplan.AdaptRequest{CurrentStudyPlan: "9am: Algebra", CompletedTopics: []string{"Algebra"}, PracticeTestScores: []studyplan.TestScore{{Subject: "Math", Score: 90}}, UpcomingDeadlines: []string{"Math exam - Fri"}}
	validRecommend = studyplan.RecommendRequest{Topic: "Integrals", UserKnowledgeLevel: studyplan.Beginner, AvailableResources: "Khan Academy, MIT OCW"}
)

// call invokes the named action and returns its envelope as JSON.
func call(svc *Service, action string, missingField bool) []byte {
	ctx := context.Background()
	var res any
	switch action {
	case ActionGenerate:
		req := validPlan
		if missingField {
			req.PastPerformance = ""
		}
		res = svc.GenerateDailyStudyPlan(ctx, req)
	case ActionAdapt:
		req := validAdapt
		if missingField {
			req.CurrentStudyPlan = ""
		}
		res = svc.AdaptStudyPlan(ctx, req)
	case ActionRecommend:
		req := validRecommend
		if missingField {
			req.UserKnowledgeLevel = ""
		}
		res = svc.RecommendResources(ctx, req)
	}
	b, _ := json.Marshal(res)
	return b
}

var allActions = []struct {
	action  string
	reply   string
	failMsg string
}{
	{ActionGenerate, `{"dailyPlan":"08:00 Integrals drill"}`, MsgGenerateFailed},
	{ActionAdapt, `{"adaptedStudyPlan":"More geometry, less algebra"}`, MsgAdaptFailed},
	{ActionRecommend, `{"recommendedResources":"Khan Academy","reasoning":"Beginner friendly"}`, MsgRecommendFailed},
}

func TestActions_SuccessReturnsOutputUnmodified(t *testing.T) {
	for _, tt := range allActions {
		t.Run(tt.action, func(t *testing.T) {
			h := newHarness(t, llm.MockResponse{Content: json.RawMessage(tt.reply)})

			got := call(h.svc, tt.action, false)

			assert.JSONEq(t, `{"success":true,"data":`+tt.reply+`}`, string(got))
			assert.Equal(t, 1, h.mock.CallCount())
			assert.Zero(t, h.logs.Len())
			assert.Equal(t, 1.0, h.count(tt.action, "success"))
		})
	}
}

func TestActions_CollaboratorFailureReturnsFixedMessage(t *testing.T) {
	failures := []struct {
		name string
		resp llm.MockResponse
		kind string
	}{
		{"unavailable", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("secret upstream detail")}}, "backend_unavailable"},
		{"malformed", llm.MockResponse{Content: json.RawMessage(`{"unexpected":"secret upstream detail"}`)}, "generation"},
	}
	for _, tt := range allActions {
		for _, f := range failures {
			t.Run(tt.action+"/"+f.name, func(t *testing.T) {
				h := newHarness(t, f.resp)

				got := call(h.svc, tt.action, false)

				assert.JSONEq(t, `{"success":false,"error":"`+tt.failMsg+`"}`, string(got))
				assert.NotContains(t, string(got), "secret")

				entries := h.logs.All()
				require.Len(t, entries, 1, "failure must be logged exactly once")
				assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
				fields := entries[0].ContextMap()
				assert.Equal(t, tt.action, fields["action"])
				assert.Equal(t, f.kind, fields["kind"])
				assert.Equal(t, 1.0, h.count(tt.action, f.kind))
			})
		}
	}
}

func TestActions_MissingFieldNeverDispatches(t *testing.T) {
	for _, tt := range allActions {
		t.Run(tt.action, func(t *testing.T) {
			h := newHarness(t)

			got := call(h.svc, tt.action, true)

			assert.JSONEq(t, `{"success":false,"error":"`+tt.failMsg+`"}`, string(got))
			assert.Zero(t, h.mock.CallCount())
			assert.Equal(t, 1.0, h.count(tt.action, "validation"))
		})
	}
}

func TestActions_NoRetry(t *testing.T) {
	h := newHarness(t,
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
		llm.MockResponse{Content: json.RawMessage(`{"dailyPlan":"x"}`)},
	)

	res := h.svc.GenerateDailyStudyPlan(context.Background(), validPlan)
	assert.False(t, res.Success)
	assert.Equal(t, 1, h.mock.CallCount())
}

func TestActions_RequestIDIsLogged(t *testing.T) {
	h := newHarness(t, llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	ctx := WithRequestID(context.Background(), "req-42")
	h.svc.RecommendResources(ctx, validRecommend)

	require.Equal(t, 1, h.logs.Len())
	assert.Equal(t, "req-42", h.logs.All()[0].ContextMap()["request_id"])
}

func TestNewService_NilLoggerAndMetrics(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, nil, studyplan.DefaultConfig())

	res := svc.GenerateDailyStudyPlan(context.Background(), validPlan)
	assert.Equal(t, Result[studyplan.DailyPlanResult]{Error: MsgGenerateFailed}, res)
}

func TestRequestIDFromGeneratesWhenMissing(t *testing.T) {
	a := RequestIDFrom(context.Background())
	b := RequestIDFrom(context.Background())
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
