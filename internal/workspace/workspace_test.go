package workspace

import (
	"context"
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/llm"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

func newWorkspace(responses ...llm.MockResponse) (*Workspace, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	svc := actions.NewService(mock, nil, nil, studyplan.DefaultConfig())
	return New(context.Background(), svc, nil), mock
}

// drain runs cmd and any batched commands, returning the produced messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func applyAll(t *testing.T, w *Workspace, msgs []tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		if r, ok := msg.(Result); ok {
			require.NoError(t, r.Apply(w))
		}
	}
}

func TestGenerate(t *testing.T) {
	w, mock := newWorkspace(llm.MockResponse{Content: json.RawMessage(`{"dailyPlan":"08:00 Integrals"}`)})
	p := w.Dashboard.Plan
	p.Deadlines, p.SubjectDifficulty, p.PastPerformance = "Math exam - Fri", "Math: Hard", "Struggling with integrals"

	cmd := w.Generate()
	require.NotNil(t, cmd)
	assert.True(t, w.Busy())

	msgs := drain(cmd)
	assert.Contains(t, msgs, tea.Msg(StartedMsg{}))
	applyAll(t, w, msgs)

	assert.False(t, w.Busy())
	assert.Equal(t, "08:00 Integrals", p.Plan())
	assert.Equal(t, "Math exam - Fri", p.Reminders())
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerate_InvalidFormReturnsNil(t *testing.T) {
	w, mock := newWorkspace()

	assert.Nil(t, w.Generate())
	assert.NotEmpty(t, w.Dashboard.Plan.Errors())
	assert.Zero(t, mock.CallCount())
}

func TestAdapt_NeedsPlan(t *testing.T) {
	w, _ := newWorkspace()
	assert.Nil(t, w.Adapt())
}

func TestAdapt_SendsScores(t *testing.T) {
	w, mock := newWorkspace(
		llm.MockResponse{Content: json.RawMessage(`{"dailyPlan":"plan"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"adaptedStudyPlan":"better plan"}`)},
	)
	d := w.Dashboard
	d.Plan.Deadlines, d.Plan.SubjectDifficulty, d.Plan.PastPerformance = "Fri", "Hard", "Meh"
	applyAll(t, w, drain(w.Generate()))

	d.Scores.Subject, d.Scores.Score = "Math", "90"
	_, err := d.Scores.Submit()
	require.NoError(t, err)

	applyAll(t, w, drain(w.Adapt()))
	assert.Equal(t, "better plan", d.Plan.Plan())

	calls := mock.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[1].Messages[0].Content, "Math: 90")
}

func TestRecommend(t *testing.T) {
	w, _ := newWorkspace(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	r := w.Dashboard.Recommend
	r.Topic, r.Level, r.Resources = "Integrals", studyplan.Intermediate, "MIT OCW"

	applyAll(t, w, drain(w.Recommend()))
	assert.Nil(t, r.Result())
	assert.Equal(t, actions.MsgRecommendFailed, r.Notice().Message)
}

func TestSpinner(t *testing.T) {
	w, _ := newWorkspace()

	assert.NotNil(t, w.StartSpinner())
	assert.Nil(t, w.StartSpinner(), "already running")

	assert.Nil(t, w.TickSpinner(), "stops when idle")
	assert.NotNil(t, w.StartSpinner())
}
