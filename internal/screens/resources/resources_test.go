package resources

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
	"github.com/abhisek/studyplanner/internal/workspace"
)

func typeText(s *ResourcesScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func tab(s *ResourcesScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
}

func run(t *testing.T, ws *workspace.Workspace, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(t, ws, c)
		}
		return
	}
	if r, ok := msg.(workspace.Result); ok {
		require.NoError(t, r.Apply(ws))
	}
}

func newScreen(responses ...llm.MockResponse) (*ResourcesScreen, *workspace.Workspace, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	ws := workspace.New(context.Background(), actions.NewService(mock, nil, nil, studyplan.DefaultConfig()), nil)
	s := New(ws)
	s.Init()
	return s, ws, mock
}

func TestResourcesScreen_Recommend(t *testing.T) {
	s, ws, mock := newScreen(llm.MockResponse{
		Content: json.RawMessage(`{"recommendedResources":"Khan Academy","reasoning":"Short videos suit beginners"}`),
	})

	typeText(s, "Integrals")
	tab(s)
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	tab(s)
	typeText(s, "Khan Academy, MIT OCW")

	f := ws.Dashboard.Recommend
	assert.Equal(t, studyplan.Beginner, f.Level)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	run(t, ws, cmd)

	assert.Equal(t, 1, mock.CallCount())
	view := s.View(100, 60)
	assert.Contains(t, view, "Khan Academy")
	assert.Contains(t, view, "Short videos suit beginners")
}

func TestResourcesScreen_RequiresLevel(t *testing.T) {
	s, _, mock := newScreen()

	typeText(s, "Integrals")
	tab(s)
	tab(s)
	typeText(s, "MIT OCW")

	_, cmd := s.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	assert.Nil(t, cmd)
	assert.Zero(t, mock.CallCount())
	assert.Contains(t, s.View(100, 60), studyplan.MsgKnowledgeLevelRequired)
}

func TestResourcesScreen_Failure(t *testing.T) {
	s, ws, _ := newScreen(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	f := ws.Dashboard.Recommend
	s.topic.SetValue("Integrals")
	s.resources.SetValue("MIT OCW")
	s.level.Selected = 2

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, f.Submitting(), "enter only submits from the button")

	s.setFocus(focusSubmit)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, studyplan.Advanced, f.Level)
	run(t, ws, cmd)

	assert.Nil(t, f.Result())
	assert.Contains(t, s.View(100, 60), actions.MsgRecommendFailed)
}
