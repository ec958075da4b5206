package resources

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/screens/shared"
	"github.com/abhisek/studyplanner/internal/studyplan"
	"github.com/abhisek/studyplanner/internal/ui/components"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/ui/theme"
	"github.com/abhisek/studyplanner/internal/workspace"
)

const (
	focusTopic = iota
	focusLevel
	focusResources
	focusSubmit
	focusCount
)

// ResourcesScreen asks which of the learner's resources to use for a topic.
type ResourcesScreen struct {
	ws *workspace.Workspace

	topic     components.Field
	level     components.Choice
	resources components.Field
	focus     int
}

var _ screen.Screen = (*ResourcesScreen)(nil)
var _ screen.KeyHintProvider = (*ResourcesScreen)(nil)

func New(ws *workspace.Workspace) *ResourcesScreen {
	levels := make([]string, len(studyplan.KnowledgeLevels))
	for i, l := range studyplan.KnowledgeLevels {
		levels[i] = string(l)
	}
	f := ws.Dashboard.Recommend
	s := &ResourcesScreen{
		ws:        ws,
		topic:     components.NewField("Topic", "e.g. Integrals"),
		level:     components.NewChoice("Knowledge level", levels),
		resources: components.NewField("Available resources", "e.g. Khan Academy, MIT OCW, textbook ch. 5"),
	}
	s.topic.SetValue(f.Topic)
	s.resources.SetValue(f.Resources)
	for i, l := range studyplan.KnowledgeLevels {
		if l == f.Level {
			s.level.Selected, s.level.Cursor = i, i
		}
	}
	return s
}

func (s *ResourcesScreen) Init() tea.Cmd {
	return s.setFocus(focusTopic)
}

func (s *ResourcesScreen) Title() string { return "Resources" }

func (s *ResourcesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Next field"}}
	if s.focus == focusLevel {
		hints = append(hints, layout.KeyHint{Key: "←→ Space", Description: "Choose level"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Recommend"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *ResourcesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			if s.focus == focusSubmit {
				return s, s.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	case focusLevel:
		s.level, cmd = s.level.Update(msg)
	case focusResources:
		s.resources, cmd = s.resources.Update(msg)
	}
	s.sync()
	return s, cmd
}

func (s *ResourcesScreen) sync() {
	f := s.ws.Dashboard.Recommend
	f.Topic = s.topic.Value()
	f.Level = studyplan.KnowledgeLevel(s.level.Value())
	f.Resources = s.resources.Value()
}

func (s *ResourcesScreen) submit() tea.Cmd {
	s.sync()
	return s.ws.Recommend()
}

func (s *ResourcesScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.topic.Blur()
	s.resources.Blur()
	s.level.Focused = i == focusLevel

	switch i {
	case focusTopic:
		return s.topic.Focus()
	case focusResources:
		return s.resources.Focus()
	}
	return nil
}

func (s *ResourcesScreen) View(width, height int) string {
	f := s.ws.Dashboard.Recommend
	errs := f.Errors()
	s.topic.Err = errs["topic"]
	s.level.Err = errs["userKnowledgeLevel"]
	s.resources.Err = errs["availableResources"]

	button := components.Button{
		Label:   "Get Recommendations",
		Busy:    s.ws.Spinner.View() + " Thinking...",
		Focused: s.focus == focusSubmit,
		Loading: f.Submitting(),
	}

	cw := shared.ContentWidth(width)
	inputs := strings.Join([]string{
		s.topic.View(),
		s.level.View(),
		s.resources.View(),
		button.View(),
	}, "\n\n")

	sections := []string{layout.Section("What do you want to learn?", inputs, cw, s.focus != focusSubmit)}
	if n := shared.RenderNotice(f.Notice(), cw); n != "" {
		sections = append(sections, n)
	}
	if r := f.Result(); r != nil {
		body := theme.Label.Render("Recommended") + "\n" +
			theme.Body.Width(cw-4).Render(r.RecommendedResources) + "\n\n" +
			theme.Label.Render("Why") + "\n" +
			theme.Body.Width(cw-4).Render(r.Reasoning)
		sections = append(sections, layout.Section("Recommendation", body, cw, false))
	}
	return shared.Center(strings.Join(sections, "\n"), width, height)
}
