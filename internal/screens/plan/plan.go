package plan

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/screens/shared"
	"github.com/abhisek/studyplanner/internal/ui/components"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/ui/theme"
	"github.com/abhisek/studyplanner/internal/workspace"
)

// Focus order.
const (
	focusDeadlines = iota
	focusDifficulty
	focusPerformance
	focusTopic
	focusGenerate
	focusAdapt
	focusCount
)

// PlanScreen edits the plan inputs, generates the daily plan and adapts it.
type PlanScreen struct {
	ws *workspace.Workspace

	deadlines   components.Area
	difficulty  components.Field
	performance components.Field
	topic       components.Field
	focus       int
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

func New(ws *workspace.Workspace) *PlanScreen {
	f := ws.Dashboard.Plan
	s := &PlanScreen{
		ws:          ws,
		deadlines:   components.NewArea("Upcoming deadlines", "One per line, e.g. Math exam - Fri", 60, 4),
		difficulty:  components.NewField("Subject difficulty", "e.g. Math: Hard, History: Easy"),
		performance: components.NewField("Past performance", "e.g. Struggling with integrals"),
		topic:       components.NewField("Completed topics", "Type a topic and press Enter"),
	}
	s.deadlines.SetValue(f.Deadlines)
	s.difficulty.SetValue(f.SubjectDifficulty)
	s.performance.SetValue(f.PastPerformance)
	return s
}

func (s *PlanScreen) Init() tea.Cmd {
	return s.setFocus(focusDeadlines)
}

func (s *PlanScreen) Title() string { return "Daily Plan" }

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+S", Description: "Generate"},
	}
	if s.ws.Dashboard.Plan.CanAdapt() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+A", Description: "Adapt"})
	}
	if s.focus == focusTopic {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Remove topic"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "ctrl+s":
			return s, s.generate()
		case "ctrl+a":
			return s, s.adapt()
		case "ctrl+d":
			if s.focus == focusTopic {
				s.ws.Dashboard.Plan.Topics.Remove(s.topic.Value())
				s.topic.SetValue("")
				return s, nil
			}
		case "enter":
			switch s.focus {
			case focusTopic:
				if s.ws.Dashboard.Plan.Topics.Add(s.topic.Value()) {
					s.topic.SetValue("")
				}
				return s, nil
			case focusGenerate:
				return s, s.generate()
			case focusAdapt:
				return s, s.adapt()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusDeadlines:
		s.deadlines, cmd = s.deadlines.Update(msg)
	case focusDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case focusPerformance:
		s.performance, cmd = s.performance.Update(msg)
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	}
	s.sync()
	return s, cmd
}

// sync copies the inputs into the form.
func (s *PlanScreen) sync() {
	f := s.ws.Dashboard.Plan
	f.Deadlines = s.deadlines.Value()
	f.SubjectDifficulty = s.difficulty.Value()
	f.PastPerformance = s.performance.Value()
}

func (s *PlanScreen) generate() tea.Cmd {
	s.sync()
	return s.ws.Generate()
}

func (s *PlanScreen) adapt() tea.Cmd {
	if !s.ws.Dashboard.Plan.CanAdapt() {
		return nil
	}
	s.sync()
	return s.ws.Adapt()
}

func (s *PlanScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.deadlines.Blur()
	s.difficulty.Blur()
	s.performance.Blur()
	s.topic.Blur()

	switch i {
	case focusDeadlines:
		return s.deadlines.Focus()
	case focusDifficulty:
		return s.difficulty.Focus()
	case focusPerformance:
		return s.performance.Focus()
	case focusTopic:
		return s.topic.Focus()
	}
	return nil
}

func (s *PlanScreen) View(width, height int) string {
	f := s.ws.Dashboard.Plan
	errs := f.Errors()

	s.deadlines.Err = errs["deadlines"]
	s.difficulty.Err = errs["subjectDifficulty"]
	s.performance.Err = errs["pastPerformance"]

	generate := components.Button{
		Label:   f.GenerateLabel(),
		Busy:    s.ws.Spinner.View() + " Working...",
		Focused: s.focus == focusGenerate,
		Loading: f.Submitting(),
	}
	adapt := components.Button{
		Label:    "Adapt Plan",
		Focused:  s.focus == focusAdapt,
		Disabled: !f.CanAdapt(),
	}

	cw := shared.ContentWidth(width)
	inputs := strings.Join([]string{
		s.deadlines.View(),
		s.difficulty.View(),
		s.performance.View(),
		s.topic.View() + "\n" + renderTopics(f.Topics.Items()),
		lipgloss.JoinHorizontal(lipgloss.Top, generate.View(), "  ", adapt.View()),
	}, "\n\n")

	sections := []string{layout.Section("Plan inputs", inputs, cw, s.focus < focusGenerate)}
	if n := shared.RenderNotice(f.Notice(), cw); n != "" {
		sections = append(sections, n)
	}
	if p := f.Plan(); p != "" {
		sections = append(sections, layout.Section("Your daily study plan", theme.Body.Width(cw-4).Render(p), cw, false))
	}
	return shared.Center(strings.Join(sections, "\n"), width, height)
}

func renderTopics(topics []string) string {
	if len(topics) == 0 {
		return theme.Hint.Render("No topics completed yet.")
	}
	chips := make([]string, len(topics))
	for i, t := range topics {
		chips[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Render("✓ " + t)
	}
	return strings.Join(chips, "  ")
}
