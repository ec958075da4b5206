package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/screens/shared"
	"github.com/abhisek/studyplanner/internal/ui/components"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/ui/theme"
	"github.com/abhisek/studyplanner/internal/workspace"
)

// ProgressScreen logs practice test scores and shows the reminders.
type ProgressScreen struct {
	ws *workspace.Workspace

	subject components.Field
	score   components.Field
	onScore bool
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

func New(ws *workspace.Workspace) *ProgressScreen {
	score := components.NewField("Score", "0-100")
	score.Numeric = true
	return &ProgressScreen{
		ws:      ws,
		subject: components.NewField("Subject", "e.g. Math"),
		score:   score,
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return s.subject.Focus()
}

func (s *ProgressScreen) Title() string { return "Progress & Reminders" }

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Log score"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok {
		switch k.String() {
		case "tab", "shift+tab":
			return s, s.toggleFocus()
		case "enter":
			s.submit()
			return s, nil
		}
	}

	var cmd tea.Cmd
	if s.onScore {
		s.score, cmd = s.score.Update(msg)
	} else {
		s.subject, cmd = s.subject.Update(msg)
	}
	return s, cmd
}

func (s *ProgressScreen) toggleFocus() tea.Cmd {
	s.onScore = !s.onScore
	if s.onScore {
		s.subject.Blur()
		return s.score.Focus()
	}
	s.score.Blur()
	return s.subject.Focus()
}

// submit logs the score. Inputs are cleared only when it is accepted.
func (s *ProgressScreen) submit() {
	form := s.ws.Dashboard.Scores
	form.Subject = s.subject.Value()
	form.Score = s.score.Value()
	if _, err := form.Submit(); err != nil {
		return
	}
	s.subject.SetValue("")
	s.score.SetValue("")
	if s.onScore {
		s.toggleFocus()
	}
}

func (s *ProgressScreen) View(width, height int) string {
	d := s.ws.Dashboard
	errs := d.Scores.Errors()
	s.subject.Err = errs["subject"]
	s.score.Err = errs["score"]

	cw := shared.ContentWidth(width)
	sections := []string{
		layout.Section("Log a practice test", s.subject.View()+"\n\n"+s.score.View(), cw, true),
		layout.Section("Practice test scores", s.renderScores(cw-4), cw, false),
		layout.Section("Reminders", renderReminders(d.Plan.Reminders()), cw, false),
	}
	return shared.Center(strings.Join(sections, "\n"), width, height)
}

func (s *ProgressScreen) renderScores(width int) string {
	items := s.ws.Dashboard.Scores.Log().Items()
	if len(items) == 0 {
		return theme.Hint.Render("No scores logged yet.")
	}
	lines := make([]string, len(items))
	for i, sc := range items {
		lines[i] = components.ScoreBar(fmt.Sprintf("%-12s", sc.Subject), sc.Score, width)
	}
	return strings.Join(lines, "\n")
}

func renderReminders(reminders string) string {
	if strings.TrimSpace(reminders) == "" {
		return theme.Hint.Render("Generate a plan to see your deadline reminders.")
	}
	var b strings.Builder
	for _, line := range strings.Split(reminders, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(theme.Body.Render("• " + line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
