package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplanner/internal/router"
	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/screens/history"
	"github.com/abhisek/studyplanner/internal/screens/plan"
	"github.com/abhisek/studyplanner/internal/screens/progress"
	"github.com/abhisek/studyplanner/internal/screens/resources"
	"github.com/abhisek/studyplanner/internal/screens/shared"
	"github.com/abhisek/studyplanner/internal/ui/components"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/ui/theme"
	"github.com/abhisek/studyplanner/internal/workspace"
)

// HomeScreen is the dashboard: a summary of the session and the menu.
type HomeScreen struct {
	ws   *workspace.Workspace
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

func New(ws *workspace.Workspace) *HomeScreen {
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{
			Label:  "DAILY PLAN",
			Hint:   "Generate today's plan from your deadlines, or adapt it.",
			Action: push(func() screen.Screen { return plan.New(ws) }),
		},
		{
			Label:  "PROGRESS & REMINDERS",
			Hint:   "Log practice test scores and review deadline reminders.",
			Action: push(func() screen.Screen { return progress.New(ws) }),
		},
		{
			Label:  "RESOURCES",
			Hint:   "Find out what to study first for a topic.",
			Action: push(func() screen.Screen { return resources.New(ws) }),
		},
		{
			Label:    "REQUEST LOG",
			Hint:     "Recent text generation requests.",
			Disabled: ws.Events == nil,
			Action:   push(func() screen.Screen { return history.New(ws.Context(), ws.Events) }),
		},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{ws: ws, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-5", Description: "Jump"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := shared.ContentWidth(width)
	if cw > 60 {
		cw = 60
	}

	title := theme.Title.Render("Your study session") + "\n" +
		theme.Subtitle.Render("Plan today, adapt as you go, pick the right resources.")

	sections := []string{
		title,
		layout.Section("Today", h.summary(), cw, false),
		layout.Section("Menu", h.menu.View(), cw, true),
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) summary() string {
	d := h.ws.Dashboard

	planStatus := "No plan yet"
	switch {
	case d.Plan.Submitting():
		planStatus = h.ws.Spinner.View() + " Working on your plan..."
	case d.Plan.Plan() != "":
		planStatus = "Plan ready"
	}

	lines := []string{
		row("Plan", planStatus),
		row("Scores logged", fmt.Sprint(d.Scores.Log().Len())),
		row("Topics completed", fmt.Sprint(d.Plan.Topics.Len())),
	}
	if r := d.Recommend.Result(); r != nil {
		lines = append(lines, row("Last recommendation", d.Recommend.Topic))
	}
	return strings.Join(lines, "\n")
}

func row(label, value string) string {
	return theme.Label.Render(fmt.Sprintf("%-20s", label)) + theme.Body.Render(value)
}
