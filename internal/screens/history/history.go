package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplanner/internal/router"
	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/store"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/ui/theme"
)

const pageSize = 50

type eventsLoadedMsg struct {
	Events []store.LLMEventRecord
	Err    error
}

// HistoryScreen lists recent model requests from the event log.
type HistoryScreen struct {
	ctx      context.Context
	events   store.EventRepo
	records  []store.LLMEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(ctx context.Context, events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		ctx:      ctx,
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load
}

func (s *HistoryScreen) load() tea.Msg {
	records, err := s.events.QueryLLMEvents(s.ctx, store.QueryOpts{Limit: pageSize})
	return eventsLoadedMsg{Events: records, Err: err}
}

func (s *HistoryScreen) Title() string {
	return "Request Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.records = msg.Events
		if s.selected >= len(s.records) {
			s.selected = 0
		}
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "r":
			s.expanded = make(map[int]bool)
			return s, s.load
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\nLoading requests...")
	}
	if len(s.records) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\nNo requests yet. Generate a plan to get started.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, r := range s.records {
		status := lipgloss.NewStyle().Foreground(theme.Success).Render("ok ")
		if !r.Success {
			status = lipgloss.NewStyle().Foreground(theme.Error).Render("err")
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %-20s %-24s %5d→%-5d %6dms  ",
			prefix, r.Timestamp.Local().Format("Jan 02 15:04"), r.Purpose, truncate(r.Model, 24),
			r.InputTokens, r.OutputTokens, r.LatencyMs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+status))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    #%d  provider %s", r.ID, r.Provider)
			if r.ErrorMessage != "" {
				detail += "  error: " + r.ErrorMessage
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(detail)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
