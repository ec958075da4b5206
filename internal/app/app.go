package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/router"
	"github.com/abhisek/studyplanner/internal/screen"
	"github.com/abhisek/studyplanner/internal/screens/home"
	"github.com/abhisek/studyplanner/internal/store"
	"github.com/abhisek/studyplanner/internal/ui/components"
	"github.com/abhisek/studyplanner/internal/ui/layout"
	"github.com/abhisek/studyplanner/internal/workspace"
)

// Options holds the dependencies of the terminal UI.
type Options struct {
	Service *actions.Service
	Events  store.EventRepo // optional, enables the request log
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ws     *workspace.Workspace
	logger *zap.Logger
	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ws := workspace.New(ctx, opts.Service, opts.Events)
	return AppModel{
		router: router.New(home.New(ws)),
		ws:     ws,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.router.Pop()
			}
			return m, nil
		}

	case workspace.Result:
		// Results land on the shared forms whichever screen is active.
		if err := msg.Apply(m.ws); err != nil {
			m.logger.Warn("dropped action result", zap.String("type", fmt.Sprintf("%T", msg)), zap.Error(err))
		}
		return m, nil

	case workspace.StartedMsg:
		return m, m.ws.StartSpinner()

	case components.SpinnerTickMsg:
		return m, m.ws.TickSpinner()
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the right side of the header.
func (m AppModel) status() string {
	if m.ws.Busy() {
		return m.ws.Spinner.View() + " working"
	}
	d := m.ws.Dashboard
	return fmt.Sprintf("%d scores · %d topics", d.Scores.Log().Len(), d.Plan.Topics.Len())
}

// Run starts the terminal UI and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
