// Package workspace holds the state shared by the screens of one terminal
// session and runs the study actions in the background.
package workspace

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/forms"
	"github.com/abhisek/studyplanner/internal/store"
	"github.com/abhisek/studyplanner/internal/studyplan"
	"github.com/abhisek/studyplanner/internal/ui/components"
)

// Workspace is shared by pointer between the app and its screens. It is
// only touched from the Bubble Tea update loop.
type Workspace struct {
	Dashboard *forms.Dashboard
	Spinner   components.Spinner

	// Events backs the request log screen. May be nil.
	Events store.EventRepo

	ctx      context.Context
	service  *actions.Service
	spinning bool
}

func New(ctx context.Context, service *actions.Service, events store.EventRepo) *Workspace {
	return &Workspace{
		Dashboard: forms.NewDashboard(),
		Events:    events,
		ctx:       ctx,
		service:   service,
	}
}

// Context is the context background work runs under.
func (w *Workspace) Context() context.Context { return w.ctx }

// Busy reports whether any form has a request in flight.
func (w *Workspace) Busy() bool {
	d := w.Dashboard
	return d.Plan.Submitting() || d.Recommend.Submitting()
}

// Result is the message produced by a background action. The app applies
// it to the workspace regardless of which screen is active.
type Result interface {
	Apply(w *Workspace) error
}

// StartedMsg is emitted when a request begins so the spinner starts.
type StartedMsg struct{}

type PlanGeneratedMsg struct {
	Result actions.Result[studyplan.DailyPlanResult]
}

func (m PlanGeneratedMsg) Apply(w *Workspace) error {
	return w.Dashboard.Plan.FinishGenerate(m.Result)
}

type PlanAdaptedMsg struct {
	Result actions.Result[studyplan.AdaptResult]
}

func (m PlanAdaptedMsg) Apply(w *Workspace) error {
	return w.Dashboard.Plan.FinishAdapt(m.Result)
}

type ResourcesRecommendedMsg struct {
	Result actions.Result[studyplan.RecommendResult]
}

func (m ResourcesRecommendedMsg) Apply(w *Workspace) error {
	return w.Dashboard.Recommend.Finish(m.Result)
}

func started() tea.Msg { return StartedMsg{} }

// Generate starts a daily plan request from the plan form. It returns nil
// when the form rejects the submission; field errors are then on the form.
func (w *Workspace) Generate() tea.Cmd {
	req, err := w.Dashboard.Plan.BeginGenerate()
	if err != nil {
		return nil
	}
	ctx, svc := w.ctx, w.service
	return tea.Batch(started, func() tea.Msg {
		return PlanGeneratedMsg{Result: svc.GenerateDailyStudyPlan(ctx, req)}
	})
}

// Adapt starts an adapt request with the logged scores.
func (w *Workspace) Adapt() tea.Cmd {
	req, err := w.Dashboard.BeginAdapt()
	if err != nil {
		return nil
	}
	ctx, svc := w.ctx, w.service
	return tea.Batch(started, func() tea.Msg {
		return PlanAdaptedMsg{Result: svc.AdaptStudyPlan(ctx, req)}
	})
}

func (w *Workspace) Recommend() tea.Cmd {
	req, err := w.Dashboard.Recommend.Begin()
	if err != nil {
		return nil
	}
	ctx, svc := w.ctx, w.service
	return tea.Batch(started, func() tea.Msg {
		return ResourcesRecommendedMsg{Result: svc.RecommendResources(ctx, req)}
	})
}

// StartSpinner returns a tick command unless the spinner is already running.
func (w *Workspace) StartSpinner() tea.Cmd {
	if w.spinning {
		return nil
	}
	w.spinning = true
	return w.Spinner.Tick()
}

// TickSpinner advances the spinner and keeps it running while busy.
func (w *Workspace) TickSpinner() tea.Cmd {
	w.Spinner = w.Spinner.Advance()
	if !w.Busy() {
		w.spinning = false
		return nil
	}
	return w.Spinner.Tick()
}
