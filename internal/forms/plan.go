package forms

import (
	"errors"
	"strings"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/flow"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// MsgPlanAdapted is the notice shown after a successful adapt.
const MsgPlanAdapted = "Your plan has been adapted!"

// ErrNoPlan is returned by BeginAdapt before a plan has been generated.
var ErrNoPlan = errors.New("no study plan to adapt")

// PlanForm generates the daily plan and adapts it. Generate and adapt share
// one submit machine.
type PlanForm struct {
	Deadlines         string
	SubjectDifficulty string
	PastPerformance   string

	// Topics are the completed topics sent with an adapt request.
	Topics TopicList

	machine   *Machine
	plan      string
	reminders string
	submitted string // deadlines of the in-flight generate
	errors    fieldErrors
	notice    Notice
}

func NewPlanForm() *PlanForm {
	return &PlanForm{machine: NewMachine("plan")}
}

// BeginGenerate validates the fields and starts a request. Validation
// failures set Errors and return *flow.ValidationError without entering
// the submitting state.
func (f *PlanForm) BeginGenerate() (studyplan.DailyPlanRequest, error) {
	req := studyplan.DailyPlanRequest{
		Deadlines:         f.Deadlines,
		SubjectDifficulty: f.SubjectDifficulty,
		PastPerformance:   f.PastPerformance,
	}
	if err := f.validate(req.Validate()); err != nil {
		return req, err
	}
	if err := f.machine.Begin(); err != nil {
		return req, err
	}
	f.plan = ""
	f.submitted = req.Deadlines
	f.notice = Notice{}
	return req, nil
}

// FinishGenerate applies the action result. Reminders echo the deadlines
// that were submitted, only after a successful response, and are cleared
// on failure. Edits made while the request was in flight do not count.
func (f *PlanForm) FinishGenerate(res actions.Result[studyplan.DailyPlanResult]) error {
	if err := f.machine.Finish(res.Success); err != nil {
		return err
	}
	if !res.Success {
		f.reminders = ""
		f.notice = errorNotice(res.Error)
		return nil
	}
	f.plan = res.Data.DailyPlan
	f.reminders = f.submitted
	return nil
}

// BeginAdapt builds an adapt request from the current plan, the completed
// topics, scores and the deadlines split into lines.
func (f *PlanForm) BeginAdapt(scores []studyplan.TestScore) (studyplan.AdaptRequest, error) {
	if f.plan == "" {
		return studyplan.AdaptRequest{}, ErrNoPlan
	}
	if err := f.machine.Begin(); err != nil {
		return studyplan.AdaptRequest{}, err
	}
	if scores == nil {
		scores = []studyplan.TestScore{}
	}
	completed := f.Topics.Items()
	if completed == nil {
		completed = []string{}
	}
	f.notice = Notice{}
	return studyplan.AdaptRequest{
		CurrentStudyPlan:   f.plan,
		CompletedTopics:    completed,
		PracticeTestScores: scores,
		UpcomingDeadlines:  strings.Split(f.Deadlines, "\n"),
	}, nil
}

// FinishAdapt replaces the plan on success and keeps it on failure.
func (f *PlanForm) FinishAdapt(res actions.Result[studyplan.AdaptResult]) error {
	if err := f.machine.Finish(res.Success); err != nil {
		return err
	}
	if !res.Success {
		f.notice = errorNotice(res.Error)
		return nil
	}
	f.plan = res.Data.AdaptedStudyPlan
	f.notice = successNotice(MsgPlanAdapted)
	return nil
}

func (f *PlanForm) validate(err error) error {
	f.errors = nil
	if err == nil {
		return nil
	}
	var verr *flow.ValidationError
	if errors.As(err, &verr) {
		f.errors = verr.Fields
	}
	return err
}

func (f *PlanForm) Plan() string      { return f.plan }
func (f *PlanForm) Reminders() string { return f.reminders }
func (f *PlanForm) Submitting() bool  { return f.machine.Submitting() }
func (f *PlanForm) Notice() Notice    { return f.notice }

// Errors returns field messages from the last generate attempt.
func (f *PlanForm) Errors() map[string]string { return f.errors.copy() }

// CanAdapt reports whether the adapt control is enabled.
func (f *PlanForm) CanAdapt() bool {
	return f.plan != "" && !f.Submitting()
}

// GenerateLabel is the caption of the generate control.
func (f *PlanForm) GenerateLabel() string {
	if f.plan != "" {
		return "Regenerate Plan"
	}
	return "Generate Plan"
}

// DismissNotice clears the current notice.
func (f *PlanForm) DismissNotice() { f.notice = Notice{} }
