package forms

import (
	"errors"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/flow"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// RecommendForm asks for resource recommendations.
type RecommendForm struct {
	Topic     string
	Level     studyplan.KnowledgeLevel
	Resources string

	machine *Machine
	result  *studyplan.RecommendResult
	errors  fieldErrors
	notice  Notice
}

func NewRecommendForm() *RecommendForm {
	return &RecommendForm{machine: NewMachine("recommend")}
}

// Begin validates the fields, clears the previous result and starts a
// request.
func (f *RecommendForm) Begin() (studyplan.RecommendRequest, error) {
	req := studyplan.RecommendRequest{
		Topic:              f.Topic,
		UserKnowledgeLevel: f.Level,
		AvailableResources: f.Resources,
	}

	f.errors = nil
	if err := req.Validate(); err != nil {
		var verr *flow.ValidationError
		if errors.As(err, &verr) {
			f.errors = verr.Fields
		}
		return req, err
	}
	if err := f.machine.Begin(); err != nil {
		return req, err
	}
	f.result = nil
	f.notice = Notice{}
	return req, nil
}

func (f *RecommendForm) Finish(res actions.Result[studyplan.RecommendResult]) error {
	if err := f.machine.Finish(res.Success); err != nil {
		return err
	}
	if !res.Success {
		f.notice = errorNotice(res.Error)
		return nil
	}
	result := *res.Data
	f.result = &result
	return nil
}

// Result returns the last recommendation, or nil.
func (f *RecommendForm) Result() *studyplan.RecommendResult { return f.result }

func (f *RecommendForm) Submitting() bool          { return f.machine.Submitting() }
func (f *RecommendForm) Errors() map[string]string { return f.errors.copy() }
func (f *RecommendForm) Notice() Notice            { return f.notice }
func (f *RecommendForm) DismissNotice()            { f.notice = Notice{} }
