package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/studyplanner/internal/flow"
	"github.com/abhisek/studyplanner/internal/studyplan"
)

// Score field messages.
const (
	MsgScoreNegative = "Score must be positive."
	MsgScoreTooHigh  = "Score cannot exceed 100."
)

// ScoreForm logs practice test scores locally. It never talks to the
// network.
type ScoreForm struct {
	Subject string
	Score   string

	log    *ScoreLog
	errors fieldErrors
}

func NewScoreForm(log *ScoreLog) *ScoreForm {
	return &ScoreForm{log: log}
}

// Submit validates the fields, appends the score to the log and resets the
// form. Scores from 0 to 100 inclusive are accepted.
func (f *ScoreForm) Submit() (studyplan.TestScore, error) {
	errs := fieldErrors{}
	subject := strings.TrimSpace(f.Subject)
	if subject == "" {
		errs["subject"] = studyplan.MsgSubjectRequired
	}

	raw := strings.TrimSpace(f.Score)
	score, err := strconv.ParseFloat(raw, 64)
	switch {
	case err != nil, !decimal(raw), math.IsNaN(score), math.IsInf(score, 0):
		errs["score"] = studyplan.MsgScoreNotNumeric
	case score < 0:
		errs["score"] = MsgScoreNegative
	case score > 100:
		errs["score"] = MsgScoreTooHigh
	}

	if len(errs) > 0 {
		f.errors = errs
		return studyplan.TestScore{}, flow.NewValidationError(errs.copy())
	}

	if score == 0 {
		score = 0 // drops the sign of "-0"
	}
	ts := studyplan.TestScore{Subject: subject, Score: score}
	f.log.Add(ts)
	f.Subject, f.Score, f.errors = "", "", nil
	return ts, nil
}

// decimal reports whether s is a plain decimal number such as "90",
// "-1" or "72.5". Hex, exponents and signs other than a leading minus are
// rejected.
func decimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func (f *ScoreForm) Errors() map[string]string { return f.errors.copy() }

func (f *ScoreForm) Log() *ScoreLog { return f.log }
