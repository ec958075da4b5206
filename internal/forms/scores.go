package forms

import (
	"slices"

	"github.com/abhisek/studyplanner/internal/studyplan"
)

// ScoreLog is the ordered list of logged practice test scores.
type ScoreLog struct {
	items []studyplan.TestScore
}

func (l *ScoreLog) Add(s studyplan.TestScore) {
	l.items = append(l.items, s)
}

// Items returns a copy in the order scores were logged.
func (l *ScoreLog) Items() []studyplan.TestScore {
	return slices.Clone(l.items)
}

func (l *ScoreLog) Len() int {
	return len(l.items)
}
