package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/studyplanner/internal/router"
	"github.com/abhisek/studyplanner/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	records []store.LLMEventRecord
	err     error
	queries int
}

func (f *fakeRepo) QueryLLMEvents(_ context.Context, opts store.QueryOpts) ([]store.LLMEventRecord, error) {
	f.queries++
	return f.records, f.err
}

func record(id int64, purpose string, ok bool) store.LLMEventRecord {
	r := store.LLMEventRecord{ID: id, Timestamp: time.Unix(1700000000+id, 0)}
	r.Provider, r.Model, r.Purpose, r.Success = "mock", "mock", purpose, ok
	if !ok {
		r.ErrorMessage = "text generation provider unavailable"
	}
	return r
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistoryScreen_Lists(t *testing.T) {
	repo := &fakeRepo{records: []store.LLMEventRecord{record(2, "adapt-plan", false), record(1, "daily-plan", true)}}
	s := New(context.Background(), repo)
	assert.Contains(t, s.View(120, 30), "Loading")

	load(t, s)
	view := s.View(120, 30)
	assert.Contains(t, view, "adapt-plan")
	assert.Contains(t, view, "daily-plan")
	assert.NotContains(t, view, "provider unavailable")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 30), "provider unavailable")
}

func TestHistoryScreen_Navigation(t *testing.T) {
	repo := &fakeRepo{records: []store.LLMEventRecord{record(2, "a", true), record(1, "b", true)}}
	s := New(context.Background(), repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Equal(t, 2, repo.queries)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(context.Background(), &fakeRepo{})
	load(t, s)
	assert.Contains(t, s.View(120, 30), "No requests yet")
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(context.Background(), &fakeRepo{err: errors.New("database is locked")})
	load(t, s)
	assert.Contains(t, s.View(120, 30), "database is locked")
}
