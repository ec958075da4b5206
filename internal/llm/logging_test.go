package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/studyplanner/internal/store"
)

type recordingRepo struct {
	store.EventRepo // only AppendLLMRequest is used

	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	core, logs := observer.New(zapcore.DebugLevel)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"dailyPlan":"x"}`),
		Usage:   Usage{InputTokens: 7, OutputTokens: 3, TotalTokens: 10},
	})

	p := WithLogging(mock, ProviderMock, repo, zap.New(core))
	ctx := WithPurpose(context.Background(), "daily-plan")
	_, err := p.Generate(ctx, UserRequest("", "p", planSchema()))
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "daily-plan", ev.Purpose)
	assert.Equal(t, 7, ev.InputTokens)
	assert.Equal(t, 3, ev.OutputTokens)
	assert.True(t, ev.Success)
	assert.Empty(t, ev.ErrorMessage)

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "daily-plan", entries[0].ContextMap()["purpose"])
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}})

	_, err := WithLogging(mock, ProviderMock, repo, nil).Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Equal(t, "unknown", repo.events[0].Purpose)
	assert.Contains(t, repo.events[0].ErrorMessage, "connection refused")
}

func TestLoggingProvider_StoreFailureDoesNotFailCall(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	core, logs := observer.New(zapcore.WarnLevel)
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, err := WithLogging(mock, ProviderMock, repo, zap.New(core)).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("failed to record llm request event").Len())
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, err := WithLogging(mock, ProviderMock, nil, nil).Generate(context.Background(), Request{})
	assert.NoError(t, err)
}
