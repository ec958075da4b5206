package forms

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineCycle(t *testing.T) {
	m := NewMachine("test")
	assert.Equal(t, StateIdle, m.State())

	require.NoError(t, m.Begin())
	assert.True(t, m.Submitting())

	assert.ErrorIs(t, m.Begin(), ErrBusy)

	require.NoError(t, m.Finish(true))
	assert.Equal(t, StateIdle, m.State())

	require.NoError(t, m.Begin())
	require.NoError(t, m.Finish(false))
	assert.Equal(t, StateIdle, m.State())
}

func TestMachineFinishWhenIdle(t *testing.T) {
	m := NewMachine("test")
	assert.ErrorIs(t, m.Finish(true), ErrNotSubmitting)
	assert.ErrorIs(t, m.Finish(false), ErrNotSubmitting)
}

func TestMachineOneInFlight(t *testing.T) {
	m := NewMachine("test")

	var started atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Begin() == nil {
				started.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), started.Load())
}
