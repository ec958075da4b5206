// Package forms holds the UI-independent state of the dashboard forms:
// field values, local validation, the submit state machine and the notice
// shown after a request resolves.
package forms

import (
	"errors"
	"fmt"
	"sync"

	"github.com/felixgeelhaar/statekit"
)

// Submit states.
const (
	StateIdle       = "idle"
	StateSubmitting = "submitting"
)

const (
	eventSubmit  = "submit"
	eventSucceed = "succeed"
	eventFail    = "fail"
)

var (
	// ErrBusy is returned by Begin while a request is in flight.
	ErrBusy = errors.New("a request is already in flight")

	// ErrNotSubmitting is returned by Finish when nothing is in flight.
	ErrNotSubmitting = errors.New("no request in flight")
)

type machineContext struct {
	Form string
}

// Machine is the idle → submitting → idle cycle of one form. It allows at
// most one request in flight.
type Machine struct {
	mu     sync.Mutex
	interp *statekit.Interpreter[machineContext]
}

// NewMachine returns a machine in the idle state.
func NewMachine(form string) *Machine {
	builder := statekit.NewMachine[machineContext](form + "-submit").
		WithInitial(statekit.StateID(StateIdle)).
		WithContext(machineContext{Form: form})

	builder.State(StateIdle).
		On(eventSubmit).Target(StateSubmitting).
		Done()

	builder.State(StateSubmitting).
		On(eventSucceed).Target(StateIdle).
		On(eventFail).Target(StateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		panic(fmt.Sprintf("forms: build %s machine: %v", form, err))
	}

	interp := statekit.NewInterpreter(machine)
	interp.Start()
	return &Machine{interp: interp}
}

// Begin moves idle → submitting.
func (m *Machine) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.transition(eventSubmit) {
		return ErrBusy
	}
	return nil
}

// Finish moves submitting → idle.
func (m *Machine) Finish(succeeded bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event := eventFail
	if succeeded {
		event = eventSucceed
	}
	if !m.transition(event) {
		return ErrNotSubmitting
	}
	return nil
}

func (m *Machine) State() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current()
}

func (m *Machine) Submitting() bool {
	return m.State() == StateSubmitting
}

func (m *Machine) current() string {
	return string(m.interp.State().Value)
}

// transition reports whether event changed the state.
func (m *Machine) transition(event string) bool {
	before := m.current()
	m.interp.Send(statekit.Event{Type: statekit.EventType(event)})
	return m.current() != before
}
