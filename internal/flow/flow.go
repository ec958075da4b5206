// Package flow runs a structured prompt against a text-generation provider:
// validate input, render the prompt, make one call with the declared output
// schema, then decode and check the reply.
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/studyplanner/internal/llm"
)

// Flow describes one prompt-to-structured-output operation.
type Flow[In, Out any] struct {
	// Name labels the flow in logs and in the request event log.
	Name string

	System string
	Schema *llm.Schema

	// Render fills the prompt template. It must be pure.
	Render func(In) string

	// Validate rejects input before anything is sent. Optional.
	Validate func(In) error

	// Check rejects decoded output that matches the schema but is unusable,
	// e.g. blank text. Optional.
	Check func(*Out) error

	MaxTokens   int
	Temperature float64
}

// Prompt returns the rendered user prompt for in.
func (f *Flow[In, Out]) Prompt(in In) string {
	return f.Render(in)
}

// Run executes the flow with exactly one provider call. Errors are
// *ValidationError, *BackendUnavailableError or *GenerationError.
func (f *Flow[In, Out]) Run(ctx context.Context, provider llm.Provider, in In) (*Out, error) {
	if f.Validate != nil {
		if err := f.Validate(in); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return nil, verr
			}
			return nil, &ValidationError{Fields: map[string]string{"": err.Error()}}
		}
	}

	req := llm.UserRequest(f.System, f.Prompt(in), f.Schema)
	req.MaxTokens = f.MaxTokens
	req.Temperature = f.Temperature

	resp, err := provider.Generate(llm.WithPurpose(ctx, f.Name), req)
	if err != nil {
		return nil, f.classify(err)
	}

	// Not every provider enforces the schema natively.
	if err := llm.ValidateResponse(f.Schema, resp.Content); err != nil {
		return nil, &GenerationError{Flow: f.Name, Err: err}
	}

	var out Out
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &GenerationError{Flow: f.Name, Err: fmt.Errorf("decode output: %w", err)}
	}
	if f.Check != nil {
		if err := f.Check(&out); err != nil {
			return nil, &GenerationError{Flow: f.Name, Err: err}
		}
	}
	return &out, nil
}

func (f *Flow[In, Out]) classify(err error) error {
	if llm.IsOutputError(err) {
		return &GenerationError{Flow: f.Name, Err: err}
	}
	return &BackendUnavailableError{Flow: f.Name, Err: err}
}
