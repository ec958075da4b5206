package flow

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a flow failure for logs and metrics.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindBackendUnavailable Kind = "backend_unavailable"
	KindGeneration         Kind = "generation"
	KindUnknown            Kind = "unknown"
)

// ValidationError reports input that failed local checks. Nothing was sent
// to the model.
type ValidationError struct {
	// Fields maps a JSON field name to a user-facing message.
	Fields map[string]string
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// BackendUnavailableError means the model could not be reached or refused
// the call.
type BackendUnavailableError struct {
	Flow string
	Err  error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s: backend unavailable: %v", e.Flow, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error { return e.Err }

// GenerationError means the model replied with output that does not
// satisfy the flow's output shape.
type GenerationError struct {
	Flow string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: generation failed: %v", e.Flow, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// KindOf classifies err.
func KindOf(err error) Kind {
	var (
		validation  *ValidationError
		unavailable *BackendUnavailableError
		generation  *GenerationError
	)
	switch {
	case errors.As(err, &validation):
		return KindValidation
	case errors.As(err, &unavailable):
		return KindBackendUnavailable
	case errors.As(err, &generation):
		return KindGeneration
	default:
		return KindUnknown
	}
}
