package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidModel is returned when a transition table fails validation.
var ErrInvalidModel = errors.New("invalid transition model")

// ErrInvalidDistribution is returned when an initial distribution does not
// sum to 1 or references states the model does not know.
var ErrInvalidDistribution = errors.New("invalid distribution")

// ErrNegativeSteps is returned when a negative step count is requested.
var ErrNegativeSteps = errors.New("negative step count")

// ErrUnknownState is returned when an operation references a state that has
// no row in the model.
var ErrUnknownState = errors.New("unknown state")

// ErrNoConvergence is returned when power iteration hits its iteration cap
// before reaching the requested tolerance.
var ErrNoConvergence = errors.New("stationary distribution did not converge")

// RowError describes a single invalid row in a transition table.
type RowError struct {
	State  State
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("state %q: %s", e.State, e.Reason)
}

// ModelError aggregates every row failure found during validation.
// It unwraps to ErrInvalidModel so callers can test with errors.Is.
type ModelError struct {
	Rows []error
}

func (e *ModelError) Error() string {
	if len(e.Rows) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidModel, e.Rows[0])
	}
	msg := fmt.Sprintf("%s: %d row errors:\n", ErrInvalidModel, len(e.Rows))
	for i, err := range e.Rows {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

func (e *ModelError) Unwrap() error { return ErrInvalidModel }
