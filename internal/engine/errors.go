package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoExercise         = errors.New("no exercise selected")
	ErrUnknownExercise    = errors.New("unknown exercise")
	ErrExerciseInProgress = errors.New("an exercise is in progress; go back first")
	ErrNoBodyPart         = errors.New("choose a body part first")
)

// ImportError is returned when a backup document is rejected.
// The log store is left untouched whenever this is returned.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup file: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid backup file: %s", e.Reason)
}

func (e *ImportError) Unwrap() error { return e.Err }
