package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuestions is returned when the question set is not usable:
// a nil set, a blank key, or a duplicate key. No prompting is attempted.
var ErrInvalidQuestions = errors.New("invalid question set")

// ErrInterrupted is returned when a masked read is aborted (Ctrl-C).
var ErrInterrupted = errors.New("interrupted")

// CancellationError reports that the line reader closed before every
// question was answered. It is the only error that terminates a session
// early; the partial answer set is still returned alongside it.
type CancellationError struct {
	// Answered is the number of answers collected before the close.
	Answered int
}

func (e *CancellationError) Error() string {
	return fmt.Sprintf("prompt canceled: %d answer(s) collected", e.Answered)
}
