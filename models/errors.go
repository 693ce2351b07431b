package models

import "errors"

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrAlreadyVoted   = errors.New("already voted on this poll")
	ErrPollInactive   = errors.New("poll is no longer active")
)

// ValidationError reports malformed or insufficient input at poll creation
// or code entry. The reason is safe to show to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
