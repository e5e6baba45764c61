package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrSuggestionNotFound  = errors.New("suggestion not found")
	ErrDeleteFailed        = errors.New("failed to delete requirement")
)

// ValidationError marks bad or missing caller input; the HTTP layer maps
// it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
