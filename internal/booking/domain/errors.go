package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("booking_not_found")
	ErrNotDraft          = errors.New("booking_not_draft")
	ErrConfirmInProgress = errors.New("booking_confirm_in_progress")
	ErrMissingUser       = errors.New("user_id_required")
	ErrValidation        = errors.New("validation_failed")
)

// ValidationError reports a request field the caller must fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
