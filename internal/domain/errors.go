package domain

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrGenerationFailed = errors.New("generation failed")
	ErrNotFound         = errors.New("not found")
)

// ValidationError names the first request field that failed validation.
// Message is safe to show to end users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}
