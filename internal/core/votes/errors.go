package votes

import (
	"errors"
	"fmt"
)

var (
	// ErrVoteNotFound indicates no ballot exists for the wallet
	ErrVoteNotFound = errors.New("vote not found")

	// ErrVoteAlreadyExists indicates an insert hit the wallet uniqueness
	// constraint (a concurrent first vote won the race)
	ErrVoteAlreadyExists = errors.New("vote already exists for this wallet")

	// ErrVotingClosed indicates the request arrived after the voting deadline
	ErrVotingClosed = errors.New("voting period has ended")

	// ErrCaptchaFailed indicates the captcha token was rejected by the verifier
	ErrCaptchaFailed = errors.New("captcha verification failed")

	// ErrInvalidArtwork indicates the artwork is not in the contest allow-list
	ErrInvalidArtwork = errors.New("invalid artwork selected")
)

// ValidationError represents a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
