package service

import (
	"errors"

	"github.com/akwaabahomes/passcheck/internal/strength"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrPasswordPolicyViolation = errors.New("password does not meet the password policy")
	ErrPasswordReused          = errors.New("password was used recently")
)

// PolicyViolationError carries the evaluation that rejected a password so
// that the transport can show the user what to fix. It matches
// ErrPasswordPolicyViolation with errors.Is.
type PolicyViolationError struct {
	Result strength.Result
}

func (e *PolicyViolationError) Error() string {
	return ErrPasswordPolicyViolation.Error()
}

func (e *PolicyViolationError) Unwrap() error {
	return ErrPasswordPolicyViolation
}
