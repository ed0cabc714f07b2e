package adapter

import (
	"errors"

	"github.com/akwaabahomes/passcheck/internal/strength"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPolicyViolation     = errors.New("password does not meet the password policy")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrNotLoggedIn = errors.New("not logged in")
)

// ViolationError is returned when the server rejects a password. Result holds
// the evaluation the server based its decision on.
type ViolationError struct {
	Message string
	Result  strength.Result
}

func (e *ViolationError) Error() string {
	if e.Message == "" {
		return ErrPolicyViolation.Error()
	}
	return e.Message
}

func (e *ViolationError) Unwrap() error {
	return ErrPolicyViolation
}
