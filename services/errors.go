package services

import (
	"errors"
)

// Error kinds surfaced to controllers. Invalid and expired session tokens
// both map to ErrUnauthenticated so callers cannot tell which check
// failed.
var (
	ErrValidation      = errors.New("missing or malformed required field")
	ErrNotFound        = errors.New("resource does not exist")
	ErrDuplicateEmail  = errors.New("this email is already associated with a created account")
	ErrNoSuchEmail     = errors.New("email is not associated with an account")
	ErrWrongPassword   = errors.New("password not correct for entered email")
	ErrUnauthenticated = errors.New("invalid session token")
	ErrForbidden       = errors.New("denied access")
)
