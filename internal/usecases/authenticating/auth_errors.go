package authenticating

import (
	"errors"
	"fmt"
)

const MessageFetchUser = "Failed to fetch user."

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrMissingRequiredData = errors.New("missing required data")
)

// AuthError carries the API error code together with the underlying error.
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// UserQueryError is returned when the user lookup itself fails.
type UserQueryError struct {
	Err error
}

func (e *UserQueryError) Error() string {
	return MessageFetchUser
}

func (e *UserQueryError) Unwrap() error {
	return e.Err
}
