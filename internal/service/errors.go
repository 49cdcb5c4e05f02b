package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for unknown email, wrong
	// password, and deactivated account alike. The three cases are
	// deliberately indistinguishable to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps failures of the token mint.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
