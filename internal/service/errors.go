package service

import "errors"

var (
	// ErrValidation wraps a *validators.ValidationError describing the first
	// invalid field of a request.
	ErrValidation = errors.New("validation failed")

	ErrBadCredentials = errors.New("bad username or email")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
