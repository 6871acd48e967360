package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the email is unknown
	// or the password does not match. The two cases are indistinguishable
	// on purpose: callers must not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is the single error every token
	// validation failure collapses to: expired, malformed, tampered,
	// wrong issuer, wrong algorithm.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
