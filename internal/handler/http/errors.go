package http

import "errors"

// Sentinel errors produced by the authentication middleware. Their
// messages are part of the API contract and are sent to clients verbatim.
var (
	// ErrAccessTokenRequired is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrAccessTokenRequired = errors.New("access token required")

	// ErrInvalidTokenFormat is returned when the "Authorization" header is
	// present but does not follow the "Bearer <token>" scheme.
	ErrInvalidTokenFormat = errors.New("token must be in format: Bearer <token>")

	// ErrInvalidOrExpiredToken is returned when the bearer token fails
	// verification for any reason. The message deliberately does not say
	// which reason.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)
