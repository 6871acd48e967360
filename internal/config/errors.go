package config

import "errors"

// Validation errors returned by StructuredConfig.validate. Matched with
// [errors.Is] by callers that want to distinguish missing settings.
var (
	// ErrNoTokenSignKey is returned when the JWT signing secret is absent
	// from every configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided.
	ErrNoDatabaseDSN = errors.New("database DSN is required")

	// ErrInvalidTokenDuration is returned when a negative token lifetime
	// was configured.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
)
