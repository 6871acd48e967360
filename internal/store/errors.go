package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email or username already exists.
	// The database unique constraints are the final arbiter: two concurrent
	// registrations with the same email resolve to exactly one success and
	// one ErrUserAlreadyExists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrSubmitterNotFound is returned when inserting an article fails the
	// foreign-key check on submitted_by, i.e. the referenced user does not
	// exist.
	ErrSubmitterNotFound = errors.New("submitting user does not exist")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan article rows")
)
