package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it can reach the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
