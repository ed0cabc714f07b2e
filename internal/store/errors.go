package store

import "errors"

var (
	// ErrLoginAlreadyExists is returned by CreateUser on a unique violation.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no row matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDictionarySource is returned for a dictionary URI whose
	// scheme is neither a file path nor s3://.
	ErrUnsupportedDictionarySource = errors.New("unsupported dictionary source")
)

var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
