package strength

import "errors"

var (
	// ErrInvalidPattern is returned by [NewDictionary] when a pattern does
	// not compile.
	ErrInvalidPattern = errors.New("invalid password pattern")

	// ErrEntropySource is returned by the generator when the random source
	// fails.
	ErrEntropySource = errors.New("reading random source")
)
