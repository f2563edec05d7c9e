package docstore

import "errors"

// Error taxonomy of the core. Backend and provider failures are not
// re-classified here; they propagate wrapped from the vectorstore and
// embedding packages.
var (
	// ErrInput is returned for malformed caller input, detected before
	// any network call.
	ErrInput = errors.New("docstore: invalid input")

	// ErrNotFound is returned when an operation requires a collection
	// that does not exist.
	ErrNotFound = errors.New("docstore: collection not found")
)

// IsInputError checks whether the error is a caller-input error.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInput)
}

// IsNotFoundError checks whether the error is a missing-collection error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
