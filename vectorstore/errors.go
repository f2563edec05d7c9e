package vectorstore

import "errors"

// ErrBackend marks failures of the vector-store backend: unreachable
// service, rejected writes, or a dimension mismatch on upsert.
var ErrBackend = errors.New("vectorstore: backend error")

// IsBackendError checks whether the error originated at the vector
// store.
func IsBackendError(err error) bool {
	return errors.Is(err, ErrBackend)
}
