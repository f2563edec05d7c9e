// Package vectorstore implements the core's Backend port on top of the
// official Qdrant Go client.
//
// The client speaks gRPC and validates connectivity with a health check
// at construction time, so a misconfigured endpoint fails fast instead
// of on the first operation. Upserts run with Wait=true: a point is
// either fully persisted when the call returns or was never written.
//
// All failures are wrapped in ErrBackend so callers can distinguish
// vector-store trouble from provider or input errors without depending
// on Qdrant SDK types.
package vectorstore
