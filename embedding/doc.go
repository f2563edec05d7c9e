// Package embedding converts text into fixed-dimension vectors through
// an OpenAI-compatible /v1/embeddings endpoint.
//
// The adapter is stateless and order-preserving: one vector per input
// text, in input order, always of the configured model dimension. It
// performs no retries; rate limits and transient failures surface as
// ErrProvider-wrapped errors for the caller's policy to handle.
//
// Application code depends on *Client (which satisfies the core's
// Embedder port), not on the Provider implementation.
package embedding
