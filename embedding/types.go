package embedding

import (
	"context"
	"errors"
)

// ErrProvider marks failures of the external embedding service:
// unreachable endpoint, rate limiting, or a malformed response.
var ErrProvider = errors.New("embedding: provider error")

// IsProviderError checks whether the error originated at the embedding
// service rather than in caller input.
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}

// Provider is the contract for computing embeddings.
type Provider interface {
	// CreateEmbeddings returns one vector per input text, in input
	// order, each of the configured dimension.
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}
