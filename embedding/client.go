package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings. It hides
// the provider's transport details from the application layer and
// satisfies the core's Embedder port.
type Client struct {
	provider  Provider
	dimension int
}

// NewClient validates the config and constructs the inference provider
// behind a Client.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p, dimension: cfg.Dimension}, nil
}

// Embed returns one vector per text, order-preserving.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return c.provider.CreateEmbeddings(ctx, texts)
}

// Dimension is the fixed output dimension of the configured model.
func (c *Client) Dimension() int {
	return c.dimension
}
