package embedding

import "fmt"

// Defaults mirror the common OpenAI setup.
const (
	DefaultEndpoint     = "https://api.openai.com"
	DefaultModel        = "text-embedding-3-small"
	DefaultDimension    = 384
	DefaultHTTPTimeoutS = 30
)

// Config holds connection and model settings for the embedding
// provider.
type Config struct {
	// Endpoint is the base URL of the OpenAI-compatible service, without
	// the /v1/embeddings suffix.
	Endpoint string `yaml:"endpoint" env:"DOCAGENT_EMBEDDING_ENDPOINT"`

	// APIKey authenticates requests via a bearer token.
	APIKey string `yaml:"api_key" env:"DOCAGENT_EMBEDDING_API_KEY"`

	// Model is the embedding model name.
	Model string `yaml:"model" env:"DOCAGENT_EMBEDDING_MODEL"`

	// Dimension is the fixed output dimension of the model. Responses
	// with a different dimension are rejected.
	Dimension int `yaml:"dimension" env:"DOCAGENT_EMBEDDING_DIMENSION"`

	// HTTPTimeoutS is the request timeout in seconds.
	HTTPTimeoutS int `yaml:"http_timeout_seconds" env:"DOCAGENT_EMBEDDING_HTTP_TIMEOUT_SECONDS"`
}

// DefaultConfig returns the documented defaults. The API key has no
// default and must come from configuration.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:     DefaultEndpoint,
		Model:        DefaultModel,
		Dimension:    DefaultDimension,
		HTTPTimeoutS: DefaultHTTPTimeoutS,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("embedding: missing endpoint")
	}
	if c.APIKey == "" {
		return fmt.Errorf("embedding: missing API key")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing model name")
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("embedding: dimension must be positive, got %d", c.Dimension)
	}
	return nil
}
