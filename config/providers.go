package config

import (
	"docagent/docstore"
	"docagent/embedding"
	"docagent/logger"
	"docagent/metrics"
	"docagent/vectorstore"
)

// LoggerConfig derives the logger package's configuration.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Log.Level,
		ServiceName: c.Service.Name,
	}
}

// MetricsConfig derives the metrics package's configuration.
func (c *Config) MetricsConfig() metrics.Config {
	return metrics.Config{
		Enabled:                 c.Metrics.Enabled,
		Address:                 c.Metrics.Address,
		ServiceName:             c.Service.Name,
		EnableDefaultCollectors: c.Metrics.DefaultCollectors,
	}
}

// VectorstoreConfig derives the Qdrant client configuration.
func (c *Config) VectorstoreConfig() *vectorstore.Config {
	return &vectorstore.Config{
		Endpoint:           c.Qdrant.Endpoint,
		Port:               c.Qdrant.Port,
		APIKey:             c.Qdrant.APIKey,
		CheckCompatibility: c.Qdrant.CheckCompatibility,
	}
}

// EmbeddingConfig derives the embedding provider configuration.
func (c *Config) EmbeddingConfig() *embedding.Config {
	return &embedding.Config{
		Endpoint:     c.Embedding.Endpoint,
		APIKey:       c.Embedding.APIKey,
		Model:        c.Embedding.Model,
		Dimension:    c.Embedding.Dimension,
		HTTPTimeoutS: c.Embedding.HTTPTimeoutS,
	}
}

// DocstoreConfig derives the document store configuration. An
// unrecognized distance name is rejected here, before any client is
// constructed.
func (c *Config) DocstoreConfig() (docstore.Config, error) {
	distance, err := docstore.ParseDistance(c.Store.Distance)
	if err != nil {
		return docstore.Config{}, err
	}
	return docstore.Config{
		BatchSize:       c.Store.BatchSize,
		DefaultDistance: distance,
	}, nil
}
