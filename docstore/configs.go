package docstore

import "fmt"

// DefaultBatchSize bounds how many documents travel in one embed+upsert
// round trip when no batch size is configured.
const DefaultBatchSize = 100

// DefaultTopK is the result count used by consumers when the caller
// does not specify k.
const DefaultTopK = 5

// Config holds the core's process-wide defaults. Connection settings
// for the backend and provider live with their own packages; the core
// only consumes resolved values.
type Config struct {
	// BatchSize is the maximum number of documents per ingestion batch.
	// It bounds the size of each network request, nothing more.
	BatchSize int `yaml:"batch_size" env:"DOCAGENT_BATCH_SIZE"`

	// DefaultDistance is the metric used when a collection is created
	// implicitly during ingestion.
	DefaultDistance Distance `yaml:"default_distance" env:"DOCAGENT_DEFAULT_DISTANCE"`
}

// DefaultConfig mirrors the documented defaults: batches of 100,
// cosine distance.
func DefaultConfig() Config {
	return Config{
		BatchSize:       DefaultBatchSize,
		DefaultDistance: DistanceCosine,
	}
}

// Validate ensures the config can drive the ingestion pipeline.
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("docstore: batch size must be positive, got %d", c.BatchSize)
	}
	if _, err := ParseDistance(string(c.DefaultDistance)); err != nil {
		return fmt.Errorf("docstore: invalid default distance: %w", err)
	}
	return nil
}
