package vectorstore

// Config holds connection settings for the Qdrant backend.
type Config struct {
	// Endpoint is the hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"DOCAGENT_QDRANT_ENDPOINT"`

	// Port is the gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"DOCAGENT_QDRANT_PORT"`

	// APIKey is the optional token for secured deployments.
	APIKey string `yaml:"api_key" env:"DOCAGENT_QDRANT_API_KEY"`

	// CheckCompatibility enables the client/server version check.
	CheckCompatibility bool `yaml:"check_compatibility" env:"DOCAGENT_QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for a local Qdrant.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:           "localhost",
		Port:               6334,
		CheckCompatibility: true,
	}
}
