package metrics

type Config struct {
	// Enabled controls whether the /metrics HTTP server is started.
	// Counters are registered and incremented either way.
	Enabled bool `yaml:"enabled" env:"DOCAGENT_METRICS_ENABLED"`

	// Address the /metrics server listens on, e.g. ":9090".
	Address string `yaml:"address" env:"DOCAGENT_METRICS_ADDRESS"`

	// ServiceName is added as a constant "service" label on all metrics.
	ServiceName string `yaml:"service_name" env:"DOCAGENT_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime, process and
	// build-info collectors alongside the application counters.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"DOCAGENT_METRICS_DEFAULT_COLLECTORS"`
}

// DefaultConfig returns the settings used when no metrics section is
// configured: registry only, no HTTP listener.
func DefaultConfig() Config {
	return Config{
		Enabled:                 false,
		Address:                 ":9090",
		ServiceName:             "docagent",
		EnableDefaultCollectors: true,
	}
}
