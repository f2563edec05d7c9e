package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"docagent/docstore"
	"docagent/embedding"
)

// Config is the root configuration for the document agent.
type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Qdrant    QdrantConfig    `mapstructure:"qdrant"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Store     StoreConfig     `mapstructure:"store"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// ServiceConfig identifies the running service.
type ServiceConfig struct {
	Name string `mapstructure:"name"`
}

// QdrantConfig holds vector database connection settings.
type QdrantConfig struct {
	Endpoint           string `mapstructure:"endpoint"`
	Port               int    `mapstructure:"port"`
	APIKey             string `mapstructure:"api_key"`
	CheckCompatibility bool   `mapstructure:"check_compatibility"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	APIKey       string `mapstructure:"api_key"`
	Model        string `mapstructure:"model"`
	Dimension    int    `mapstructure:"dimension"`
	HTTPTimeoutS int    `mapstructure:"http_timeout_s"`
}

// StoreConfig holds document store behavior settings.
type StoreConfig struct {
	BatchSize int    `mapstructure:"batch_size"`
	Distance  string `mapstructure:"distance"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	Address           string `mapstructure:"address"`
	DefaultCollectors bool   `mapstructure:"default_collectors"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "docagent")

	v.SetDefault("qdrant.endpoint", "localhost")
	v.SetDefault("qdrant.port", 6334)
	// AutomaticEnv only resolves keys viper already knows, so the
	// credential keys need defaults even though they have no value.
	v.SetDefault("qdrant.api_key", "")
	v.SetDefault("qdrant.check_compatibility", true)

	v.SetDefault("embedding.endpoint", embedding.DefaultEndpoint)
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.model", embedding.DefaultModel)
	v.SetDefault("embedding.dimension", embedding.DefaultDimension)
	v.SetDefault("embedding.http_timeout_s", embedding.DefaultHTTPTimeoutS)

	v.SetDefault("store.batch_size", docstore.DefaultBatchSize)
	v.SetDefault("store.distance", string(docstore.DistanceCosine))

	v.SetDefault("log.level", "info")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("metrics.default_collectors", true)
}

// Load reads the configuration from path, applying defaults and
// environment overrides (DOCAGENT_QDRANT_API_KEY overrides
// qdrant.api_key, and so on). A missing file is not an error; the
// defaults and environment carry the configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("docagent")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %q: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Qdrant.APIKey = expandEnvRef(cfg.Qdrant.APIKey)
	cfg.Embedding.APIKey = expandEnvRef(cfg.Embedding.APIKey)

	return &cfg, nil
}

// expandEnvRef resolves "${VAR}" references so API keys can live in the
// environment rather than the config file. An unset variable resolves
// to the empty string, so a dangling reference fails validation instead
// of being sent to the provider as a literal token.
func expandEnvRef(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
