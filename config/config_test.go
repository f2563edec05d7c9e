package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docagent/docstore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "docagent", cfg.Service.Name)
	assert.Equal(t, "localhost", cfg.Qdrant.Endpoint)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, 384, cfg.Embedding.Dimension)
	assert.Equal(t, 100, cfg.Store.BatchSize)
	assert.Equal(t, "cosine", cfg.Store.Distance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docagent.yaml")
	data := []byte(`
service:
  name: test-agent
qdrant:
  endpoint: qdrant.internal
  port: 7334
embedding:
  model: custom-model
  dimension: 768
store:
  batch_size: 32
  distance: dot
log:
  level: debug
metrics:
  enabled: true
  address: ":9999"
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-agent", cfg.Service.Name)
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Endpoint)
	assert.Equal(t, 7334, cfg.Qdrant.Port)
	assert.Equal(t, "custom-model", cfg.Embedding.Model)
	assert.Equal(t, 768, cfg.Embedding.Dimension)
	assert.Equal(t, 32, cfg.Store.BatchSize)
	assert.Equal(t, "dot", cfg.Store.Distance)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9999", cfg.Metrics.Address)

	// File values must not disturb untouched defaults.
	assert.Equal(t, "https://api.openai.com", cfg.Embedding.Endpoint)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Qdrant.Endpoint)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DOCAGENT_QDRANT_ENDPOINT", "env-host")
	t.Setenv("DOCAGENT_STORE_BATCH_SIZE", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Qdrant.Endpoint)
	assert.Equal(t, 7, cfg.Store.BatchSize)
}

func TestLoadEnvOverrideAPIKeys(t *testing.T) {
	// The credential keys have no file value and an empty default; the
	// environment must still reach them.
	t.Setenv("DOCAGENT_QDRANT_API_KEY", "env-qdrant-key")
	t.Setenv("DOCAGENT_EMBEDDING_API_KEY", "env-embed-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-qdrant-key", cfg.Qdrant.APIKey)
	assert.Equal(t, "env-embed-key", cfg.Embedding.APIKey)
}

func TestExpandEnvRef(t *testing.T) {
	t.Setenv("TEST_EMBED_KEY", "sk-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "docagent.yaml")
	data := []byte(`
embedding:
  api_key: ${TEST_EMBED_KEY}
qdrant:
  api_key: literal-key
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-secret", cfg.Embedding.APIKey)
	assert.Equal(t, "literal-key", cfg.Qdrant.APIKey)
}

func TestExpandEnvRefUnsetVariable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docagent.yaml")
	data := []byte(`
embedding:
  api_key: ${DOCAGENT_TEST_UNSET_KEY}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// A dangling reference must not survive as a literal token; the
	// empty key fails embedding.Config.Validate at construction.
	assert.Empty(t, cfg.Embedding.APIKey)
	assert.Error(t, cfg.EmbeddingConfig().Validate())
}

func TestDocstoreConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	sc, err := cfg.DocstoreConfig()
	require.NoError(t, err)
	assert.Equal(t, docstore.DistanceCosine, sc.DefaultDistance)
	assert.Equal(t, 100, sc.BatchSize)

	cfg.Store.Distance = "not-a-metric"
	_, err = cfg.DocstoreConfig()
	assert.ErrorIs(t, err, docstore.ErrInput)
}
