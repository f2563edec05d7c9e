package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersCarryServiceLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServiceName = "test-service"
	cfg.EnableDefaultCollectors = false

	m := NewMetrics(cfg)

	m.IncrementEmbedRequests(StatusSuccess)
	m.IncrementEmbedRequests(StatusSuccess)
	m.IncrementEmbedRequests(StatusError)
	m.IncrementUpsertBatches(StatusSuccess)
	m.IncrementSearches(StatusError)
	m.AddDocumentsIngested(42)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
		for _, metric := range mf.GetMetric() {
			var found bool
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == "test-service" {
					found = true
				}
			}
			assert.True(t, found, "%s is missing the service label", mf.GetName())
		}
	}

	assert.True(t, byName["docagent_embed_requests_total"])
	assert.True(t, byName["docagent_upsert_batches_total"])
	assert.True(t, byName["docagent_searches_total"])
	assert.True(t, byName["docagent_documents_ingested_total"])

	assert.Equal(t, float64(2), testutil.ToFloat64(m.embedRequests.WithLabelValues(StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.embedRequests.WithLabelValues(StatusError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.upsertBatches.WithLabelValues(StatusSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.searches.WithLabelValues(StatusError)))
	assert.Equal(t, float64(42), testutil.ToFloat64(m.documentsUpsert))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementEmbedRequests(StatusSuccess)
		m.IncrementUpsertBatches(StatusError)
		m.IncrementSearches(StatusSuccess)
		m.AddDocumentsIngested(10)
	})
}
