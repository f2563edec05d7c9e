package metrics

// Outcome labels used by the pipeline counters.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// All increment helpers are nil-safe so the core can carry an optional
// *Metrics without guarding every call site.

// IncrementEmbedRequests counts one embedding provider call.
func (m *Metrics) IncrementEmbedRequests(status string) {
	if m == nil {
		return
	}
	m.embedRequests.WithLabelValues(status).Inc()
}

// IncrementUpsertBatches counts one batch upsert to the vector store.
func (m *Metrics) IncrementUpsertBatches(status string) {
	if m == nil {
		return
	}
	m.upsertBatches.WithLabelValues(status).Inc()
}

// IncrementSearches counts one similarity search.
func (m *Metrics) IncrementSearches(status string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(status).Inc()
}

// AddDocumentsIngested counts documents committed to the store.
func (m *Metrics) AddDocumentsIngested(n int) {
	if m == nil {
		return
	}
	m.documentsUpsert.Add(float64(n))
}
