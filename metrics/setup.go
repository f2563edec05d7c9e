package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server that
// exposes it, together with docagent's built-in counters.
type Metrics struct {
	// Server serves the /metrics endpoint. Nil-safe to ignore when the
	// listener is disabled.
	Server *http.Server

	// Registry is the isolated Prometheus registry for this process.
	Registry *prometheus.Registry

	embedRequests   *prometheus.CounterVec
	upsertBatches   *prometheus.CounterVec
	searches        *prometheus.CounterVec
	documentsUpsert prometheus.Counter
}

// NewMetrics builds an isolated registry, registers the pipeline
// counters (and optionally the default runtime collectors), and
// prepares an HTTP server for the /metrics endpoint.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{Registry: registry}

	m.embedRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "docagent_embed_requests_total",
		Help: "Embedding provider calls, labelled by outcome.",
	}, []string{"status"})
	m.upsertBatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "docagent_upsert_batches_total",
		Help: "Vector store batch upserts, labelled by outcome.",
	}, []string{"status"})
	m.searches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "docagent_searches_total",
		Help: "Similarity searches, labelled by outcome.",
	}, []string{"status"})
	m.documentsUpsert = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "docagent_documents_ingested_total",
		Help: "Documents committed to the vector store.",
	})

	wrapped.MustRegister(
		m.embedRequests,
		m.upsertBatches,
		m.searches,
		m.documentsUpsert,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}
