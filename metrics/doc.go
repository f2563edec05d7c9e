// Package metrics exposes Prometheus metrics for docagent.
//
// Each process keeps its own isolated registry so counters never
// collide with other services sharing a scrape target. The built-in
// counters cover the ingestion and search pipeline:
//
//	docagent_embed_requests_total{status}
//	docagent_upsert_batches_total{status}
//	docagent_documents_ingested_total
//	docagent_searches_total{status}
//
// The /metrics HTTP server is optional; CLI invocations typically run
// with it disabled while long-lived consumers enable it via config.
package metrics
