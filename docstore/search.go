package docstore

import (
	"context"
	"fmt"

	"docagent/logger"
	"docagent/metrics"
)

// SearchEngine embeds a query and returns ranked results from the
// backend. It never creates collections: searching an absent name is a
// caller mistake the engine surfaces instead of masking with an empty
// result list.
type SearchEngine struct {
	backend  Backend
	embedder Embedder
	manager  *CollectionManager
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewSearchEngine builds a search engine. The metrics handle may be nil.
func NewSearchEngine(backend Backend, embedder Embedder, manager *CollectionManager, log *logger.Logger, m *metrics.Metrics) *SearchEngine {
	return &SearchEngine{
		backend:  backend,
		embedder: embedder,
		manager:  manager,
		log:      log,
		metrics:  m,
	}
}

// Search returns up to k results for the query, most-similar first in
// the backend's order and score precision. Fewer than k stored points
// yield that many results without error.
func (e *SearchEngine) Search(ctx context.Context, collection string, query string, k int) ([]SearchResult, error) {
	if collection == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", ErrInput)
	}
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", ErrInput)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInput, k)
	}

	exists, err := e.manager.Exists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		e.metrics.IncrementSearches(metrics.StatusError)
		return nil, fmt.Errorf("%w: %q", ErrNotFound, collection)
	}

	vectors, err := e.embedder.Embed(ctx, []string{query})
	if err != nil {
		e.metrics.IncrementEmbedRequests(metrics.StatusError)
		e.metrics.IncrementSearches(metrics.StatusError)
		return nil, fmt.Errorf("embed query: %w", err)
	}
	e.metrics.IncrementEmbedRequests(metrics.StatusSuccess)
	if len(vectors) != 1 {
		e.metrics.IncrementSearches(metrics.StatusError)
		return nil, fmt.Errorf("embedder returned %d vectors for a single query", len(vectors))
	}

	matches, err := e.backend.Query(ctx, collection, vectors[0], uint64(k))
	if err != nil {
		e.metrics.IncrementSearches(metrics.StatusError)
		return nil, fmt.Errorf("query collection %q: %w", collection, err)
	}

	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		text, metadata := SplitPayload(match.Payload)
		results = append(results, SearchResult{
			Text:     text,
			Metadata: metadata,
			Score:    match.Score,
		})
	}

	e.metrics.IncrementSearches(metrics.StatusSuccess)
	e.log.Debug("search completed", nil, map[string]interface{}{
		"collection": collection,
		"requested":  k,
		"returned":   len(results),
	})
	return results, nil
}
