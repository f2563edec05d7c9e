package docstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"docagent/logger"
	"docagent/metrics"
)

// Ingestor writes documents into a collection in bounded batches.
//
// Input is partitioned into sequential slices of at most BatchSize
// items. Each batch is one embed call followed by one upsert; batches
// run strictly in input order and within a batch the text, metadata and
// assigned id stay aligned by index. When a batch fails, the whole call
// fails and earlier batches stay committed: ingestion is at-least-once,
// not transactional.
type Ingestor struct {
	backend  Backend
	embedder Embedder
	manager  *CollectionManager
	cfg      Config
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewIngestor builds an ingestor. The metrics handle may be nil.
func NewIngestor(backend Backend, embedder Embedder, manager *CollectionManager, cfg Config, log *logger.Logger, m *metrics.Metrics) *Ingestor {
	return &Ingestor{
		backend:  backend,
		embedder: embedder,
		manager:  manager,
		cfg:      cfg,
		log:      log,
		metrics:  m,
	}
}

// Add embeds and stores texts with positionally aligned metadata and
// returns the assigned ids in input order. metadatas may be nil; when
// given, it must match texts in length (checked before any network
// call). A missing collection is created with the embedder's dimension
// and the configured default distance.
func (ing *Ingestor) Add(ctx context.Context, collection string, texts []string, metadatas []map[string]any) ([]string, error) {
	if collection == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", ErrInput)
	}
	if metadatas != nil && len(metadatas) != len(texts) {
		return nil, fmt.Errorf("%w: got %d texts but %d metadatas", ErrInput, len(texts), len(metadatas))
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	if err := ing.ensureCollection(ctx, collection); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(texts))
	for start := 0; start < len(texts); start += ing.cfg.BatchSize {
		end := min(start+ing.cfg.BatchSize, len(texts))

		var batchMeta []map[string]any
		if metadatas != nil {
			batchMeta = metadatas[start:end]
		}

		batchIDs, err := ing.commitBatch(ctx, collection, texts[start:end], batchMeta)
		if err != nil {
			// Earlier batches are already persisted and stay that way.
			return nil, fmt.Errorf("ingest batch [%d:%d): %w", start, end, err)
		}
		ids = append(ids, batchIDs...)

		ing.log.Debug("batch committed", nil, map[string]interface{}{
			"collection": collection,
			"start":      start,
			"end":        end,
		})
	}

	ing.log.Info("documents added", nil, map[string]interface{}{
		"collection": collection,
		"count":      len(ids),
	})
	return ids, nil
}

// ensureCollection creates the target collection on first use. The
// creation decision is logged so implicit creation stays observable.
func (ing *Ingestor) ensureCollection(ctx context.Context, collection string) error {
	exists, err := ing.manager.Exists(ctx, collection)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ing.log.Info("collection missing, creating it before ingestion", nil, map[string]interface{}{
		"collection": collection,
		"dimension":  ing.embedder.Dimension(),
		"distance":   string(ing.cfg.DefaultDistance),
	})

	// A concurrent creator may win the race; Create returning false is
	// fine either way, the collection exists afterwards.
	_, err = ing.manager.Create(ctx, collection, uint64(ing.embedder.Dimension()), ing.cfg.DefaultDistance)
	return err
}

// commitBatch runs one embed+upsert round trip. Once started it runs to
// completion or failure; there is no mid-batch cancellation point.
func (ing *Ingestor) commitBatch(ctx context.Context, collection string, texts []string, metadatas []map[string]any) ([]string, error) {
	vectors, err := ing.embedder.Embed(ctx, texts)
	if err != nil {
		ing.metrics.IncrementEmbedRequests(metrics.StatusError)
		return nil, err
	}
	ing.metrics.IncrementEmbedRequests(metrics.StatusSuccess)

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(texts))
	}

	ids := make([]string, len(texts))
	points := make([]Point, len(texts))
	for i, text := range texts {
		ids[i] = uuid.NewString()

		var meta map[string]any
		if metadatas != nil {
			meta = metadatas[i]
		}
		points[i] = Point{
			ID:      ids[i],
			Vector:  vectors[i],
			Payload: BuildPayload(text, meta),
		}
	}

	if err := ing.backend.Upsert(ctx, collection, points); err != nil {
		ing.metrics.IncrementUpsertBatches(metrics.StatusError)
		return nil, err
	}
	ing.metrics.IncrementUpsertBatches(metrics.StatusSuccess)
	ing.metrics.AddDocumentsIngested(len(points))

	return ids, nil
}
