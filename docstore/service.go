package docstore

import (
	"context"
	"fmt"

	"docagent/logger"
	"docagent/metrics"
)

// Store composes the collection manager, ingestor and search engine
// behind the Service interface.
type Store struct {
	manager  *CollectionManager
	ingestor *Ingestor
	engine   *SearchEngine
}

// compile-time conformance check
var _ Service = (*Store)(nil)

// NewStore wires the three pipeline components around one backend and
// one embedder. The metrics handle may be nil; everything else is
// required.
func NewStore(backend Backend, embedder Embedder, cfg Config, log *logger.Logger, m *metrics.Metrics) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("docstore: backend is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("docstore: embedder is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	manager := NewCollectionManager(backend, log)
	return &Store{
		manager:  manager,
		ingestor: NewIngestor(backend, embedder, manager, cfg, log, m),
		engine:   NewSearchEngine(backend, embedder, manager, log, m),
	}, nil
}

// ListCollections implements Service.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	return s.manager.List(ctx)
}

// CollectionExists implements Service.
func (s *Store) CollectionExists(ctx context.Context, name string) (bool, error) {
	return s.manager.Exists(ctx, name)
}

// CreateCollection implements Service.
func (s *Store) CreateCollection(ctx context.Context, name string, dimension uint64, distance Distance) (bool, error) {
	return s.manager.Create(ctx, name, dimension, distance)
}

// DeleteCollection implements Service.
func (s *Store) DeleteCollection(ctx context.Context, name string) (bool, error) {
	return s.manager.Delete(ctx, name)
}

// DescribeCollection implements Service.
func (s *Store) DescribeCollection(ctx context.Context, name string) (*CollectionInfo, error) {
	return s.manager.Describe(ctx, name)
}

// AddDocuments implements Service.
func (s *Store) AddDocuments(ctx context.Context, collection string, texts []string, metadatas []map[string]any) ([]string, error) {
	return s.ingestor.Add(ctx, collection, texts, metadatas)
}

// Search implements Service.
func (s *Store) Search(ctx context.Context, collection string, query string, k int) ([]SearchResult, error) {
	return s.engine.Search(ctx, collection, query, k)
}
