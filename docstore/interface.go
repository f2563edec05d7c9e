package docstore

import "context"

//go:generate mockgen -destination=mocks/backend_mock.go -package=mocks docagent/docstore Backend
//go:generate mockgen -destination=mocks/embedder_mock.go -package=mocks docagent/docstore Embedder

// Backend is the vector store contract the core depends on. Any
// conforming backend is acceptable; the qdrant implementation lives in
// the vectorstore package.
type Backend interface {
	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)

	// CreateCollection allocates a collection with a fixed dimension
	// and distance metric. The dimension is immutable once set.
	CreateCollection(ctx context.Context, name string, dimension uint64, distance Distance) error

	// DeleteCollection removes a collection and all of its points.
	DeleteCollection(ctx context.Context, name string) error

	// GetCollection returns a snapshot of a collection the caller has
	// already confirmed to exist.
	GetCollection(ctx context.Context, name string) (*CollectionInfo, error)

	// Upsert writes points as a single request. All points of one call
	// are persisted together before it returns.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Query returns up to limit nearest points by the collection's
	// distance metric, most-similar first, with payloads attached.
	Query(ctx context.Context, collection string, vector []float32, limit uint64) ([]Match, error)
}

// Embedder converts texts into fixed-dimension vectors, one vector per
// input text, order-preserving. Implementations do not retry; retry
// policy belongs to the operational layer around the core.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension is the fixed output dimension of the configured model.
	Dimension() int
}

// Service is the full programmatic surface of the core: the capability
// set a dispatcher (CLI, tool-calling loop, scripted caller) binds its
// operations to. No other state is exposed.
type Service interface {
	// ListCollections returns all collection names.
	ListCollections(ctx context.Context) ([]string, error)

	// CollectionExists reports membership in ListCollections. Each call
	// is authoritative; nothing is cached.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// CreateCollection returns false without error when the collection
	// already exists, leaving its dimension unchanged.
	CreateCollection(ctx context.Context, name string, dimension uint64, distance Distance) (bool, error)

	// DeleteCollection returns false without error when the collection
	// does not exist.
	DeleteCollection(ctx context.Context, name string) (bool, error)

	// DescribeCollection returns a nil snapshot without error when the
	// collection does not exist.
	DescribeCollection(ctx context.Context, name string) (*CollectionInfo, error)

	// AddDocuments embeds and stores texts with positionally aligned
	// metadata, returning the assigned ids in input order. The target
	// collection is created on first use.
	AddDocuments(ctx context.Context, collection string, texts []string, metadatas []map[string]any) ([]string, error)

	// Search returns up to k results ranked most-similar first. Unlike
	// ingestion it never creates the collection: a missing name is
	// ErrNotFound, not an empty result.
	Search(ctx context.Context, collection string, query string, k int) ([]SearchResult, error)
}
