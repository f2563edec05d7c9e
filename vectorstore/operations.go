package vectorstore

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"docagent/docstore"
)

// compile-time conformance check
var _ docstore.Backend = (*Client)(nil)

// ListCollections returns the names of all collections.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list collections: %v", ErrBackend, err)
	}
	return names, nil
}

// CreateCollection allocates a collection with the given dimension and
// distance metric. Qdrant rejects duplicate names; the manager's
// existence check normally prevents that, and a lost create race
// surfaces here as a backend error.
func (c *Client) CreateCollection(ctx context.Context, name string, dimension uint64, distance docstore.Distance) error {
	req := &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: toQdrantDistance(distance),
		}),
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("%w: create collection %q: %v", ErrBackend, name, err)
	}
	return nil
}

// DeleteCollection removes a collection and all of its points.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	if err := c.api.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("%w: delete collection %q: %v", ErrBackend, name, err)
	}
	return nil
}

// GetCollection retrieves a decoupled snapshot of a collection, hiding
// the SDK's deeply nested CollectionInfo from the application layer.
func (c *Client) GetCollection(ctx context.Context, name string) (*docstore.CollectionInfo, error) {
	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: get collection %q: %v", ErrBackend, name, err)
	}

	dimension, distance := extractVectorParams(info)

	return &docstore.CollectionInfo{
		Name:      name,
		Status:    info.GetStatus().String(),
		Dimension: dimension,
		Distance:  string(distance),
		Points:    derefUint64(info.PointsCount),
	}, nil
}

// Upsert writes a batch of points as one blocking request (Wait=true),
// so data is persisted before the call returns.
func (c *Client) Upsert(ctx context.Context, collection string, points []docstore.Point) error {
	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	wait := true
	req := &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qdrantPoints,
		Wait:           &wait,
	}

	if _, err := c.api.Upsert(ctx, req); err != nil {
		return fmt.Errorf("%w: upsert %d points into %q: %v", ErrBackend, len(points), collection, err)
	}
	return nil
}

// Query returns up to limit nearest points with their payloads, in the
// order Qdrant ranked them.
func (c *Client) Query(ctx context.Context, collection string, vector []float32, limit uint64) ([]docstore.Match, error) {
	req := &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	}

	resp, err := c.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", ErrBackend, collection, err)
	}

	matches := make([]docstore.Match, 0, len(resp))
	for _, scored := range resp {
		id, err := extractPointID(scored.Id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBackend, err)
		}
		matches = append(matches, docstore.Match{
			ID:      id,
			Score:   scored.Score,
			Payload: convertPayload(scored.Payload),
		})
	}
	return matches, nil
}
