package docstore

import (
	"context"
	"fmt"
	"slices"

	"docagent/logger"
)

// CollectionManager owns collection lifecycle against the backend.
//
// Create and Delete return soft booleans instead of raising on
// duplicate or missing names, so repeated calls look idempotent to the
// caller. The existence check and the mutating call that follows it are
// two separate backend round trips; when two callers race on the same
// name, the backend's own atomicity is the only guard.
type CollectionManager struct {
	backend Backend
	log     *logger.Logger
}

// NewCollectionManager builds a manager over the given backend.
func NewCollectionManager(backend Backend, log *logger.Logger) *CollectionManager {
	return &CollectionManager{backend: backend, log: log}
}

// List returns the names of all collections.
func (m *CollectionManager) List(ctx context.Context) ([]string, error) {
	names, err := m.backend.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Exists reports whether a collection is present, by membership in
// List. Every call reflects the backend's current state; nothing is
// cached.
func (m *CollectionManager) Exists(ctx context.Context, name string) (bool, error) {
	names, err := m.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Create allocates a collection with the given dimension and distance
// metric. It returns false without error when the name is already
// taken, leaving the existing collection untouched. An empty distance
// defaults to cosine.
func (m *CollectionManager) Create(ctx context.Context, name string, dimension uint64, distance Distance) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("%w: collection name cannot be empty", ErrInput)
	}
	if dimension == 0 {
		return false, fmt.Errorf("%w: dimension must be positive", ErrInput)
	}

	dist, err := ParseDistance(string(distance))
	if err != nil {
		return false, err
	}

	exists, err := m.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		m.log.Warn("collection already exists", nil, map[string]interface{}{
			"collection": name,
		})
		return false, nil
	}

	if err := m.backend.CreateCollection(ctx, name, dimension, dist); err != nil {
		return false, fmt.Errorf("create collection %q: %w", name, err)
	}

	m.log.Info("collection created", nil, map[string]interface{}{
		"collection": name,
		"dimension":  dimension,
		"distance":   string(dist),
	})
	return true, nil
}

// Delete removes a collection. It returns false without error when the
// collection does not exist.
func (m *CollectionManager) Delete(ctx context.Context, name string) (bool, error) {
	exists, err := m.Exists(ctx, name)
	if err != nil {
		return false, err
	}
	if !exists {
		m.log.Warn("collection does not exist", nil, map[string]interface{}{
			"collection": name,
		})
		return false, nil
	}

	if err := m.backend.DeleteCollection(ctx, name); err != nil {
		return false, fmt.Errorf("delete collection %q: %w", name, err)
	}

	m.log.Info("collection deleted", nil, map[string]interface{}{
		"collection": name,
	})
	return true, nil
}

// Describe returns a snapshot of a collection, or nil without error
// when the collection does not exist.
func (m *CollectionManager) Describe(ctx context.Context, name string) (*CollectionInfo, error) {
	exists, err := m.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		m.log.Warn("collection does not exist", nil, map[string]interface{}{
			"collection": name,
		})
		return nil, nil
	}

	info, err := m.backend.GetCollection(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("describe collection %q: %w", name, err)
	}
	return info, nil
}
