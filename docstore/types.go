package docstore

import (
	"fmt"
	"strings"
)

// Distance is the similarity metric of a collection. Higher scores mean
// more similar for cosine and dot; for euclid lower is more similar and
// results are still returned in the backend's similarity order.
type Distance string

const (
	DistanceCosine Distance = "cosine"
	DistanceDot    Distance = "dot"
	DistanceEuclid Distance = "euclid"
)

// ParseDistance normalizes a user-supplied metric name. The empty
// string resolves to cosine, the process-wide default.
func ParseDistance(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cosine":
		return DistanceCosine, nil
	case "dot", "dot-product", "dotproduct":
		return DistanceDot, nil
	case "euclid", "euclidean":
		return DistanceEuclid, nil
	default:
		return "", fmt.Errorf("%w: unknown distance metric %q", ErrInput, s)
	}
}

// CollectionInfo is a point-in-time snapshot of a collection.
type CollectionInfo struct {
	// Name is the unique identifier of the collection.
	Name string `json:"name"`

	// Status is the backend's operational state, e.g. "Green".
	Status string `json:"status"`

	// Dimension is the fixed vector size of the collection.
	Dimension uint64 `json:"dimension"`

	// Distance is the metric the collection ranks by.
	Distance string `json:"distance"`

	// Points is the number of stored points.
	Points uint64 `json:"points"`
}

// Point is one stored unit: an id, a vector of the collection's
// dimension, and an opaque payload. A point either has its vector
// stored or does not exist; there is no partially written state.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]any
}

// Match is a raw nearest-neighbor hit returned by a Backend, ordered
// most-similar first.
type Match struct {
	ID      string
	Score   float32
	Payload map[string]any
}

// SearchResult is the caller-facing projection of a Match: the original
// document text, its metadata and the backend's similarity score.
// Results are ephemeral and never persisted.
type SearchResult struct {
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Score    float32        `json:"score"`
}

// Payload keys under which the ingestor stores document content. The
// text lives at the top level; user metadata is nested under its own
// key so arbitrary metadata can never collide with the text field.
const (
	PayloadTextKey     = "text"
	PayloadMetadataKey = "metadata"
)

// BuildPayload assembles the stored payload for one document. The
// metadata key is omitted entirely when no metadata was supplied.
func BuildPayload(text string, metadata map[string]any) map[string]any {
	payload := map[string]any{PayloadTextKey: text}
	if len(metadata) > 0 {
		payload[PayloadMetadataKey] = metadata
	}
	return payload
}

// SplitPayload is the inverse of BuildPayload, tolerating points that
// were written without text or metadata.
func SplitPayload(payload map[string]any) (string, map[string]any) {
	if payload == nil {
		return "", nil
	}
	text, _ := payload[PayloadTextKey].(string)
	metadata, _ := payload[PayloadMetadataKey].(map[string]any)
	return text, metadata
}
