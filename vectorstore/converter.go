package vectorstore

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"docagent/docstore"
)

// toQdrantDistance maps the core's distance metric onto the SDK enum.
// Unknown values fall back to cosine, matching the core's default.
func toQdrantDistance(d docstore.Distance) qdrant.Distance {
	switch d {
	case docstore.DistanceDot:
		return qdrant.Distance_Dot
	case docstore.DistanceEuclid:
		return qdrant.Distance_Euclid
	default:
		return qdrant.Distance_Cosine
	}
}

// fromQdrantDistance maps the SDK enum back to the core's metric names.
func fromQdrantDistance(d qdrant.Distance) docstore.Distance {
	switch d {
	case qdrant.Distance_Dot:
		return docstore.DistanceDot
	case qdrant.Distance_Euclid:
		return docstore.DistanceEuclid
	default:
		return docstore.DistanceCosine
	}
}

// extractVectorParams pulls the vector dimension and distance metric
// out of Qdrant's nested CollectionInfo, guarding every level against
// nil. Missing or unexpected configuration yields (0, cosine).
func extractVectorParams(info *qdrant.CollectionInfo) (uint64, docstore.Distance) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, docstore.DistanceCosine
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return cfg.Params.Size, fromQdrantDistance(cfg.Params.Distance)
	}
	return 0, docstore.DistanceCosine
}

func derefUint64(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

// extractPointID extracts a string id from Qdrant's PointId oneof.
func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
