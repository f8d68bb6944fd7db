package repositories

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// encodeRecord stores a schemaless record as a protobuf Struct.
func encodeRecord(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("unsupported record field: %w", err)
	}
	return proto.Marshal(s)
}

func decodeRecord(data []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	return s.AsMap(), nil
}
