package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// marshalJSON encodes a value into a datatypes.JSON column value.
// Nil slices are stored as empty arrays so reads never see SQL NULL.
func marshalJSON[T any](v T) (datatypes.JSON, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return datatypes.JSON(data), nil
}

// unmarshalJSON decodes a datatypes.JSON column value. Empty columns
// yield the zero value.
func unmarshalJSON[T any](data datatypes.JSON) (T, error) {
	var v T
	if len(data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return v, nil
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
