// AngelaMos | 2026
// jsonb.go

package core

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB stores V in a postgres jsonb column.
type JSONB[V any] struct {
	V V
}

func NewJSONB[V any](v V) JSONB[V] {
	return JSONB[V]{V: v}
}

func (j JSONB[V]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return string(b), nil
}

func (j *JSONB[V]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero V
		j.V = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", src)
	}

	if err := json.Unmarshal(raw, &j.V); err != nil {
		return fmt.Errorf("scan jsonb: %w", err)
	}
	return nil
}

func (j JSONB[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.V)
}

func (j *JSONB[V]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.V)
}

// Asset is a reference to a file held by the media host.
type Asset struct {
	URL      string `json:"url"       validate:"required"`
	PublicID string `json:"public_id" validate:"required"`
}

// OptionalAsset is an asset whose fields may both be blank.
type OptionalAsset struct {
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}
