package jsonutils

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx/types"
)

// ErrMetadataNotObject - the metadata value is not a json object
var ErrMetadataNotObject = errors.New("metadata must be a json object")

// Metadata is free-form key/value data attached to gateway objects. Values are
// loosely typed (string, json.Number, bool, nested Metadata-shaped maps, slices).
type Metadata map[string]interface{}

// ParseMetadata decodes a json object, numbers are kept as json.Number so no
// precision is lost on a round trip
func ParseMetadata(data []byte) (Metadata, error) {
	var raw interface{}
	if err := decodeNumbers(data, &raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ErrMetadataNotObject
	}
	return Metadata(obj), nil
}

// Get returns the value of key as a string when it holds one
func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Scan the src sql type into the passed Metadata
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}

	var jt types.JSONText
	if err := jt.Scan(src); err != nil {
		return err
	}

	parsed, err := ParseMetadata(jt)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value the driver.Value representation
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	data, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}

	return types.JSONText(data).Value()
}
