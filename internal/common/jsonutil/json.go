package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
)

// DecodeObject parses a JSON object into a generic map
func DecodeObject(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	if result == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", errors.ErrUnsupportedFile)
	}
	return result, nil
}

// EncodeIndent writes v as indented JSON
func EncodeIndent(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return data, nil
}

// Convert re-shapes in into out through its JSON encoding, e.g. a generic
// map into a typed struct or a struct into a generic map.
func Convert(in interface{}, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// Normalize turns any decoded tree (YAML, plist) into the value shapes
// encoding/json produces: map[string]interface{}, []interface{}, float64,
// string, bool and nil.
func Normalize(in interface{}) (interface{}, error) {
	var out interface{}
	if err := Convert(in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
