// Package plistutil provides utilities for working with property list documents
package plistutil

import (
	"fmt"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"howett.net/plist"
)

// Format represents the plist format
type Format int

const (
	// FormatXML is the XML plist format
	FormatXML Format = iota
	// FormatBinary is the binary plist format
	FormatBinary
	// FormatOpenStep is the OpenStep plist format
	FormatOpenStep
)

// Decode parses a property list of any format into a generic map
func Decode(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if _, err := plist.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	return result, nil
}

// Encode writes a generic map as a property list. Property lists have no
// null, so nil values are dropped.
func Encode(data map[string]interface{}, format Format) ([]byte, error) {
	var plistFormat int
	switch format {
	case FormatBinary:
		plistFormat = plist.BinaryFormat
	case FormatOpenStep:
		plistFormat = plist.OpenStepFormat
	default:
		plistFormat = plist.XMLFormat
	}

	out, err := plist.MarshalIndent(pruneNil(data), plistFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}
	return out, nil
}

func pruneNil(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			out[key] = pruneNil(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, pruneNil(item))
		}
		return out
	default:
		return value
	}
}
