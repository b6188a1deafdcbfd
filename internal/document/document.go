// Package document reads and writes process documents. Every document,
// whether read from disk or received from an untrusted generator, goes
// through the same upgrade and sanitization pass before it reaches the
// logic engine.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	compression "github.com/deploymenttheory/go-form-composer/internal/common/compressionutil"
	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-form-composer/internal/common/jsonutil"
	"github.com/deploymenttheory/go-form-composer/internal/common/plistutil"
	"github.com/deploymenttheory/go-form-composer/internal/logger"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// Format is a document serialization
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlist Format = "plist"
)

// FormatFromExtension maps a file extension to a document format.
// An empty extension reads as JSON.
func FormatFromExtension(ext string) (Format, error) {
	switch ext {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "plist":
		return FormatPlist, nil
	default:
		return "", fmt.Errorf("%w: .%s", errors.ErrUnsupportedFormat, ext)
	}
}

// Load reads a process document from a file. The format comes from the file
// extension and an optional .gz, .bz2 or .xz suffix selects decompression.
func Load(path string) (*model.Process, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}

	process, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.LogDebug("Loaded process document", map[string]interface{}{
		"file":    path,
		"format":  string(format),
		"process": process.ID,
		"stages":  len(process.Stages),
	})
	return process, nil
}

// Parse decodes, upgrades and sanitizes a process document
func Parse(data []byte, format Format) (*model.Process, error) {
	doc, err := decodeTree(data, format)
	if err != nil {
		return nil, err
	}

	if err := Upgrade(doc); err != nil {
		return nil, err
	}
	Sanitize(doc)

	process := &model.Process{}
	if err := jsonutil.Convert(doc, process); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidDocument, err.Error())
	}
	return process, nil
}

// Encode serializes a process in format, compressed when compressionFormat
// is not empty.
func Encode(process *model.Process, format Format, compressionFormat string) ([]byte, error) {
	var tree map[string]interface{}
	if err := jsonutil.Convert(process, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidDocument, err.Error())
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = jsonutil.EncodeIndent(tree)
	case FormatYAML:
		data, err = yaml.Marshal(tree)
	case FormatPlist:
		data, err = plistutil.Encode(tree, plistutil.FormatXML)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	return compression.Compress(compressionFormat, data)
}

// Save writes a process document, choosing format and compression from the
// file extension like Load.
func Save(process *model.Process, path string) error {
	ext, compressionFormat := fsutil.SplitExtensions(path)
	format, err := FormatFromExtension(ext)
	if err != nil {
		return err
	}

	data, err := Encode(process, format, compressionFormat)
	if err != nil {
		return err
	}

	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	logger.LogDebug("Saved process document", map[string]interface{}{
		"file":        path,
		"format":      string(format),
		"compression": compressionFormat,
	})
	return nil
}

// LoadFormData reads a form data snapshot (a JSON or YAML object) from a file
func LoadFormData(path string) (model.FormData, error) {
	data, format, err := readFile(path)
	if err != nil {
		return nil, err
	}

	snapshot, err := ParseFormData(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}

// ParseFormData decodes a form data snapshot. Values are normalized to the
// JSON value shapes so numbers are always float64.
func ParseFormData(data []byte, format Format) (model.FormData, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidFormData, err.Error())
	}
	return model.FormData(tree), nil
}

func readFile(path string) ([]byte, Format, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, "", fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}

	ext, compressionFormat := fsutil.SplitExtensions(path)
	format, err := FormatFromExtension(ext)
	if err != nil {
		return nil, "", err
	}

	raw, err := fsutil.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", errors.ErrFileReadError, err.Error())
	}

	data, err := compression.Decompress(compressionFormat, raw)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return data, format, nil
}

// decodeTree parses data into a generic object tree with JSON value shapes
func decodeTree(data []byte, format Format) (map[string]interface{}, error) {
	switch format {
	case FormatJSON:
		return jsonutil.DecodeObject(data)

	case FormatYAML:
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
		}
		return normalizeTree(raw)

	case FormatPlist:
		raw, err := plistutil.Decode(data)
		if err != nil {
			return nil, err
		}
		return normalizeTree(raw)

	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFormat, format)
	}
}

func normalizeTree(raw map[string]interface{}) (map[string]interface{}, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an object", errors.ErrUnsupportedFile)
	}

	normalized, err := jsonutil.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}

	tree, ok := normalized.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected an object", errors.ErrUnsupportedFile)
	}
	return tree, nil
}
