package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// Legacy keys holding flat condition arrays in version 1 documents
const (
	legacyVisibilityKey = "visibilityConditions"
	legacyRequiredKey   = "requiredConditions"
)

// migration upgrades a generic document tree by exactly one schema version
type migration func(doc map[string]interface{})

// migrations is keyed by the version a migration upgrades from
var migrations = map[int]migration{
	1: upgradeFlatConditions,
}

// SchemaVersion reads the document's schema version; absent means 1
func SchemaVersion(doc map[string]interface{}) int {
	switch v := doc["schemaVersion"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 1
}

// Upgrade brings a generic document tree to the current schema version in
// place. It is idempotent and runs once at load, never during evaluation.
//
// Flat condition arrays are upgraded wherever they appear, whatever version
// the document declares, since generated edits of a current document can
// still carry the legacy keys.
func Upgrade(doc map[string]interface{}) error {
	version := SchemaVersion(doc)
	if version < 1 || version > model.CurrentSchemaVersion {
		return fmt.Errorf("%w: %d", errors.ErrUnsupportedVersion, version)
	}

	for v := version; v < model.CurrentSchemaVersion; v++ {
		migrations[v](doc)
	}
	upgradeFlatConditions(doc)

	doc["schemaVersion"] = float64(model.CurrentSchemaVersion)
	return nil
}

// upgradeFlatConditions wraps visibilityConditions and requiredConditions
// arrays on sections and elements into AND logic groups.
func upgradeFlatConditions(doc map[string]interface{}) {
	for _, stage := range objects(doc["stages"]) {
		for _, section := range objects(stage["sections"]) {
			wrapConditions(section, legacyVisibilityKey, "visibility")
			for _, element := range objects(section["elements"]) {
				wrapConditions(element, legacyVisibilityKey, "visibility")
				wrapConditions(element, legacyRequiredKey, "requiredLogic")
			}
		}
	}
}

// wrapConditions moves a flat condition array under legacyKey into a logic
// group under groupKey. An existing group wins and the legacy array is
// dropped. An empty legacy array adds no logic.
func wrapConditions(obj map[string]interface{}, legacyKey, groupKey string) {
	raw, ok := obj[legacyKey]
	if !ok {
		return
	}
	delete(obj, legacyKey)

	if existing, ok := obj[groupKey]; ok && existing != nil {
		return
	}

	conditions, _ := raw.([]interface{})
	if len(conditions) == 0 {
		return
	}

	obj[groupKey] = map[string]interface{}{
		"id":         uuid.NewString(),
		"operator":   string(model.CombinatorAnd),
		"conditions": conditions,
		"groups":     []interface{}{},
	}
}

// objects returns the map elements of a generic array, skipping anything else
func objects(value interface{}) []map[string]interface{} {
	items, _ := value.([]interface{})
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}
