package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// DefaultProcessName names documents that arrive without one
const DefaultProcessName = "Untitled Process"

// Sanitize fills in what the evaluator assumes is present: missing arrays,
// identifiers, section layout and variant, and group combinators. Entries of
// the wrong shape inside arrays are dropped.
func Sanitize(doc map[string]interface{}) {
	ensureID(doc)
	if name, _ := doc["name"].(string); strings.TrimSpace(name) == "" {
		doc["name"] = DefaultProcessName
	}

	stages := objects(doc["stages"])
	for _, stage := range stages {
		sanitizeStage(stage)
	}
	doc["stages"] = toArray(stages)
}

func sanitizeStage(stage map[string]interface{}) {
	ensureID(stage)

	sections := objects(stage["sections"])
	for _, section := range sections {
		sanitizeSection(section)
	}
	stage["sections"] = toArray(sections)

	rules := objects(stage["skillLogic"])
	for _, rule := range rules {
		ensureID(rule)
		sanitizeGroupKey(rule, "logic")
	}
	stage["skillLogic"] = toArray(rules)
}

func sanitizeSection(section map[string]interface{}) {
	ensureID(section)
	section["layout"] = float64(clampLayout(section["layout"]))

	if variant, _ := section["variant"].(string); variant == "" {
		section["variant"] = string(model.VariantStandard)
	}

	sanitizeGroupKey(section, "visibility")

	elements := objects(section["elements"])
	for _, element := range elements {
		sanitizeElement(element)
	}
	section["elements"] = toArray(elements)
}

func sanitizeElement(element map[string]interface{}) {
	ensureID(element)
	if kind, _ := element["type"].(string); kind == "" {
		element["type"] = string(model.ElementText)
	}

	sanitizeGroupKey(element, "visibility")
	sanitizeGroupKey(element, "requiredLogic")

	if _, ok := element["columns"]; ok {
		columns := objects(element["columns"])
		for _, column := range columns {
			ensureID(column)
			if kind, _ := column["type"].(string); kind == "" {
				column["type"] = string(model.ElementText)
			}
		}
		element["columns"] = toArray(columns)
	}
}

// sanitizeGroupKey sanitizes the logic group under key, removing values
// that are not objects.
func sanitizeGroupKey(obj map[string]interface{}, key string) {
	value, ok := obj[key]
	if !ok {
		return
	}
	group, ok := value.(map[string]interface{})
	if !ok {
		delete(obj, key)
		return
	}
	sanitizeGroup(group)
}

func sanitizeGroup(group map[string]interface{}) {
	ensureID(group)
	group["operator"] = string(normalizeCombinator(group["operator"]))

	conditions := objects(group["conditions"])
	for _, condition := range conditions {
		ensureID(condition)
	}
	group["conditions"] = toArray(conditions)

	groups := objects(group["groups"])
	for _, nested := range groups {
		sanitizeGroup(nested)
	}
	group["groups"] = toArray(groups)
}

// normalizeCombinator maps any spelling of or/OR to OR and everything else to AND
func normalizeCombinator(value interface{}) model.Combinator {
	s, _ := value.(string)
	if strings.EqualFold(strings.TrimSpace(s), string(model.CombinatorOr)) {
		return model.CombinatorOr
	}
	return model.CombinatorAnd
}

func clampLayout(value interface{}) int {
	layout, ok := value.(float64)
	if !ok {
		return 1
	}
	switch {
	case layout < 1:
		return 1
	case layout > 3:
		return 3
	default:
		return int(layout)
	}
}

func ensureID(obj map[string]interface{}) {
	if id, _ := obj["id"].(string); strings.TrimSpace(id) == "" {
		obj["id"] = uuid.NewString()
	}
}

func toArray(items []map[string]interface{}) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
