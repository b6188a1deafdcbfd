package logic

import (
	"strings"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// EvaluateCondition compares the referenced element's current value with the
// condition literal. A reference to an element that is not in the snapshot
// reads as nil. Unknown operators evaluate to false.
func EvaluateCondition(condition model.Condition, data model.FormData) bool {
	value := data[condition.TargetElementID]
	target := condition.Value

	switch condition.Operator {
	case model.OpEquals:
		return looseEquals(value, target)
	case model.OpNotEquals:
		return !looseEquals(value, target)
	case model.OpContains:
		return strings.Contains(toText(value), toText(target))
	case model.OpGreater:
		return toNumber(value) > toNumber(target)
	case model.OpLess:
		return toNumber(value) < toNumber(target)
	case model.OpIsEmpty:
		return isBlank(value)
	case model.OpIsNotEmpty:
		return !isBlank(value)
	default:
		return false
	}
}

// EvaluateLogicGroup combines the group's conditions and nested groups.
// A nil or empty group is true whatever its combinator. Any combinator
// other than OR is treated as AND.
func EvaluateLogicGroup(group *model.LogicGroup, data model.FormData) bool {
	if group == nil || group.IsEmpty() {
		return true
	}

	results := make([]bool, 0, len(group.Conditions)+len(group.Groups))
	for _, condition := range group.Conditions {
		results = append(results, EvaluateCondition(condition, data))
	}
	for i := range group.Groups {
		results = append(results, EvaluateLogicGroup(&group.Groups[i], data))
	}

	if group.Operator == model.CombinatorOr {
		return some(results)
	}
	return every(results)
}

func every(results []bool) bool {
	for _, r := range results {
		if !r {
			return false
		}
	}
	return true
}

func some(results []bool) bool {
	for _, r := range results {
		if r {
			return true
		}
	}
	return false
}
