package logic

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// AlwaysText is the rendering of a group with nothing to check
const AlwaysText = "Always"

// UnknownFieldLabel stands in for a condition target missing from the process
const UnknownFieldLabel = "Unknown Field"

// FormatCondition renders a condition as text, resolving the target element
// label from fields. The output is for people only and never evaluated.
func FormatCondition(condition model.Condition, fields []model.Element) string {
	label := UnknownFieldLabel
	for _, f := range fields {
		if f.ID == condition.TargetElementID {
			label = f.Label
			break
		}
	}

	value := toText(condition.Value)
	switch condition.Operator {
	case model.OpEquals:
		return fmt.Sprintf("%s = '%s'", label, value)
	case model.OpNotEquals:
		return fmt.Sprintf("%s != '%s'", label, value)
	case model.OpContains:
		return fmt.Sprintf("%s contains '%s'", label, value)
	case model.OpGreater:
		return fmt.Sprintf("%s > %s", label, value)
	case model.OpLess:
		return fmt.Sprintf("%s < %s", label, value)
	case model.OpIsEmpty:
		return label + " is empty"
	case model.OpIsNotEmpty:
		return label + " is not empty"
	default:
		return fmt.Sprintf("%s %s '%s'", label, condition.Operator, value)
	}
}

// FormatLogicGroup renders a group and its nested groups as text.
// Nested groups are parenthesized; nil and empty groups render as "Always".
func FormatLogicGroup(group *model.LogicGroup, fields []model.Element) string {
	if group == nil || group.IsEmpty() {
		return AlwaysText
	}

	parts := make([]string, 0, len(group.Conditions)+len(group.Groups))
	for _, condition := range group.Conditions {
		parts = append(parts, FormatCondition(condition, fields))
	}
	for i := range group.Groups {
		parts = append(parts, "("+FormatLogicGroup(&group.Groups[i], fields)+")")
	}

	joiner := " AND "
	if group.Operator == model.CombinatorOr {
		joiner = " OR "
	}
	return strings.Join(parts, joiner)
}
