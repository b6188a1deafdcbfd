package logic

import (
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// UnassignedSkill is returned when no skill rule matches and the stage has
// no default skill.
const UnassignedSkill = "Unassigned"

// Conditional is anything that can be shown or hidden: elements and sections
type Conditional interface {
	IsHidden() bool
	VisibilityLogic() *model.LogicGroup
}

// IsVisible decides whether an element or section is shown. The hidden flag
// wins over any visibility logic.
func IsVisible(entity Conditional, data model.FormData) bool {
	if entity == nil {
		panic("logic: IsVisible called with nil entity")
	}
	if entity.IsHidden() {
		return false
	}
	return EvaluateLogicGroup(entity.VisibilityLogic(), data)
}

// IsRequired decides whether an element is mandatory. The static flag wins;
// required logic can only add requiredness.
func IsRequired(field *model.Element, data model.FormData) bool {
	if field == nil {
		panic("logic: IsRequired called with nil element")
	}
	if field.Required {
		return true
	}
	if field.RequiredLogic == nil {
		return false
	}
	return EvaluateLogicGroup(field.RequiredLogic, data)
}

// SkillResolution is the routing outcome for a stage.
// MatchedRuleIndex is nil when the stage fell back to its default.
type SkillResolution struct {
	Skill            string `json:"skill" yaml:"skill"`
	MatchedRuleIndex *int   `json:"matchedRuleIndex" yaml:"matchedRuleIndex"`
}

// Matched reports whether a skill rule (not the default) decided the skill
func (r SkillResolution) Matched() bool {
	return r.MatchedRuleIndex != nil
}

// ResolveSkill returns the skill of the first rule whose logic holds, in
// authored order, falling back to the stage default.
func ResolveSkill(stage *model.Stage, data model.FormData) SkillResolution {
	if stage == nil {
		panic("logic: ResolveSkill called with nil stage")
	}

	for i, rule := range stage.SkillLogic {
		if EvaluateLogicGroup(rule.Logic, data) {
			index := i
			return SkillResolution{Skill: rule.RequiredSkill, MatchedRuleIndex: &index}
		}
	}

	if stage.DefaultSkill == "" {
		return SkillResolution{Skill: UnassignedSkill}
	}
	return SkillResolution{Skill: stage.DefaultSkill}
}
