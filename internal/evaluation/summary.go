package evaluation

import (
	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// RuleKind says what a summarized rule controls
type RuleKind string

const (
	RuleVisibility RuleKind = "visibility"
	RuleRequired   RuleKind = "required"
	RuleSkill      RuleKind = "skill"
)

// HiddenText renders the visibility of an unconditionally hidden entity
const HiddenText = "Never (hidden)"

// Rule is one piece of logic rendered for people
type Rule struct {
	StageID string   `json:"stageId" yaml:"stageId"`
	OwnerID string   `json:"ownerId" yaml:"ownerId"`
	Owner   string   `json:"owner" yaml:"owner"`
	Kind    RuleKind `json:"kind" yaml:"kind"`
	Text    string   `json:"text" yaml:"text"`
	Skill   string   `json:"skill,omitempty" yaml:"skill,omitempty"`
}

// PatternSummary is the validation pattern text of one element
type PatternSummary struct {
	FieldID string               `json:"fieldId" yaml:"fieldId"`
	Field   string               `json:"field" yaml:"field"`
	Type    model.ValidationType `json:"type" yaml:"type"`
	Pattern string               `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Note    string               `json:"note,omitempty" yaml:"note,omitempty"`
}

// Summary lists every rule in a process as text
type Summary struct {
	ProcessID string           `json:"processId" yaml:"processId"`
	Name      string           `json:"name" yaml:"name"`
	Rules     []Rule           `json:"rules" yaml:"rules"`
	Patterns  []PatternSummary `json:"patterns" yaml:"patterns"`
}

// Summarize renders the visibility, requiredness and skill routing logic of
// a process, plus the validation patterns its elements use. Only conditional
// or flagged logic is listed; always-visible, optional elements add nothing.
func Summarize(process *model.Process) *Summary {
	fields := process.AllElements()
	summary := &Summary{
		ProcessID: process.ID,
		Name:      process.Name,
		Rules:     []Rule{},
		Patterns:  []PatternSummary{},
	}

	for _, stage := range process.Stages {
		for _, rule := range stage.SkillLogic {
			summary.Rules = append(summary.Rules, Rule{
				StageID: stage.ID,
				OwnerID: stage.ID,
				Owner:   stage.Title,
				Kind:    RuleSkill,
				Text:    logic.FormatLogicGroup(rule.Logic, fields),
				Skill:   rule.RequiredSkill,
			})
		}

		for _, section := range stage.Sections {
			if text, ok := visibilityText(section.Hidden, section.Visibility, fields); ok {
				summary.Rules = append(summary.Rules, Rule{
					StageID: stage.ID, OwnerID: section.ID, Owner: section.Title, Kind: RuleVisibility, Text: text,
				})
			}

			for _, element := range section.Elements {
				if text, ok := visibilityText(element.Hidden, element.Visibility, fields); ok {
					summary.Rules = append(summary.Rules, Rule{
						StageID: stage.ID, OwnerID: element.ID, Owner: element.Label, Kind: RuleVisibility, Text: text,
					})
				}

				switch {
				case element.Required:
					summary.Rules = append(summary.Rules, Rule{
						StageID: stage.ID, OwnerID: element.ID, Owner: element.Label, Kind: RuleRequired, Text: logic.AlwaysText,
					})
				case element.RequiredLogic != nil:
					summary.Rules = append(summary.Rules, Rule{
						StageID: stage.ID, OwnerID: element.ID, Owner: element.Label, Kind: RuleRequired,
						Text: logic.FormatLogicGroup(element.RequiredLogic, fields),
					})
				}

				if element.Validation != nil && element.Validation.Type != model.ValidationNone {
					pattern, _ := logic.ValidationPattern(element.Validation.Type)
					summary.Patterns = append(summary.Patterns, PatternSummary{
						FieldID: element.ID,
						Field:   element.Label,
						Type:    element.Validation.Type,
						Pattern: pattern,
						Note:    element.Validation.CustomDescription,
					})
				}
			}
		}
	}
	return summary
}

func visibilityText(hidden bool, group *model.LogicGroup, fields []model.Element) (string, bool) {
	if hidden {
		return HiddenText, true
	}
	if group == nil || group.IsEmpty() {
		return "", false
	}
	return logic.FormatLogicGroup(group, fields), true
}
