package document

import (
	"fmt"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

var knownOperators = map[model.Operator]bool{
	model.OpEquals:     true,
	model.OpNotEquals:  true,
	model.OpContains:   true,
	model.OpGreater:    true,
	model.OpLess:       true,
	model.OpIsEmpty:    true,
	model.OpIsNotEmpty: true,
}

// Check reports authoring problems in a sanitized process: duplicate
// identifiers, conditions pointing at unknown elements, unknown operators
// and validation types. The findings are advisory; the engine evaluates
// such documents with its safe defaults.
func Check(process *model.Process) []error {
	var errs []error

	elementIDs := make(map[string]bool)
	sectionIDs := make(map[string]bool)
	stageIDs := make(map[string]bool)

	for _, stage := range process.Stages {
		if stageIDs[stage.ID] {
			errs = append(errs, fmt.Errorf("stage %s: duplicate identifier", stage.ID))
		}
		stageIDs[stage.ID] = true

		for _, section := range stage.Sections {
			if sectionIDs[section.ID] {
				errs = append(errs, fmt.Errorf("section %s: duplicate identifier", section.ID))
			}
			sectionIDs[section.ID] = true

			for _, element := range section.Elements {
				if elementIDs[element.ID] {
					errs = append(errs, fmt.Errorf("element %s: duplicate identifier", element.ID))
				}
				elementIDs[element.ID] = true
			}
		}
	}

	for _, stage := range process.Stages {
		for i, rule := range stage.SkillLogic {
			owner := fmt.Sprintf("stage %s skill rule %d", stage.ID, i+1)
			errs = append(errs, checkGroup(owner, rule.Logic, elementIDs)...)
			if rule.RequiredSkill == "" {
				errs = append(errs, fmt.Errorf("%s: requiredSkill is empty", owner))
			}
		}

		for _, section := range stage.Sections {
			errs = append(errs, checkGroup("section "+section.ID+" visibility", section.Visibility, elementIDs)...)

			for _, element := range section.Elements {
				owner := "element " + element.ID
				errs = append(errs, checkGroup(owner+" visibility", element.Visibility, elementIDs)...)
				errs = append(errs, checkGroup(owner+" requiredLogic", element.RequiredLogic, elementIDs)...)

				if element.Validation != nil && !isKnownValidation(element.Validation.Type) {
					errs = append(errs, fmt.Errorf("%s: unknown validation type '%s'", owner, element.Validation.Type))
				}

				if element.Type == model.ElementStatic && element.StaticSource == model.StaticSourceField &&
					!elementIDs[element.StaticSourceFieldID] {
					errs = append(errs, fmt.Errorf("%s: reflects unknown element '%s'", owner, element.StaticSourceFieldID))
				}
			}
		}
	}

	return errs
}

func checkGroup(owner string, group *model.LogicGroup, elementIDs map[string]bool) []error {
	if group == nil {
		return nil
	}

	var errs []error
	if group.Operator != model.CombinatorAnd && group.Operator != model.CombinatorOr {
		errs = append(errs, fmt.Errorf("%s: invalid combinator '%s'", owner, group.Operator))
	}

	for _, condition := range group.Conditions {
		if !elementIDs[condition.TargetElementID] {
			errs = append(errs, fmt.Errorf("%s: condition references unknown element '%s'", owner, condition.TargetElementID))
		}
		if !knownOperators[condition.Operator] {
			errs = append(errs, fmt.Errorf("%s: unknown operator '%s'", owner, condition.Operator))
		}
	}

	for i := range group.Groups {
		errs = append(errs, checkGroup(owner, &group.Groups[i], elementIDs)...)
	}
	return errs
}

func isKnownValidation(kind model.ValidationType) bool {
	for _, known := range model.ValidationTypes {
		if kind == known {
			return true
		}
	}
	return false
}
