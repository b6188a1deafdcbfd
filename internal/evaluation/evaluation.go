// Package evaluation walks a whole process document against a form data
// snapshot and reports what a person filling it in would see: which sections
// and fields are shown, which are mandatory and missing, which values fail
// their format check, and which skill each stage routes to.
package evaluation

import (
	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// Evaluator builds reports. The zero value validates against the wall clock.
type Evaluator struct {
	Validator logic.Validator
}

// NewEvaluator returns an evaluator using the given validator
func NewEvaluator(validator logic.Validator) *Evaluator {
	return &Evaluator{Validator: validator}
}

// Evaluate builds a report with a wall clock evaluator
func Evaluate(process *model.Process, data model.FormData) *Report {
	return (&Evaluator{}).Evaluate(process, data)
}

// Evaluate builds the report for one snapshot. Neither the process nor the
// data is modified.
func (e *Evaluator) Evaluate(process *model.Process, data model.FormData) *Report {
	if data == nil {
		data = model.FormData{}
	}

	report := &Report{
		ProcessID:     process.ID,
		ProcessName:   process.Name,
		Stages:        make([]StageState, 0, len(process.Stages)),
		MissingFields: []string{},
		InvalidFields: []string{},
	}

	for si := range process.Stages {
		stage := &process.Stages[si]
		state := StageState{
			ID:       stage.ID,
			Title:    stage.Title,
			Skill:    logic.ResolveSkill(stage, data),
			Sections: make([]SectionState, 0, len(stage.Sections)),
			Complete: true,
		}

		for ci := range stage.Sections {
			section := e.evaluateSection(process, &stage.Sections[ci], data)
			for _, field := range section.Fields {
				if field.Missing {
					report.MissingFields = append(report.MissingFields, field.ID)
					state.Complete = false
				}
				if field.ValidationError != "" {
					report.InvalidFields = append(report.InvalidFields, field.ID)
					state.Complete = false
				}
			}
			state.Sections = append(state.Sections, section)
		}

		report.Stages = append(report.Stages, state)
	}

	report.Valid = len(report.MissingFields) == 0 && len(report.InvalidFields) == 0
	return report
}

func (e *Evaluator) evaluateSection(process *model.Process, section *model.Section, data model.FormData) SectionState {
	state := SectionState{
		ID:      section.ID,
		Title:   section.Title,
		Variant: section.Variant,
		Visible: logic.IsVisible(section, data),
		Fields:  make([]FieldState, 0, len(section.Elements)),
	}

	for ei := range section.Elements {
		element := &section.Elements[ei]
		value := data[element.ID]

		field := FieldState{
			ID:      element.ID,
			Label:   element.Label,
			Type:    element.Type,
			Visible: state.Visible && logic.IsVisible(element, data),
			Value:   value,
		}

		if element.Type == model.ElementStatic {
			field.Value = nil
			field.Display = staticDisplay(process, element, data)
		}

		field.Required = field.Visible &&
			element.Type != model.ElementStatic &&
			section.Variant.CollectsInput() &&
			logic.IsRequired(element, data)
		field.Missing = field.Required && isMissing(element, value)

		if field.Visible {
			if err := e.Validator.ValidateValue(element, value); err != nil {
				field.ValidationError = err.Error()
			}
		}

		state.Fields = append(state.Fields, field)
	}
	return state
}

// isMissing reports whether a required element lacks a value. An unticked
// checkbox counts as missing so required checkboxes act as consents.
func isMissing(element *model.Element, value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case bool:
		return element.Type == model.ElementCheckbox && !v
	}
	return false
}

// InitialFormData seeds a snapshot from element defaults. Checkboxes without
// a default start unticked. Static elements hold no data.
func InitialFormData(process *model.Process) model.FormData {
	data := model.FormData{}
	for _, element := range process.AllElements() {
		switch {
		case element.Type == model.ElementStatic:
			continue
		case element.DefaultValue != nil:
			data[element.ID] = element.DefaultValue
		case element.Type == model.ElementCheckbox:
			data[element.ID] = false
		}
	}
	return data
}
