package evaluation

import (
	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// FieldState is the evaluated state of one element
type FieldState struct {
	ID    string            `json:"id" yaml:"id"`
	Label string            `json:"label" yaml:"label"`
	Type  model.ElementType `json:"type" yaml:"type"`

	// Visible is true only when both the element and its section are visible
	Visible bool `json:"visible" yaml:"visible"`

	// Required is true only for visible, non-static elements in a standard
	// section whose requiredness resolves to true
	Required bool `json:"required" yaml:"required"`

	// Missing marks a required element without a value
	Missing bool `json:"missing" yaml:"missing"`

	Value           any    `json:"value,omitempty" yaml:"value,omitempty"`
	Display         string `json:"display,omitempty" yaml:"display,omitempty"`
	ValidationError string `json:"validationError,omitempty" yaml:"validationError,omitempty"`
}

// SectionState is the evaluated state of one section
type SectionState struct {
	ID      string               `json:"id" yaml:"id"`
	Title   string               `json:"title" yaml:"title"`
	Variant model.SectionVariant `json:"variant" yaml:"variant"`
	Visible bool                 `json:"visible" yaml:"visible"`
	Fields  []FieldState         `json:"fields" yaml:"fields"`
}

// StageState is the evaluated state of one stage
type StageState struct {
	ID       string                `json:"id" yaml:"id"`
	Title    string                `json:"title" yaml:"title"`
	Skill    logic.SkillResolution `json:"skill" yaml:"skill"`
	Sections []SectionState        `json:"sections" yaml:"sections"`

	// Complete is true when the stage has no missing or invalid fields
	Complete bool `json:"complete" yaml:"complete"`
}

// Report is the result of evaluating a process against one form data snapshot
type Report struct {
	ProcessID     string       `json:"processId" yaml:"processId"`
	ProcessName   string       `json:"processName" yaml:"processName"`
	Stages        []StageState `json:"stages" yaml:"stages"`
	Valid         bool         `json:"valid" yaml:"valid"`
	MissingFields []string     `json:"missingFields" yaml:"missingFields"`
	InvalidFields []string     `json:"invalidFields" yaml:"invalidFields"`
}

// Field finds a field state by element identifier
func (r *Report) Field(id string) (FieldState, bool) {
	for _, stage := range r.Stages {
		for _, section := range stage.Sections {
			for _, field := range section.Fields {
				if field.ID == id {
					return field, true
				}
			}
		}
	}
	return FieldState{}, false
}

// Stage finds a stage state by stage identifier
func (r *Report) Stage(id string) (StageState, bool) {
	for _, stage := range r.Stages {
		if stage.ID == id {
			return stage, true
		}
	}
	return StageState{}, false
}
