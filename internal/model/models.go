package model

// CurrentSchemaVersion is the document shape produced by the upgrade pass.
// Version 1 documents carry flat visibilityConditions/requiredConditions arrays.
const CurrentSchemaVersion = 2

// Process is the root document of a multi-step form
type Process struct {
	// Unique identifier of the process
	ID string `json:"id"`

	// Display name of the process
	Name string `json:"name"`

	// Optional free-text description
	Description string `json:"description,omitempty"`

	// Shape version of the persisted document
	SchemaVersion int `json:"schemaVersion,omitempty"`

	// Ordered list of stages
	Stages []Stage `json:"stages"`
}

// Stage represents one step of a multi-step process
type Stage struct {
	// Unique identifier of the stage (required)
	ID string `json:"id"`

	// Display title of the stage
	Title string `json:"title"`

	// Ordered list of sections rendered in this stage
	Sections []Section `json:"sections"`

	// Routing label used when no skill rule matches
	DefaultSkill string `json:"defaultSkill,omitempty"`

	// Ordered skill rules, first match wins
	SkillLogic []SkillRule `json:"skillLogic"`
}

// SkillRule routes a stage to a skill when its logic holds
type SkillRule struct {
	ID            string      `json:"id,omitempty"`
	Logic         *LogicGroup `json:"logic,omitempty"`
	RequiredSkill string      `json:"requiredSkill"`
}

// Section is a named, ordered group of elements within a stage
type Section struct {
	// Unique identifier of the section (required)
	ID string `json:"id"`

	// Display title of the section
	Title string `json:"title"`

	// Number of visual columns (1, 2 or 3); presentation only
	Layout int `json:"layout"`

	// Rendering variant, also decides mandatory-field participation
	Variant SectionVariant `json:"variant,omitempty"`

	// Ordered list of elements
	Elements []Element `json:"elements"`

	// Optional visibility logic
	Visibility *LogicGroup `json:"visibility,omitempty"`

	// Unconditional hide, dominates Visibility
	Hidden bool `json:"hidden,omitempty"`
}

// Element is an atomic data-capture unit (a form field)
type Element struct {
	// Unique identifier, also the form data key (required)
	ID string `json:"id"`

	// Display label
	Label string `json:"label"`

	// Kind of element
	Type ElementType `json:"type"`

	// Selectable options for select, multiselect and radio elements
	Options []Option `json:"options,omitempty"`

	// Optional initial value
	DefaultValue any `json:"defaultValue,omitempty"`

	// Static requiredness flag, dominates RequiredLogic
	Required bool `json:"required,omitempty"`

	// Conditional requiredness
	RequiredLogic *LogicGroup `json:"requiredLogic,omitempty"`

	// Optional visibility logic
	Visibility *LogicGroup `json:"visibility,omitempty"`

	// Unconditional hide, dominates Visibility
	Hidden bool `json:"hidden,omitempty"`

	// Optional format validation
	Validation *ValidationRule `json:"validation,omitempty"`

	// Column definitions for repeater elements
	Columns []Column `json:"columns,omitempty"`

	// Source mode for static elements
	StaticSource StaticSource `json:"staticSource,omitempty"`

	// Literal text for static elements in text mode
	StaticText string `json:"staticText,omitempty"`

	// Reflected element for static elements in field mode
	StaticSourceFieldID string `json:"staticSourceFieldId,omitempty"`
}

// Column is one column of a repeater element
type Column struct {
	ID      string      `json:"id"`
	Label   string      `json:"label"`
	Type    ElementType `json:"type"`
	Options []Option    `json:"options,omitempty"`
}

// ValidationRule attaches a format check to an element.
// CustomDescription documents a custom rule for authors and is never enforced.
type ValidationRule struct {
	Type              ValidationType `json:"type"`
	CustomDescription string         `json:"customDescription,omitempty"`
}

// Condition is one atomic comparison between a referenced element value and a literal
type Condition struct {
	ID              string   `json:"id,omitempty"`
	TargetElementID string   `json:"targetElementId"`
	Operator        Operator `json:"operator"`
	Value           any      `json:"value,omitempty"`
}

// LogicGroup combines conditions and nested groups under AND/OR
type LogicGroup struct {
	ID         string       `json:"id"`
	Operator   Combinator   `json:"operator"`
	Conditions []Condition  `json:"conditions"`
	Groups     []LogicGroup `json:"groups"`
}

// FormData is a snapshot of runtime values keyed by element identifier.
// Values are strings, numbers, booleans, []string for multi-select and
// row objects for repeaters.
type FormData map[string]any
