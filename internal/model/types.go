package model

// ElementType is the kind of a form element
type ElementType string

const (
	ElementText        ElementType = "text"
	ElementEmail       ElementType = "email"
	ElementTextarea    ElementType = "textarea"
	ElementNumber      ElementType = "number"
	ElementDate        ElementType = "date"
	ElementDateTime    ElementType = "datetime"
	ElementCurrency    ElementType = "currency"
	ElementSelect      ElementType = "select"
	ElementMultiSelect ElementType = "multiselect"
	ElementRadio       ElementType = "radio"
	ElementCheckbox    ElementType = "checkbox"
	ElementStatic      ElementType = "static"
	ElementRepeater    ElementType = "repeater"
)

// HasOptions reports whether the element kind renders a choice list
func (t ElementType) HasOptions() bool {
	return t == ElementSelect || t == ElementMultiSelect || t == ElementRadio
}

// SectionVariant tags how a section is rendered
type SectionVariant string

const (
	VariantStandard SectionVariant = "standard"
	VariantSummary  SectionVariant = "summary"
	VariantWarning  SectionVariant = "warning"
	VariantInfo     SectionVariant = "info"
)

// CollectsInput reports whether elements of a section take part in
// mandatory-field validation. An empty variant counts as standard.
func (v SectionVariant) CollectsInput() bool {
	return v == "" || v == VariantStandard
}

// StaticSource selects what a static element displays
type StaticSource string

const (
	StaticSourceText  StaticSource = "text"
	StaticSourceField StaticSource = "field"
)

// Operator is a condition comparison operator
type Operator string

const (
	OpEquals     Operator = "equals"
	OpNotEquals  Operator = "notEquals"
	OpContains   Operator = "contains"
	OpGreater    Operator = "greaterThan"
	OpLess       Operator = "lessThan"
	OpIsEmpty    Operator = "isEmpty"
	OpIsNotEmpty Operator = "isNotEmpty"
)

// Combinator joins the results of a logic group
type Combinator string

const (
	CombinatorAnd Combinator = "AND"
	CombinatorOr  Combinator = "OR"
)

// ValidationType names a built-in format check
type ValidationType string

const (
	ValidationNone       ValidationType = "none"
	ValidationEmail      ValidationType = "email"
	ValidationPhoneUK    ValidationType = "phone_uk"
	ValidationNinoUK     ValidationType = "nino_uk"
	ValidationDateFuture ValidationType = "date_future"
	ValidationDatePast   ValidationType = "date_past"
	ValidationCustom     ValidationType = "custom"
)

// ValidationTypes lists the catalog in display order
var ValidationTypes = []ValidationType{
	ValidationNone,
	ValidationEmail,
	ValidationPhoneUK,
	ValidationNinoUK,
	ValidationDateFuture,
	ValidationDatePast,
	ValidationCustom,
}
