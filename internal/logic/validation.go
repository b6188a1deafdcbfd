package logic

import (
	"regexp"
	"strings"
	"time"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// Pattern text shown in generated rule documentation. The enforcement regexes
// are compiled from these same strings.
const (
	emailPattern   = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	phoneUKPattern = `^(?:\+44|0)\d{9,10}$`
	ninoUKPattern  = `(?i)^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z]\d{6}[A-D]$`

	dateFuturePattern = "date > now"
	datePastPattern   = "date < now"
)

var (
	emailRegex   = regexp.MustCompile(emailPattern)
	phoneUKRegex = regexp.MustCompile(phoneUKPattern)
	ninoUKRegex  = regexp.MustCompile(ninoUKPattern)
)

// Validation failure messages
const (
	MsgInvalidEmail   = "Invalid email format"
	MsgInvalidPhoneUK = "Invalid UK phone number"
	MsgInvalidNinoUK  = "Invalid National Insurance Number"
	MsgDateFuture     = "Date must be in the future"
	MsgDatePast       = "Date must be in the past"
)

// zonedLayout carries its own offset; the rest are read as wall-clock time in
// the validator's location, the way a browser reads a date input.
const zonedLayout = time.RFC3339Nano

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ValidationError is a failed format check on a populated value
type ValidationError struct {
	FieldID string
	Type    model.ValidationType
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator runs the built-in format checks. Now supplies the reference time
// for date checks. Location is the zone for dates written without an offset,
// such as "2006-01-02T15:04"; nil means time.Local.
type Validator struct {
	Now      func() time.Time
	Location *time.Location
}

var defaultValidator = Validator{Now: time.Now}

// ValidateValue checks value against the element's validation rule using the
// wall clock. It returns nil when the value passes or is empty.
func ValidateValue(field *model.Element, value any) error {
	return defaultValidator.ValidateValue(field, value)
}

// ValidateValue checks value against the element's validation rule.
// Empty values always pass; requiredness is not this check's concern.
// The custom type is documentation for authors and is never enforced.
// Unknown types pass.
func (v Validator) ValidateValue(field *model.Element, value any) error {
	if field == nil {
		panic("logic: ValidateValue called with nil element")
	}
	if field.Validation == nil || isBlank(value) {
		return nil
	}

	kind := field.Validation.Type
	fail := func(msg string) error {
		return &ValidationError{FieldID: field.ID, Type: kind, Message: msg}
	}

	switch kind {
	case model.ValidationEmail:
		if !emailRegex.MatchString(toText(value)) {
			return fail(MsgInvalidEmail)
		}
	case model.ValidationPhoneUK:
		if !phoneUKRegex.MatchString(stripSpace(toText(value))) {
			return fail(MsgInvalidPhoneUK)
		}
	case model.ValidationNinoUK:
		if !ninoUKRegex.MatchString(stripSpace(toText(value))) {
			return fail(MsgInvalidNinoUK)
		}
	case model.ValidationDateFuture:
		t, ok := parseDate(value, v.location())
		if !ok || !t.After(v.now()) {
			return fail(MsgDateFuture)
		}
	case model.ValidationDatePast:
		t, ok := parseDate(value, v.location())
		if !ok || !t.Before(v.now()) {
			return fail(MsgDatePast)
		}
	}
	return nil
}

func (v Validator) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

func (v Validator) location() *time.Location {
	if v.Location == nil {
		return time.Local
	}
	return v.Location
}

// ValidationPattern returns the pattern text for a validation type, for
// display in generated rule documentation. none and custom have no pattern.
func ValidationPattern(kind model.ValidationType) (string, bool) {
	switch kind {
	case model.ValidationEmail:
		return emailPattern, true
	case model.ValidationPhoneUK:
		return phoneUKPattern, true
	case model.ValidationNinoUK:
		return ninoUKPattern, true
	case model.ValidationDateFuture:
		return dateFuturePattern, true
	case model.ValidationDatePast:
		return datePastPattern, true
	}
	return "", false
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// parseDate accepts ISO dates and date-times, time.Time values and numeric
// epoch milliseconds. Dates without an offset are read in loc.
func parseDate(value any, loc *time.Location) (time.Time, bool) {
	switch t := value.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if parsed, err := time.Parse(zonedLayout, s); err == nil {
			return parsed, true
		}
		for _, layout := range localLayouts {
			if parsed, err := time.ParseInLocation(layout, s, loc); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	}

	if ms, ok := numeric(value); ok {
		return time.UnixMilli(int64(ms)), true
	}
	return time.Time{}, false
}
