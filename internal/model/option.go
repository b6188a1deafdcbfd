package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Option is a selectable choice. It is persisted either as a bare label
// string or as a {label, value} object and keeps track of which. Form data
// always compares against the value as text; a non-string value read from a
// document is kept verbatim so saving does not change its type.
type Option struct {
	label string
	value string
	pair  bool
	raw   json.RawMessage
}

// LabelOption returns a bare-label option whose value is its label
func LabelOption(label string) Option {
	return Option{label: label}
}

// PairOption returns an option with distinct label and value
func PairOption(label, value string) Option {
	return Option{label: label, value: value, pair: true}
}

// IsPair reports whether the option carries its own value
func (o Option) IsPair() bool {
	return o.pair
}

// OptionLabel returns the text shown for an option
func OptionLabel(o Option) string {
	return o.label
}

// OptionValue returns the value stored in form data when the option is picked
func OptionValue(o Option) string {
	if o.pair {
		return o.value
	}
	return o.label
}

// LabelFor maps a stored value back to its option label. Values without a
// matching option are returned unchanged.
func LabelFor(options []Option, value string) string {
	for _, opt := range options {
		if OptionValue(opt) == value {
			return OptionLabel(opt)
		}
	}
	return value
}

type optionPair struct {
	Label string          `json:"label"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON writes the option back in the shape it was read in
func (o Option) MarshalJSON() ([]byte, error) {
	if !o.pair {
		return json.Marshal(o.label)
	}
	if o.raw != nil {
		return json.Marshal(optionPair{Label: o.label, Value: o.raw})
	}
	value, err := json.Marshal(o.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(optionPair{Label: o.label, Value: value})
}

// UnmarshalJSON accepts a bare string or a {label, value} object
func (o *Option) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*o = LabelOption(label)
		return nil
	}

	var p optionPair
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("option must be a string or a label/value object: %w", err)
	}

	*o = PairOption(p.Label, p.Label)
	if len(p.Value) == 0 || string(p.Value) == "null" {
		return nil
	}

	var value any
	dec := json.NewDecoder(bytes.NewReader(p.Value))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return err
	}
	if text, ok := value.(string); ok {
		o.value = text
		return nil
	}
	o.value = fmt.Sprint(value)
	o.raw = append(json.RawMessage(nil), p.Value...)
	return nil
}
