package logic

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// toText renders a form value the way every host displays and compares it.
// nil renders as the empty string and lists are joined with commas.
func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = toText(item)
		}
		return strings.Join(parts, ",")
	}

	if f, ok := numeric(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// decimalPattern matches plain decimal and exponent notation. ParseFloat also
// takes spellings such as "inf", "NaN", hex floats and underscores, which
// form input must not treat as numbers.
var decimalPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// toNumber coerces a form value to a float. Missing and non-numeric values
// become NaN so every ordered comparison against them is false.
func toNumber(v any) float64 {
	switch t := v.(type) {
	case nil:
		return math.NaN()
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(t)
		if !decimalPattern.MatchString(s) {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	}

	if f, ok := numeric(v); ok {
		return f
	}
	return math.NaN()
}

// numeric unwraps any Go integer or float kind
func numeric(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// looseEquals compares two values, coercing to text when their types differ.
// nil only equals nil.
func looseEquals(value, target any) bool {
	if value == nil || target == nil {
		return value == nil && target == nil
	}

	a, aNum := numeric(value)
	b, bNum := numeric(target)
	if aNum && bNum {
		return a == b
	}

	return toText(value) == toText(target)
}

// isBlank is the emptiness test shared by isEmpty and validation
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
