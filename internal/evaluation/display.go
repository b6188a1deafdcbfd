package evaluation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// displayHandler renders the text a static element shows
type displayHandler func(process *model.Process, element *model.Element, data model.FormData) string

var displayHandlers = map[model.StaticSource]displayHandler{
	model.StaticSourceText:  displayStaticText,
	model.StaticSourceField: displayReflectedField,
}

// staticDisplay renders a static element. Elements without a source mode
// show their literal text.
func staticDisplay(process *model.Process, element *model.Element, data model.FormData) string {
	handler, ok := displayHandlers[element.StaticSource]
	if !ok {
		handler = displayStaticText
	}
	return handler(process, element, data)
}

func displayStaticText(_ *model.Process, element *model.Element, _ model.FormData) string {
	return element.StaticText
}

// displayReflectedField shows the current value of another element, mapping
// option values to labels and joining multiple selections with ", ".
func displayReflectedField(process *model.Process, element *model.Element, data model.FormData) string {
	var options []model.Option
	if source, ok := process.FindElement(element.StaticSourceFieldID); ok {
		options = source.Options
	}

	switch v := data[element.StaticSourceFieldID].(type) {
	case nil:
		return ""
	case []any:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			labels = append(labels, model.LabelFor(options, displayText(item)))
		}
		return strings.Join(labels, ", ")
	case []string:
		labels := make([]string, 0, len(v))
		for _, item := range v {
			labels = append(labels, model.LabelFor(options, item))
		}
		return strings.Join(labels, ", ")
	default:
		return model.LabelFor(options, displayText(v))
	}
}

func displayText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
