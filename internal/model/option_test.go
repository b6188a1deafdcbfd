package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionDecodesBothShapes(t *testing.T) {
	var opts []Option
	err := json.Unmarshal([]byte(`["Single", {"label": "Married", "value": "M"}, {"label": "Other"}, {"label": "Ten", "value": 10}]`), &opts)
	require.NoError(t, err)
	require.Len(t, opts, 4)

	assert.False(t, opts[0].IsPair())
	assert.Equal(t, "Single", OptionLabel(opts[0]))
	assert.Equal(t, "Single", OptionValue(opts[0]))

	assert.True(t, opts[1].IsPair())
	assert.Equal(t, "Married", OptionLabel(opts[1]))
	assert.Equal(t, "M", OptionValue(opts[1]))

	assert.Equal(t, "Other", OptionValue(opts[2]))
	assert.Equal(t, "10", OptionValue(opts[3]))
}

func TestOptionEncodesOriginalShape(t *testing.T) {
	data, err := json.Marshal([]Option{LabelOption("Yes"), PairOption("No", "n")})
	require.NoError(t, err)
	assert.JSONEq(t, `["Yes", {"label": "No", "value": "n"}]`, string(data))
}

func TestOptionKeepsNonStringValues(t *testing.T) {
	input := `[{"label": "Ten", "value": 10}, {"label": "Big", "value": 12345678901234567890}, {"label": "Yes", "value": true}, {"label": "M", "value": "M"}]`

	var opts []Option
	require.NoError(t, json.Unmarshal([]byte(input), &opts))
	assert.Equal(t, "10", OptionValue(opts[0]))
	assert.Equal(t, "12345678901234567890", OptionValue(opts[1]))
	assert.Equal(t, "true", OptionValue(opts[2]))
	assert.Equal(t, "Ten", LabelFor(opts, "10"))

	data, err := json.Marshal(opts)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(data))
	assert.Contains(t, string(data), `"value":10}`)
}

func TestOptionRejectsOtherShapes(t *testing.T) {
	var opt Option
	assert.Error(t, json.Unmarshal([]byte(`42`), &opt))
}

func TestLabelFor(t *testing.T) {
	opts := []Option{PairOption("Married", "M"), LabelOption("Single")}
	assert.Equal(t, "Married", LabelFor(opts, "M"))
	assert.Equal(t, "Single", LabelFor(opts, "Single"))
	assert.Equal(t, "X", LabelFor(opts, "X"))
}

func TestProcessLookups(t *testing.T) {
	p := &Process{Stages: []Stage{
		{ID: "one", Sections: []Section{{Elements: []Element{{ID: "a"}, {ID: "b"}}}}},
		{ID: "two", Sections: []Section{{Elements: []Element{{ID: "c"}}}, {Elements: nil}}},
	}}

	all := p.AllElements()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[2].ID)

	el, ok := p.FindElement("b")
	require.True(t, ok)
	el.Label = "changed"
	assert.Equal(t, "changed", p.Stages[0].Sections[0].Elements[1].Label)

	_, ok = p.FindElement("zzz")
	assert.False(t, ok)

	stage, ok := p.FindStage("two")
	require.True(t, ok)
	assert.Equal(t, "two", stage.ID)
}

func TestSectionVariantCollectsInput(t *testing.T) {
	assert.True(t, SectionVariant("").CollectsInput())
	assert.True(t, VariantStandard.CollectsInput())
	assert.False(t, VariantSummary.CollectsInput())
	assert.False(t, VariantWarning.CollectsInput())
	assert.False(t, VariantInfo.CollectsInput())
}
