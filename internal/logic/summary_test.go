package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

var summaryFields = []model.Element{
	{ID: "maritalStatus", Label: "Marital Status"},
	{ID: "age", Label: "Age"},
	{ID: "notes", Label: "Notes"},
}

func TestFormatCondition(t *testing.T) {
	tests := []struct {
		c    model.Condition
		want string
	}{
		{cond("maritalStatus", model.OpEquals, "Married"), "Marital Status = 'Married'"},
		{cond("maritalStatus", model.OpNotEquals, "Single"), "Marital Status != 'Single'"},
		{cond("notes", model.OpContains, "urgent"), "Notes contains 'urgent'"},
		{cond("age", model.OpGreater, float64(75)), "Age > 75"},
		{cond("age", model.OpLess, 18), "Age < 18"},
		{cond("notes", model.OpIsEmpty, nil), "Notes is empty"},
		{cond("notes", model.OpIsNotEmpty, nil), "Notes is not empty"},
		{cond("ghost", model.OpEquals, true), "Unknown Field = 'true'"},
		{cond("age", model.Operator("between"), "1"), "Age between '1'"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCondition(tt.c, summaryFields))
		})
	}
}

func TestFormatLogicGroup(t *testing.T) {
	assert.Equal(t, AlwaysText, FormatLogicGroup(nil, summaryFields))
	assert.Equal(t, AlwaysText, FormatLogicGroup(&model.LogicGroup{Operator: model.CombinatorOr}, summaryFields))

	group := &model.LogicGroup{
		Operator:   model.CombinatorOr,
		Conditions: []model.Condition{cond("notes", model.OpIsNotEmpty, nil)},
		Groups: []model.LogicGroup{{
			Operator: model.CombinatorAnd,
			Conditions: []model.Condition{
				cond("maritalStatus", model.OpEquals, "Married"),
				cond("age", model.OpGreater, 30),
			},
		}},
	}

	assert.Equal(t,
		"Notes is not empty OR (Marital Status = 'Married' AND Age > 30)",
		FormatLogicGroup(group, summaryFields))
}

func TestFormatLogicGroupDefaultsToAnd(t *testing.T) {
	group := &model.LogicGroup{Conditions: []model.Condition{
		cond("age", model.OpGreater, 1),
		cond("age", model.OpLess, 9),
	}}

	assert.Equal(t, "Unknown Field > 1 AND Unknown Field < 9", FormatLogicGroup(group, nil))
	assert.Equal(t, "Age > 1 AND Age < 9", FormatLogicGroup(group, summaryFields))
}
