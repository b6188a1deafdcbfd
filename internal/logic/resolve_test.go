package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-form-composer/internal/model"
)

func alwaysTrue() *model.LogicGroup {
	return &model.LogicGroup{
		Operator:   model.CombinatorAnd,
		Conditions: []model.Condition{cond("never-set", model.OpIsEmpty, nil)},
	}
}

func alwaysFalse() *model.LogicGroup {
	return &model.LogicGroup{
		Operator:   model.CombinatorAnd,
		Conditions: []model.Condition{cond("never-set", model.OpIsNotEmpty, nil)},
	}
}

func TestIsVisible(t *testing.T) {
	t.Run("no visibility logic", func(t *testing.T) {
		assert.True(t, IsVisible(&model.Element{ID: "f"}, model.FormData{}))
		assert.True(t, IsVisible(&model.Section{ID: "s"}, model.FormData{}))
	})

	t.Run("empty visibility group", func(t *testing.T) {
		field := &model.Element{ID: "f", Visibility: &model.LogicGroup{Operator: model.CombinatorOr}}
		assert.True(t, IsVisible(field, model.FormData{}))
	})

	t.Run("hidden dominates logic", func(t *testing.T) {
		field := &model.Element{ID: "f", Hidden: true, Visibility: alwaysTrue()}
		section := &model.Section{ID: "s", Hidden: true, Visibility: alwaysTrue()}
		assert.False(t, IsVisible(field, model.FormData{}))
		assert.False(t, IsVisible(section, model.FormData{}))
	})

	t.Run("hidden without logic", func(t *testing.T) {
		assert.False(t, IsVisible(&model.Element{Hidden: true}, model.FormData{}))
	})

	t.Run("logic decides", func(t *testing.T) {
		assert.False(t, IsVisible(&model.Section{Visibility: alwaysFalse()}, model.FormData{}))
	})

	t.Run("nil entity panics", func(t *testing.T) {
		assert.Panics(t, func() { IsVisible(nil, model.FormData{}) })
	})
}

func TestIsVisibleSpouseScenario(t *testing.T) {
	spouse := &model.Element{
		ID:    "spouseName",
		Label: "Spouse name",
		Type:  model.ElementText,
		Visibility: &model.LogicGroup{
			Operator:   model.CombinatorAnd,
			Conditions: []model.Condition{cond("maritalStatus", model.OpEquals, "Married")},
		},
	}

	assert.False(t, IsVisible(spouse, model.FormData{"maritalStatus": "Single"}))
	assert.True(t, IsVisible(spouse, model.FormData{"maritalStatus": "Married"}))
	assert.False(t, IsVisible(spouse, model.FormData{}))
}

func TestIsRequired(t *testing.T) {
	tests := []struct {
		name  string
		field *model.Element
		want  bool
	}{
		{"not required", &model.Element{}, false},
		{"static required", &model.Element{Required: true}, true},
		{"static required dominates false logic", &model.Element{Required: true, RequiredLogic: alwaysFalse()}, true},
		{"logic adds requiredness", &model.Element{RequiredLogic: alwaysTrue()}, true},
		{"false logic", &model.Element{RequiredLogic: alwaysFalse()}, false},
		{"empty logic group", &model.Element{RequiredLogic: &model.LogicGroup{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRequired(tt.field, model.FormData{}))
		})
	}

	assert.Panics(t, func() { IsRequired(nil, model.FormData{}) })
}

func TestResolveSkillFirstMatchWins(t *testing.T) {
	stage := &model.Stage{
		ID:           "review",
		DefaultSkill: "General",
		SkillLogic: []model.SkillRule{
			{Logic: alwaysFalse(), RequiredSkill: "X"},
			{Logic: alwaysTrue(), RequiredSkill: "Y"},
			{Logic: alwaysTrue(), RequiredSkill: "Z"},
		},
	}

	got := ResolveSkill(stage, model.FormData{})
	assert.Equal(t, "Y", got.Skill)
	require.True(t, got.Matched())
	assert.Equal(t, 1, *got.MatchedRuleIndex)
}

func TestResolveSkillIntakeScenario(t *testing.T) {
	stage := &model.Stage{
		ID:           "intake",
		DefaultSkill: "Customer Service",
		SkillLogic: []model.SkillRule{{
			Logic: &model.LogicGroup{
				Operator:   model.CombinatorAnd,
				Conditions: []model.Condition{cond("age", model.OpGreater, float64(75))},
			},
			RequiredSkill: "Senior Underwriter",
		}},
	}

	senior := ResolveSkill(stage, model.FormData{"age": float64(80)})
	assert.Equal(t, "Senior Underwriter", senior.Skill)
	require.NotNil(t, senior.MatchedRuleIndex)
	assert.Equal(t, 0, *senior.MatchedRuleIndex)

	standard := ResolveSkill(stage, model.FormData{"age": float64(40)})
	assert.Equal(t, "Customer Service", standard.Skill)
	assert.Nil(t, standard.MatchedRuleIndex)
}

func TestResolveSkillFallbacks(t *testing.T) {
	t.Run("no rules and no default", func(t *testing.T) {
		got := ResolveSkill(&model.Stage{ID: "s"}, model.FormData{})
		assert.Equal(t, UnassignedSkill, got.Skill)
		assert.False(t, got.Matched())
	})

	t.Run("rule without logic always matches", func(t *testing.T) {
		stage := &model.Stage{SkillLogic: []model.SkillRule{{RequiredSkill: "Any"}}, DefaultSkill: "Default"}
		assert.Equal(t, "Any", ResolveSkill(stage, model.FormData{}).Skill)
	})

	t.Run("nil stage panics", func(t *testing.T) {
		assert.Panics(t, func() { ResolveSkill(nil, model.FormData{}) })
	})
}
