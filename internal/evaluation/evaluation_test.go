package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func group(op model.Combinator, conditions ...model.Condition) *model.LogicGroup {
	return &model.LogicGroup{ID: "g", Operator: op, Conditions: conditions, Groups: []model.LogicGroup{}}
}

func when(target string, op model.Operator, value any) model.Condition {
	return model.Condition{TargetElementID: target, Operator: op, Value: value}
}

// householdProcess is a two stage application with conditional spouse
// details, a hidden-by-default section and a summary section.
func householdProcess() *model.Process {
	married := group(model.CombinatorAnd, when("maritalStatus", model.OpEquals, "Married"))

	return &model.Process{
		ID:            "household",
		Name:          "Household Application",
		SchemaVersion: model.CurrentSchemaVersion,
		Stages: []model.Stage{
			{
				ID:           "applicant",
				Title:        "Applicant",
				DefaultSkill: "Customer Service",
				SkillLogic: []model.SkillRule{
					{ID: "r1", RequiredSkill: "Senior Underwriter", Logic: group(model.CombinatorAnd, when("age", model.OpGreater, 75))},
					{ID: "r2", RequiredSkill: "Complex Cases", Logic: group(model.CombinatorOr,
						when("maritalStatus", model.OpEquals, "Divorced"),
						when("dependants", model.OpGreater, 3))},
				},
				Sections: []model.Section{
					{
						ID: "personal", Title: "Personal", Layout: 2, Variant: model.VariantStandard,
						Elements: []model.Element{
							{ID: "maritalStatus", Label: "Marital Status", Type: model.ElementSelect,
								Options: []model.Option{model.LabelOption("Single"), model.LabelOption("Married"), model.LabelOption("Divorced")}},
							{ID: "spouseName", Label: "Spouse Name", Type: model.ElementText, Visibility: married, RequiredLogic: married},
							{ID: "age", Label: "Age", Type: model.ElementNumber, Required: true},
							{ID: "email", Label: "Email", Type: model.ElementEmail, Validation: &model.ValidationRule{Type: model.ValidationEmail}},
							{ID: "consent", Label: "I agree", Type: model.ElementCheckbox, Required: true},
							{ID: "channels", Label: "Channels", Type: model.ElementMultiSelect,
								Options: []model.Option{model.PairOption("By post", "post"), model.PairOption("By email", "email")}},
						},
					},
					{
						ID: "partner", Title: "Partner", Layout: 1, Variant: model.VariantStandard, Visibility: married,
						Elements: []model.Element{
							{ID: "partnerPhone", Label: "Partner Phone", Type: model.ElementText, Required: true,
								Validation: &model.ValidationRule{Type: model.ValidationPhoneUK}},
						},
					},
				},
			},
			{
				ID:    "review",
				Title: "Review",
				Sections: []model.Section{
					{
						ID: "recap", Title: "Recap", Layout: 1, Variant: model.VariantSummary,
						Elements: []model.Element{
							{ID: "confirmName", Label: "Confirm", Type: model.ElementText, Required: true},
							{ID: "channelEcho", Label: "Channels", Type: model.ElementStatic,
								StaticSource: model.StaticSourceField, StaticSourceFieldID: "channels"},
							{ID: "notice", Label: "Notice", Type: model.ElementStatic,
								StaticSource: model.StaticSourceText, StaticText: "Check your answers", Required: true},
						},
					},
					{
						ID: "internal", Title: "Internal", Layout: 1, Variant: model.VariantStandard, Hidden: true,
						Elements: []model.Element{
							{ID: "reviewer", Label: "Reviewer", Type: model.ElementText, Required: true},
						},
					},
				},
			},
		},
	}
}

func newEvaluator() *Evaluator {
	return NewEvaluator(logic.Validator{Now: func() time.Time { return fixedNow }})
}

func TestEvaluateSpouseScenario(t *testing.T) {
	process := householdProcess()
	ev := newEvaluator()

	single := ev.Evaluate(process, model.FormData{"maritalStatus": "Single", "age": float64(30), "consent": true})
	spouse, ok := single.Field("spouseName")
	require.True(t, ok)
	assert.False(t, spouse.Visible)
	assert.False(t, spouse.Required)
	assert.False(t, spouse.Missing)
	assert.True(t, single.Valid)
	assert.Empty(t, single.MissingFields)

	married := ev.Evaluate(process, model.FormData{"maritalStatus": "Married", "age": float64(30), "consent": true})
	spouse, _ = married.Field("spouseName")
	assert.True(t, spouse.Visible)
	assert.True(t, spouse.Required)
	assert.True(t, spouse.Missing)
	assert.False(t, married.Valid)
	assert.Equal(t, []string{"spouseName", "partnerPhone"}, married.MissingFields)

	stage, ok := married.Stage("applicant")
	require.True(t, ok)
	assert.False(t, stage.Complete)
}

func TestEvaluateContainerVisibilityDominates(t *testing.T) {
	process := householdProcess()
	report := newEvaluator().Evaluate(process, model.FormData{
		"maritalStatus": "Single",
		"partnerPhone":  "not a phone",
		"reviewer":      "",
	})

	phone, _ := report.Field("partnerPhone")
	assert.False(t, phone.Visible)
	assert.False(t, phone.Required)
	assert.Empty(t, phone.ValidationError)

	reviewer, _ := report.Field("reviewer")
	assert.False(t, reviewer.Visible)
	assert.False(t, reviewer.Missing)

	assert.NotContains(t, report.InvalidFields, "partnerPhone")
	assert.NotContains(t, report.MissingFields, "reviewer")
}

func TestEvaluateSectionVariantParticipation(t *testing.T) {
	report := newEvaluator().Evaluate(householdProcess(), model.FormData{})

	confirm, _ := report.Field("confirmName")
	assert.True(t, confirm.Visible)
	assert.False(t, confirm.Required, "summary sections do not collect input")

	notice, _ := report.Field("notice")
	assert.False(t, notice.Required, "static elements are never required")
	assert.Equal(t, "Check your answers", notice.Display)

	review, _ := report.Stage("review")
	assert.True(t, review.Complete)
}

func TestEvaluateValidationAndMissing(t *testing.T) {
	report := newEvaluator().Evaluate(householdProcess(), model.FormData{
		"maritalStatus": "Single",
		"age":           "",
		"email":         "nope",
		"consent":       false,
	})

	email, _ := report.Field("email")
	assert.Equal(t, logic.MsgInvalidEmail, email.ValidationError)
	assert.Equal(t, []string{"email"}, report.InvalidFields)
	assert.Equal(t, []string{"age", "consent"}, report.MissingFields)
	assert.False(t, report.Valid)
}

func TestEvaluateStaticFieldDisplay(t *testing.T) {
	process := householdProcess()
	ev := newEvaluator()

	report := ev.Evaluate(process, model.FormData{"channels": []any{"post", "email", "pigeon"}})
	echo, _ := report.Field("channelEcho")
	assert.Equal(t, "By post, By email, pigeon", echo.Display)
	assert.Nil(t, echo.Value)

	report = ev.Evaluate(process, model.FormData{"channels": "email"})
	echo, _ = report.Field("channelEcho")
	assert.Equal(t, "By email", echo.Display)

	report = ev.Evaluate(process, model.FormData{})
	echo, _ = report.Field("channelEcho")
	assert.Equal(t, "", echo.Display)
}

func TestEvaluateSkillRouting(t *testing.T) {
	process := householdProcess()
	ev := newEvaluator()

	tests := []struct {
		name    string
		data    model.FormData
		skill   string
		matched *int
	}{
		{"first rule wins", model.FormData{"age": float64(80), "maritalStatus": "Divorced"}, "Senior Underwriter", intPtr(0)},
		{"second rule", model.FormData{"dependants": "4"}, "Complex Cases", intPtr(1)},
		{"default", model.FormData{"age": float64(40)}, "Customer Service", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, _ := ev.Evaluate(process, tt.data).Stage("applicant")
			assert.Equal(t, tt.skill, stage.Skill.Skill)
			assert.Equal(t, tt.matched, stage.Skill.MatchedRuleIndex)
		})
	}

	review, _ := ev.Evaluate(process, nil).Stage("review")
	assert.Equal(t, logic.UnassignedSkill, review.Skill.Skill)
}

func TestEvaluateDoesNotMutateInputs(t *testing.T) {
	process := householdProcess()
	data := model.FormData{"maritalStatus": "Married"}

	Evaluate(process, data)

	assert.Equal(t, householdProcess(), process)
	assert.Equal(t, model.FormData{"maritalStatus": "Married"}, data)
}

func TestInitialFormData(t *testing.T) {
	process := householdProcess()
	process.Stages[0].Sections[0].Elements[0].DefaultValue = "Single"

	data := InitialFormData(process)
	assert.Equal(t, model.FormData{"maritalStatus": "Single", "consent": false}, data)

	report := newEvaluator().Evaluate(process, data)
	spouse, _ := report.Field("spouseName")
	assert.False(t, spouse.Visible)
}

func TestEvaluateBatch(t *testing.T) {
	process := householdProcess()
	snapshots := []model.FormData{
		{"maritalStatus": "Married"},
		{"maritalStatus": "Single", "age": float64(20), "consent": true},
		{"age": float64(90)},
	}

	reports, err := newEvaluator().EvaluateBatch(context.Background(), process, snapshots, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	spouse, _ := reports[0].Field("spouseName")
	assert.True(t, spouse.Visible)
	assert.True(t, reports[1].Valid)

	stage, _ := reports[2].Stage("applicant")
	assert.Equal(t, "Senior Underwriter", stage.Skill.Skill)
}

func TestEvaluateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEvaluator().EvaluateBatch(ctx, householdProcess(), []model.FormData{{}, {}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	process := householdProcess()
	process.Stages[0].Sections[0].Elements[3].Validation.CustomDescription = "work address preferred"

	summary := Summarize(process)
	assert.Equal(t, "household", summary.ProcessID)

	byOwner := map[string][]Rule{}
	for _, rule := range summary.Rules {
		byOwner[rule.OwnerID+"/"+string(rule.Kind)] = append(byOwner[rule.OwnerID+"/"+string(rule.Kind)], rule)
	}

	skills := byOwner["applicant/skill"]
	require.Len(t, skills, 2)
	assert.Equal(t, "Age > 75", skills[0].Text)
	assert.Equal(t, "Senior Underwriter", skills[0].Skill)
	assert.Equal(t, "Marital Status = 'Divorced' OR Unknown Field > 3", skills[1].Text)

	assert.Equal(t, "Marital Status = 'Married'", byOwner["spouseName/visibility"][0].Text)
	assert.Equal(t, "Marital Status = 'Married'", byOwner["spouseName/required"][0].Text)
	assert.Equal(t, "Marital Status = 'Married'", byOwner["partner/visibility"][0].Text)
	assert.Equal(t, logic.AlwaysText, byOwner["age/required"][0].Text)
	assert.Equal(t, HiddenText, byOwner["internal/visibility"][0].Text)
	assert.Empty(t, byOwner["maritalStatus/visibility"])

	require.Len(t, summary.Patterns, 2)
	assert.Equal(t, PatternSummary{
		FieldID: "email", Field: "Email", Type: model.ValidationEmail,
		Pattern: `^[^\s@]+@[^\s@]+\.[^\s@]+$`, Note: "work address preferred",
	}, summary.Patterns[0])
	assert.Equal(t, model.ValidationPhoneUK, summary.Patterns[1].Type)
}

func intPtr(i int) *int { return &i }
