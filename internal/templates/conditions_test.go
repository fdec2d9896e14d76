package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecoproject/funding-matcher/internal/types"
)

func TestEvaluateCondition_NilConditionAlwaysTrue(t *testing.T) {
	intake := &types.ProjectIntake{}
	assert.True(t, EvaluateCondition(nil, intake))
}

func TestEvaluateCondition_AbsentFieldIsFalse(t *testing.T) {
	intake := &types.ProjectIntake{}
	condition := &types.Condition{Field: "region", Operator: types.OpEqual, Value: "Skeena"}

	assert.False(t, EvaluateCondition(condition, intake))
}

func TestEvaluateCondition_UnknownFieldIsFalse(t *testing.T) {
	intake := &types.ProjectIntake{Region: "Skeena"}
	condition := &types.Condition{Field: "no_such_field", Operator: types.OpEqual, Value: "Skeena"}

	assert.False(t, EvaluateCondition(condition, intake))
}

func TestEvaluateCondition_Equality(t *testing.T) {
	intake := &types.ProjectIntake{Stage: "Planning"}

	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "stage", Operator: types.OpEqual, Value: "planning",
	}, intake), "equality is case-insensitive")

	assert.False(t, EvaluateCondition(&types.Condition{
		Field: "stage", Operator: types.OpEqual, Value: "Idea",
	}, intake))

	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "stage", Operator: types.OpNotEqual, Value: "Idea",
	}, intake))
}

func TestEvaluateCondition_EqualityOverListMatchesAnyElement(t *testing.T) {
	intake := &types.ProjectIntake{Themes: []string{"Salmon", "Wildfire resilience"}}
	condition := &types.Condition{Field: "themes", Operator: types.OpEqual, Value: "salmon"}

	assert.True(t, EvaluateCondition(condition, intake))
}

func TestEvaluateCondition_Contains(t *testing.T) {
	intake := &types.ProjectIntake{Partners: "Wet'suwet'en First Nation, local stewardship society"}

	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "partners", Operator: types.OpContains, Value: "first nation",
	}, intake))

	assert.False(t, EvaluateCondition(&types.Condition{
		Field: "partners", Operator: types.OpContains, Value: "municipality",
	}, intake))

	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "partners", Operator: types.OpNotContains, Value: "municipality",
	}, intake))
}

func TestEvaluateCondition_InMembership(t *testing.T) {
	intake := &types.ProjectIntake{BudgetRange: "$250k–1M"}

	assert.True(t, EvaluateCondition(&types.Condition{
		Field:    "budget_range",
		Operator: types.OpIn,
		Value:    []any{"$250k–1M", ">1M"},
	}, intake))

	assert.False(t, EvaluateCondition(&types.Condition{
		Field:    "budget_range",
		Operator: types.OpIn,
		Value:    []any{"<$50k"},
	}, intake))

	assert.True(t, EvaluateCondition(&types.Condition{
		Field:    "budget_range",
		Operator: types.OpNotIn,
		Value:    []any{"<$50k"},
	}, intake))
}

func TestEvaluateCondition_NumericComparisons(t *testing.T) {
	intake := &types.ProjectIntake{ProjectSize: "150"}

	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "hectares", Operator: types.OpGreater, Value: float64(100),
	}, intake))
	assert.False(t, EvaluateCondition(&types.Condition{
		Field: "hectares", Operator: types.OpLess, Value: float64(100),
	}, intake))
	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "hectares", Operator: types.OpGreaterEqual, Value: "150",
	}, intake))
	assert.True(t, EvaluateCondition(&types.Condition{
		Field: "hectares", Operator: types.OpLessEqual, Value: float64(150),
	}, intake))
}

func TestEvaluateCondition_NumericOverFreeTextIsFalse(t *testing.T) {
	intake := &types.ProjectIntake{ProjectSize: "about twelve hectares"}
	condition := &types.Condition{Field: "hectares", Operator: types.OpGreater, Value: float64(10)}

	assert.False(t, EvaluateCondition(condition, intake))
}

func TestEvaluateCondition_UnknownOperatorIsFalse(t *testing.T) {
	intake := &types.ProjectIntake{Region: "Skeena"}
	condition := &types.Condition{Field: "region", Operator: "matches", Value: "Skeena"}

	assert.False(t, EvaluateCondition(condition, intake))
}
