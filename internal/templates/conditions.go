package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// EvaluateCondition evaluates a declarative rule against an intake. Conditions over
// absent fields are false, and type mismatches (e.g. a numeric comparison against
// free text) make the condition false rather than erroring: a rule that cannot be
// decided must not show a question.
func EvaluateCondition(condition *types.Condition, intake *types.ProjectIntake) bool {
	if condition == nil {
		return true
	}

	fieldValue := intake.FieldValue(condition.Field)
	if fieldValue == nil {
		return false
	}

	switch condition.Operator {
	case types.OpLess, types.OpGreater, types.OpLessEqual, types.OpGreaterEqual:
		return evaluateNumeric(condition.Operator, fieldValue, condition.Value)
	case types.OpEqual:
		return anyElementEquals(fieldValue, condition.Value)
	case types.OpNotEqual:
		return !anyElementEquals(fieldValue, condition.Value)
	case types.OpContains:
		return anyElementContains(fieldValue, condition.Value)
	case types.OpNotContains:
		return !anyElementContains(fieldValue, condition.Value)
	case types.OpIn:
		return anyElementIn(fieldValue, condition.Value)
	case types.OpNotIn:
		return !anyElementIn(fieldValue, condition.Value)
	default:
		// Unknown operators are rejected at load time; an unevaluable rule hides
		// rather than shows.
		return false
	}
}

func evaluateNumeric(op types.Operator, fieldValue, compareValue any) bool {
	field, ok := toFloat(fieldValue)
	if !ok {
		return false
	}
	compare, ok := toFloat(compareValue)
	if !ok {
		return false
	}

	switch op {
	case types.OpLess:
		return field < compare
	case types.OpGreater:
		return field > compare
	case types.OpLessEqual:
		return field <= compare
	case types.OpGreaterEqual:
		return field >= compare
	default:
		return false
	}
}

// anyElementEquals reports case-insensitive equality; for list fields, any element
// may match.
func anyElementEquals(fieldValue, compareValue any) bool {
	compare := strings.ToLower(stringForm(compareValue))
	for _, element := range elements(fieldValue) {
		if strings.ToLower(element) == compare {
			return true
		}
	}
	return false
}

// anyElementContains reports case-insensitive substring containment; for list
// fields, each element is checked.
func anyElementContains(fieldValue, compareValue any) bool {
	compare := strings.ToLower(stringForm(compareValue))
	for _, element := range elements(fieldValue) {
		if strings.Contains(strings.ToLower(element), compare) {
			return true
		}
	}
	return false
}

// anyElementIn reports set membership of the field value (or, for list fields, any
// element) in the provided list of allowed values.
func anyElementIn(fieldValue, compareValue any) bool {
	allowed := make(map[string]bool)
	for _, value := range elements(compareValue) {
		allowed[strings.ToLower(value)] = true
	}
	for _, element := range elements(fieldValue) {
		if allowed[strings.ToLower(element)] {
			return true
		}
	}
	return false
}

// elements flattens a scalar or list value into its string elements.
func elements(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringForm(item))
		}
		return out
	case nil:
		return nil
	default:
		return []string{stringForm(v)}
	}
}

func stringForm(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
