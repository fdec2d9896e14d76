package templates

import (
	"sort"
	"strings"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// placeholderFallback substitutes for a placeholder whose intake value is absent.
const placeholderFallback = "X"

// categoryPriority orders questions for display: critical first, then
// project-specific, then strengthen, then anything else.
func categoryPriority(category string) int {
	switch category {
	case types.CategoryCritical:
		return 0
	case types.CategoryProjectSpecific:
		return 1
	case types.CategoryStrengthen:
		return 2
	default:
		return 3
	}
}

// SelectQuestions returns the template questions relevant to an intake,
// personalized and ordered. A question survives when its conditional rule holds and
// at least one of its trigger phrases (if any) appears in the intake text; surviving
// prompts get placeholder interpolation and a region hint when one applies.
func SelectQuestions(template *types.FundingTemplate, intake *types.ProjectIntake) []types.Question {
	intakeText := intake.FullText()

	selected := make([]types.Question, 0, len(template.Questions))
	for _, question := range template.Questions {
		if !EvaluateCondition(question.Conditional, intake) {
			continue
		}
		if len(question.Triggers) > 0 && !anyTriggerFires(question.Triggers, intakeText) {
			continue
		}

		question.Question = interpolate(question.Question, intake)
		question.Hint = regionHint(question.RegionHints, intake.Region)
		selected = append(selected, question)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		pi, pj := categoryPriority(selected[i].Category), categoryPriority(selected[j].Category)
		if pi != pj {
			return pi < pj
		}
		// Within a category, heavier questions first. An undeclared weight
		// sorts at the default.
		return selected[i].Weight() > selected[j].Weight()
	})

	return selected
}

func anyTriggerFires(triggers []string, intakeText string) bool {
	for _, trigger := range triggers {
		if trigger == "" {
			continue
		}
		if strings.Contains(intakeText, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}

// interpolate replaces known placeholder tokens in a prompt with intake values.
func interpolate(prompt string, intake *types.ProjectIntake) string {
	if strings.Contains(prompt, "{project_size}") {
		prompt = strings.ReplaceAll(prompt, "{project_size}", orFallback(intake.ProjectSize))
	}
	if strings.Contains(prompt, "{budget}") {
		prompt = strings.ReplaceAll(prompt, "{budget}", orFallback(intake.BudgetRange))
	}
	return prompt
}

func orFallback(value string) string {
	if value == "" {
		return placeholderFallback
	}
	return value
}

// regionHint returns the hint for the first region keyword (in sorted key order,
// for determinism) found within the intake region text.
func regionHint(hints map[string]string, region string) string {
	if len(hints) == 0 || region == "" {
		return ""
	}

	regionLower := strings.ToLower(region)
	keys := make([]string, 0, len(hints))
	for key := range hints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(regionLower, strings.ToLower(key)) {
			return hints[key]
		}
	}
	return ""
}
