package templates

import (
	"github.com/ecoproject/funding-matcher/internal/types"
)

// SelectChecklist filters the template checklist for an intake. Critical items are
// always included; project-specific items only when their condition is absent or
// holds; strengthen items are universal competitive enhancements and are never
// filtered.
func SelectChecklist(template *types.FundingTemplate, intake *types.ProjectIntake) *types.Checklist {
	spec := template.ChecklistItems

	checklist := &types.Checklist{
		Critical:        append([]types.ChecklistItem{}, spec.Critical...),
		ProjectSpecific: make([]types.ChecklistItem, 0, len(spec.ProjectSpecific)),
		Strengthen:      append([]types.ChecklistItem{}, spec.Strengthen...),
	}

	for _, item := range spec.ProjectSpecific {
		if EvaluateCondition(item.Conditional, intake) {
			checklist.ProjectSpecific = append(checklist.ProjectSpecific, item)
		}
	}

	return checklist
}
