// Package templates implements the template-driven readiness engine: loading and
// validating per-program question/checklist documents, evaluating their conditional
// rules against an intake, and scoring application readiness.
package templates

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ecoproject/funding-matcher/internal/schemas"
	"github.com/ecoproject/funding-matcher/internal/types"
)

// templateSchema is the JSON Schema every template document must satisfy.
// A document that violates it is rejected outright: a partially-parsed rule set
// could silently produce wrong eligibility or readiness results.
//
//go:embed template.schema.json
var templateSchema string

// ParseTemplate validates and decodes a funding template document.
func ParseTemplate(data []byte) (*types.FundingTemplate, error) {
	if err := schemas.ValidateJSONString(templateSchema, string(data)); err != nil {
		return nil, fmt.Errorf("template document rejected: %w", err)
	}

	var template types.FundingTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to decode template JSON: %w", err)
	}

	seen := make(map[string]bool, len(template.Questions))
	for _, question := range template.Questions {
		if seen[question.ID] {
			return nil, fmt.Errorf("template document rejected: duplicate question id %q", question.ID)
		}
		seen[question.ID] = true
	}

	return &template, nil
}
