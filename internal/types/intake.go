// Package types provides type definitions for structured data used throughout the funding-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Applicant categories offered on the intake form.
var ApplicantTypes = []string{
	"First Nation",
	"Indigenous organization",
	"Municipality / Regional District",
	"Non-profit / Charity",
	"For-profit business",
	"University / Research institute",
	"Other",
}

// Budget bands, ordered smallest to largest.
var BudgetBands = []string{
	"<$50k",
	"$50–250k",
	"$250k–1M",
	">1M",
}

// Project stages, ordered earliest to latest.
var ProjectStages = []string{
	"Idea",
	"Planning",
	"Ready to implement",
	"Shovel-ready",
}

// ProjectIntake is the user-submitted project description used as the scoring query.
// It is immutable for the duration of a scoring run. Scoring treats absent fields as
// unknown, never as excluding: validation only constrains the fields that are present.
type ProjectIntake struct {
	Organization string `json:"organization,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`

	ApplicantType string   `json:"applicant_type,omitempty"`
	Partners      string   `json:"partners,omitempty"`
	MatchFunding  string   `json:"match_funding,omitempty"`
	Region        string   `json:"region,omitempty"`
	BudgetRange   string   `json:"budget_range,omitempty"`
	Stage         string   `json:"stage,omitempty"`
	ProjectTypes  []string `json:"project_types,omitempty"`
	Themes        []string `json:"themes,omitempty"`
	ProjectTitle  string   `json:"project_title,omitempty"`
	Description   string   `json:"description,omitempty"`
	ProjectSize   string   `json:"project_size,omitempty"` // e.g. hectares, for template interpolation
}

// Validate checks that any populated enum-like fields carry known values.
func (p *ProjectIntake) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.ApplicantType != "" && !containsString(ApplicantTypes, p.ApplicantType) {
		return fmt.Errorf("unknown applicant_type: %q", p.ApplicantType)
	}
	if p.BudgetRange != "" && !containsString(BudgetBands, p.BudgetRange) {
		return fmt.Errorf("unknown budget_range: %q", p.BudgetRange)
	}
	if p.Stage != "" && !containsString(ProjectStages, p.Stage) {
		return fmt.Errorf("unknown stage: %q", p.Stage)
	}
	return nil
}

// FieldValue looks up an intake field by its template condition name.
// Returns nil when the field name is unknown or the field is empty.
func (p *ProjectIntake) FieldValue(name string) any {
	switch name {
	case "organization":
		return emptyAsNil(p.Organization)
	case "applicant_type":
		return emptyAsNil(p.ApplicantType)
	case "partners":
		return emptyAsNil(p.Partners)
	case "match_funding":
		return emptyAsNil(p.MatchFunding)
	case "region":
		return emptyAsNil(p.Region)
	case "budget_range", "budget":
		return emptyAsNil(p.BudgetRange)
	case "stage":
		return emptyAsNil(p.Stage)
	case "project_types":
		if len(p.ProjectTypes) == 0 {
			return nil
		}
		return p.ProjectTypes
	case "themes":
		if len(p.Themes) == 0 {
			return nil
		}
		return p.Themes
	case "project_title":
		return emptyAsNil(p.ProjectTitle)
	case "description":
		return emptyAsNil(p.Description)
	case "project_size", "hectares":
		return emptyAsNil(p.ProjectSize)
	default:
		return nil
	}
}

// FullText returns the lowercased concatenation of every populated intake value,
// used for trigger-phrase matching.
func (p *ProjectIntake) FullText() string {
	parts := []string{
		p.Organization, p.Name, p.ApplicantType, p.Partners, p.MatchFunding,
		p.Region, p.BudgetRange, p.Stage, p.ProjectTitle, p.Description, p.ProjectSize,
	}
	parts = append(parts, p.ProjectTypes...)
	parts = append(parts, p.Themes...)

	populated := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			populated = append(populated, part)
		}
	}
	return strings.ToLower(strings.Join(populated, " "))
}

func emptyAsNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
