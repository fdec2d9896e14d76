package types

import (
	"github.com/ecoproject/funding-matcher/internal/normalize"
)

// FundingProgram is a funding opportunity record being scored against an intake.
// Records are read-only to the core. Field presence is optional and inconsistent:
// accessors resolve each attribute through the ordered alias table rather than
// assuming a fixed schema.
type FundingProgram struct {
	// ID is the catalog record identifier, opaque to scoring and used only
	// for later persistence.
	ID string `json:"id,omitempty"`

	// Fields holds the raw record fields as delivered by the catalog.
	Fields map[string]any `json:"fields"`
}

// Name returns the program name, or "Unnamed program" if absent.
func (p *FundingProgram) Name() string {
	name := normalize.ResolveString(p.Fields, normalize.AttrProgramName)
	if name == "" {
		return "Unnamed program"
	}
	return name
}

// Funder returns the funder organization name, or "" if absent.
func (p *FundingProgram) Funder() string {
	return normalize.ResolveString(p.Fields, normalize.AttrFunder)
}

// EligibleRegions returns the program's listed eligible regions.
func (p *FundingProgram) EligibleRegions() []string {
	return normalize.ResolveStringList(p.Fields, normalize.AttrRegions)
}

// EligibleApplicants returns the program's listed eligible applicant types.
func (p *FundingProgram) EligibleApplicants() []string {
	return normalize.ResolveStringList(p.Fields, normalize.AttrApplicants)
}

// EligibleProjectTypes returns the program's listed eligible project types.
func (p *FundingProgram) EligibleProjectTypes() []string {
	return normalize.ResolveStringList(p.Fields, normalize.AttrProjectTypes)
}

// Themes returns the program's listed themes.
func (p *FundingProgram) Themes() []string {
	return normalize.ResolveStringList(p.Fields, normalize.AttrThemes)
}

// Stages returns the program's listed stage preferences.
func (p *FundingProgram) Stages() []string {
	return normalize.ResolveStringList(p.Fields, normalize.AttrStages)
}

// MaxGrant returns the program's parsed maximum grant amount.
// The second return value is false when the amount is unknown.
func (p *FundingProgram) MaxGrant() (float64, bool) {
	value, ok := normalize.Resolve(p.Fields, normalize.AttrMaxGrant)
	if !ok {
		return 0, false
	}
	return normalize.ParseMoney(value)
}

// MinGrantDisplay returns the minimum grant amount as display text, or "—" if absent.
func (p *FundingProgram) MinGrantDisplay() string {
	return displayOrDash(p.Fields, normalize.AttrMinGrant)
}

// MaxGrantDisplay returns the maximum grant amount as display text, or "—" if absent.
func (p *FundingProgram) MaxGrantDisplay() string {
	return displayOrDash(p.Fields, normalize.AttrMaxGrant)
}

// Deadline returns the application deadline as free text, or "" if absent.
func (p *FundingProgram) Deadline() string {
	return normalize.ResolveString(p.Fields, normalize.AttrDeadline)
}

// Description returns the program description as plain text, or "" if absent.
func (p *FundingProgram) Description() string {
	raw := normalize.ResolveString(p.Fields, normalize.AttrDescription)
	if raw == "" {
		return ""
	}
	return normalize.HTMLToText(raw)
}

// Competitiveness returns the competitiveness level as display text, or "—" if absent.
func (p *FundingProgram) Competitiveness() string {
	return displayOrDash(p.Fields, normalize.AttrCompetitiveness)
}

func displayOrDash(fields map[string]any, attr normalize.Attribute) string {
	value := normalize.ResolveString(fields, attr)
	if value == "" {
		return "—"
	}
	return value
}
