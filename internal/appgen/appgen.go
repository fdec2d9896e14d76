// Package appgen renders a complete draft grant application from an intake and
// the user's readiness question responses. Unanswered sections fall back to
// bracketed prompts the applicant fills in by hand.
package appgen

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ecoproject/funding-matcher/internal/types"
)

//go:embed application.tmpl
var applicationTemplate string

// TemplateError represents an error parsing or executing the application template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Data is the resolved field set passed to the application template.
type Data struct {
	GeneratedDate string
	ProjectTitle  string
	Description   string
	ContactName   string
	Organization  string
	Email         string
	Region        string

	OrgEligibility       string
	ProjectDuration      string
	ForestClassification string
	ProjectActivities    string
	ClimateBenefits      string
	Scalability          string
	CulturalBenefits     string
	CarbonSection        string
	TeamExpertise        string
	Partnerships         string
	BudgetAmount         string
	BudgetJustification  string
	Milestones           string
}

// Generate renders the draft application for an intake and its question responses.
func Generate(intake *types.ProjectIntake, responses map[string]string) (string, error) {
	return generateAt(intake, responses, time.Now())
}

func generateAt(intake *types.ProjectIntake, responses map[string]string, now time.Time) (string, error) {
	tmpl, err := template.New("application").Parse(applicationTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse application template", Cause: err}
	}

	data := buildData(intake, responses, now)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute application template", Cause: err}
	}
	return result.String(), nil
}

func buildData(intake *types.ProjectIntake, responses map[string]string, now time.Time) *Data {
	duration := response(responses, "project_duration",
		"[Specify 1-year or 2-year project with milestones]")

	return &Data{
		GeneratedDate: now.Format("January 2, 2006"),
		ProjectTitle:  orBracket(intake.ProjectTitle, "[Project Title]"),
		Description:   orBracket(intake.Description, "[Project Description]"),
		ContactName:   orBracket(intake.Name, "[Your Name]"),
		Organization:  orBracket(intake.Organization, "[Organization Name]"),
		Email:         orBracket(intake.Email, "[Your Email]"),
		Region:        orBracket(intake.Region, "[Region]"),

		OrgEligibility: response(responses, "org_eligibility",
			"[Describe your governance structure and forest management authority]"),
		ProjectDuration: duration,
		ForestClassification: response(responses, "forest_classification",
			"[Provide forest classification and age class]"),
		ProjectActivities: formatProjectTypes(intake.ProjectTypes),
		ClimateBenefits: response(responses, "climate_benefits",
			"[Describe measurable climate benefits]"),
		Scalability: response(responses, "scalability",
			"[Explain how this methodology can be scaled or replicated]"),
		CulturalBenefits: response(responses, "cultural_benefits",
			"[List specific cultural and socioeconomic benefits]"),
		CarbonSection: carbonSection(responses["carbon_quantification"]),
		TeamExpertise: response(responses, "team_expertise",
			"[List key team members and their experience]"),
		Partnerships: formatPartnerships(intake.Partners),
		BudgetAmount: estimateBudgetAmount(intake.BudgetRange),
		BudgetJustification: response(responses, "budget_justification",
			"[Provide budget breakdown]"),
		Milestones: milestones(duration),
	}
}

func response(responses map[string]string, id, fallback string) string {
	if value := strings.TrimSpace(responses[id]); value != "" {
		return value
	}
	return fallback
}

func orBracket(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatProjectTypes(projectTypes []string) string {
	if len(projectTypes) == 0 {
		return "• [List your specific project activities]"
	}
	lines := make([]string, 0, len(projectTypes))
	for _, pt := range projectTypes {
		lines = append(lines, "• "+pt)
	}
	return strings.Join(lines, "\n")
}

func formatPartnerships(partners string) string {
	if strings.TrimSpace(partners) == "" {
		return "[Describe any partnerships - e.g., with forest companies, universities, " +
			"conservation organizations, neighboring First Nations]"
	}
	return fmt.Sprintf("We are partnering with: %s\n\n"+
		"[Provide details on each partner's role and contribution to the project]", partners)
}

func carbonSection(quantification string) string {
	if strings.TrimSpace(quantification) != "" {
		return quantification
	}
	return "While we are not providing detailed carbon quantification at this stage, " +
		"our project will contribute to climate benefits through [describe general " +
		"mechanisms - e.g., increased carbon storage in standing forests, avoided " +
		"emissions from reduced slash burning, enhanced resilience reducing risk of " +
		"carbon loss from disturbance]."
}

// estimateBudgetAmount converts an intake budget band into a concrete example
// figure for the draft. Amounts above the program maximum are capped at it.
func estimateBudgetAmount(budgetRange string) string {
	mapping := map[string]string{
		"<$50k":    "$45,000",
		"$50–250k": "$180,000",
		"$250k–1M": "$300,000",
		">1M":      "$300,000 (SFI maximum)",
	}
	if amount, ok := mapping[budgetRange]; ok {
		return amount
	}
	return "[Budget Amount]"
}

const oneYearMilestones = `• Month 1-2: Finalize project planning, hire staff, procure equipment
• Month 3-4: Complete site preparations and baseline data
• Month 5-8: Implement main field activities
• Month 9-10: Monitoring and assessment
• Month 11-12: Final reporting and knowledge sharing`

const twoYearMilestones = `Year 1:
• Month 1-2: Finalize project planning, hire staff, procure equipment
• Month 3-4: Complete baseline assessments and site preparations
• Month 5-8: Implement Phase 1 field activities
• Month 9-10: Interim monitoring and data collection
• Month 11-12: Year 1 reporting to SFI

Year 2:
• Month 13-14: Review Year 1 lessons, adjust approach if needed
• Month 15-18: Implement Phase 2 field activities
• Month 19-20: Complete final monitoring and assessments
• Month 21-22: Knowledge sharing activities (workshops, presentations)
• Month 23-24: Final reporting and project close-out`

func milestones(duration string) string {
	lower := strings.ToLower(duration)
	if strings.Contains(lower, "2-year") || strings.Contains(lower, "2 year") {
		return twoYearMilestones
	}
	return oneYearMilestones
}
