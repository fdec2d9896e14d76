package scoring

import (
	"strings"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// Point allocation for the base scoring components. The allocation has drifted
// across catalog revisions; this is the current fixed scale, and every change to it
// is a scoring-policy change.
const (
	regionMax     = 20
	regionNeutral = 10 // program lists no eligible regions
	regionUnknown = 7  // user did not specify a region

	applicantMax     = 30
	applicantNeutral = 15

	projectTypeMax     = 20
	projectTypeNeutral = 10

	themeMax     = 15
	themeNeutral = 8

	budgetMax     = 10
	budgetNeutral = 5
	budgetStretch = 5 // user budget within 1.5x of the program maximum

	budgetStretchRatio = 1.5
)

// Bonus and penalty deltas applied after the base components.
const (
	stageMatchBonus = 5

	deadlineFarBonus      = 4  // more than 90 days out
	deadlineModerateBonus = 2  // more than 30 days out
	deadlineUrgentPenalty = -5 // under 14 days: likely too late to apply

	themePriorityBonus      = 3
	indigenousPartnerBonus  = 4
)

// priorityThemes carry a strategic emphasis bonus when selected on the intake.
var priorityThemes = []string{
	"climate adaptation",
	"salmon habitat",
}

// indigenousMarkers flag an Indigenous-led or partnered project from free text.
var indigenousMarkers = []string{
	"first nation",
	"indigenous",
	"métis",
	"metis",
	"inuit",
}

// ScoreProgram computes the clamped 0-100 fit score for one (program, intake) pair
// along with its per-factor breakdown. It is a pure function of its inputs: missing
// or malformed program fields degrade to the documented neutral values, never to
// errors.
func ScoreProgram(program *types.FundingProgram, intake *types.ProjectIntake) (float64, types.ScoreBreakdown) {
	breakdown := types.ScoreBreakdown{
		Region:      regionScore(program, intake),
		Applicant:   applicantScore(program, intake),
		ProjectType: overlapScore(intake.ProjectTypes, program.EligibleProjectTypes(), projectTypeMax, projectTypeNeutral),
		Theme:       overlapScore(intake.Themes, program.Themes(), themeMax, themeNeutral),
		Budget:      budgetScore(program, intake),

		StageBonus:       stageBonus(program, intake),
		KeywordBonus:     KeywordBonus(intake.Description, program.Name(), program.Funder()),
		DeadlineDelta:    deadlineDelta(program.Deadline()),
		ThemePriority:    themePriority(intake),
		PartnershipBonus: partnershipBonus(intake),
	}

	total := breakdown.Total()
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	return float64(total), breakdown
}

// regionScore awards full points on a bidirectional substring match between the
// user's region text and any listed eligible region.
func regionScore(program *types.FundingProgram, intake *types.ProjectIntake) int {
	region := strings.ToLower(strings.TrimSpace(intake.Region))
	if region == "" {
		return regionUnknown
	}

	eligible := program.EligibleRegions()
	if len(eligible) == 0 {
		return regionNeutral
	}

	for _, candidate := range eligible {
		candidateLower := strings.ToLower(candidate)
		if strings.Contains(candidateLower, region) || strings.Contains(region, candidateLower) {
			return regionMax
		}
	}
	return 0
}

func applicantScore(program *types.FundingProgram, intake *types.ProjectIntake) int {
	applicant := strings.ToLower(strings.TrimSpace(intake.ApplicantType))
	if applicant == "" {
		return applicantNeutral
	}

	eligible := program.EligibleApplicants()
	if len(eligible) == 0 {
		return applicantNeutral
	}

	for _, candidate := range eligible {
		if strings.Contains(strings.ToLower(candidate), applicant) {
			return applicantMax
		}
	}
	return 0
}

// overlapScore scores set overlap as max * |intersection| / |user set|, truncated.
// A program that declares nothing scores neutral; a user that selected nothing
// contributes zero against a program that does declare eligibility.
func overlapScore(userValues, programValues []string, max, neutral int) int {
	programSet := lowerSet(programValues)
	if len(programSet) == 0 {
		return neutral
	}

	userSet := lowerSet(userValues)
	if len(userSet) == 0 {
		return 0
	}

	intersection := 0
	for value := range userSet {
		if programSet[value] {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	fraction := float64(intersection) / float64(len(userSet))
	if fraction > 1.0 {
		fraction = 1.0
	}
	return int(float64(max) * fraction)
}

func budgetScore(program *types.FundingProgram, intake *types.ProjectIntake) int {
	estimated, ok := EstimateBudget(intake.BudgetRange)
	if !ok {
		return budgetNeutral
	}

	maxGrant, ok := program.MaxGrant()
	if !ok {
		return budgetNeutral
	}

	switch {
	case estimated <= maxGrant:
		return budgetMax
	case estimated <= budgetStretchRatio*maxGrant:
		return budgetStretch
	default:
		return 0
	}
}

func stageBonus(program *types.FundingProgram, intake *types.ProjectIntake) int {
	stage := strings.ToLower(strings.TrimSpace(intake.Stage))
	if stage == "" {
		return 0
	}
	for _, candidate := range program.Stages() {
		if strings.Contains(strings.ToLower(candidate), stage) {
			return stageMatchBonus
		}
	}
	return 0
}

// deadlineDelta rewards deadlines far enough out to realistically apply to and
// penalizes ones the user almost certainly cannot meet.
func deadlineDelta(deadline string) int {
	days := DaysUntilDeadline(deadline)
	switch {
	case days > 90:
		return deadlineFarBonus
	case days > 30:
		return deadlineModerateBonus
	case days < 14:
		return deadlineUrgentPenalty
	default:
		return 0
	}
}

func themePriority(intake *types.ProjectIntake) int {
	for _, theme := range intake.Themes {
		themeLower := strings.ToLower(theme)
		for _, priority := range priorityThemes {
			if themeLower == priority {
				return themePriorityBonus
			}
		}
	}
	return 0
}

func partnershipBonus(intake *types.ProjectIntake) int {
	combined := strings.ToLower(intake.Partners + " " + intake.ApplicantType)
	for _, marker := range indigenousMarkers {
		if strings.Contains(combined, marker) {
			return indigenousPartnerBonus
		}
	}
	return 0
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}
