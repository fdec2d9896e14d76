package types

// ScoreBreakdown records the per-factor sub-scores and bonus deltas behind a match
// score. Base components and deltas sum to the final score before clamping.
type ScoreBreakdown struct {
	Region      int `json:"region"`
	Applicant   int `json:"applicant"`
	ProjectType int `json:"project_type"`
	Theme       int `json:"theme"`
	Budget      int `json:"budget"`

	StageBonus       int `json:"stage_bonus"`
	KeywordBonus     int `json:"keyword_bonus"`
	DeadlineDelta    int `json:"deadline_delta"`
	ThemePriority    int `json:"theme_priority"`
	PartnershipBonus int `json:"partnership_bonus"`
}

// Total returns the unclamped sum of all components and deltas.
func (b *ScoreBreakdown) Total() int {
	return b.Region + b.Applicant + b.ProjectType + b.Theme + b.Budget +
		b.StageBonus + b.KeywordBonus + b.DeadlineDelta + b.ThemePriority + b.PartnershipBonus
}

// RankedProgram pairs a program with its computed match score.
type RankedProgram struct {
	ProgramID   string         `json:"program_id,omitempty"`
	ProgramName string         `json:"program_name"`
	Score       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// RankedMatches is the ordered result of scoring a catalog against an intake,
// sorted by score descending with program name ascending as tie-breaker.
type RankedMatches struct {
	Ranked []RankedProgram `json:"ranked"`
}

// Top returns the highest-ranked program, or nil if the list is empty.
func (m *RankedMatches) Top() *RankedProgram {
	if len(m.Ranked) == 0 {
		return nil
	}
	return &m.Ranked[0]
}
