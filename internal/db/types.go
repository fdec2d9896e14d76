package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// Submission is a stored intake together with its match results.
type Submission struct {
	ID           uuid.UUID    `json:"id"`
	Organization string       `json:"organization"`
	ProjectTitle string       `json:"project_title"`
	Region       string       `json:"region"`
	CreatedAt    time.Time    `json:"created_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	TopProgram   string       `json:"top_program,omitempty"`
	TopScore     float64      `json:"top_score,omitempty"`
	DeepDive     DeepDiveInfo `json:"deep_dive"`
}

// DeepDiveInfo tracks the state of a requested program deep dive. The analysis
// itself runs in a separate watcher process; this record only queues and reports it.
type DeepDiveInfo struct {
	Status      string     `json:"status,omitempty"`
	ProgramID   string     `json:"program_id,omitempty"`
	RequestedAt *time.Time `json:"requested_at,omitempty"`
}

// Deep dive status values.
const (
	DeepDivePending   = "pending"
	DeepDiveCompleted = "completed"
	DeepDiveFailed    = "failed"
)

// SubmissionInput is the payload for creating a submission record.
type SubmissionInput struct {
	Intake  *types.ProjectIntake `json:"intake"`
	Matches *types.RankedMatches `json:"matches,omitempty"`
}
