package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ecoproject/funding-matcher/internal/types"
)

// CreateSubmission stores an intake and its ranked matches, returning the new
// submission's ID.
func (db *DB) CreateSubmission(ctx context.Context, input *SubmissionInput) (uuid.UUID, error) {
	intakeJSON, err := json.Marshal(input.Intake)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal intake: %w", err)
	}

	var matchesJSON []byte
	if input.Matches != nil {
		matchesJSON, err = json.Marshal(input.Matches)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal matches: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO submissions (organization, project_title, region, intake, matches)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.Intake.Organization, input.Intake.ProjectTitle, input.Intake.Region,
		intakeJSON, matchesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create submission: %w", err)
	}
	return id, nil
}

// SetTopProgram records the best-scoring program on a submission and marks the
// scoring run complete.
func (db *DB) SetTopProgram(ctx context.Context, submissionID uuid.UUID, programName string, score float64) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE submissions
		 SET top_program = $1, top_score = $2, completed_at = NOW()
		 WHERE id = $3`,
		programName, score, submissionID,
	)
	if err != nil {
		return fmt.Errorf("failed to set top program: %w", err)
	}
	return nil
}

// RequestDeepDive queues a program deep dive for a submission. The external
// watcher picks up pending requests and fills in the analysis.
func (db *DB) RequestDeepDive(ctx context.Context, submissionID uuid.UUID, programID string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE submissions
		 SET deep_dive_status = $1, deep_dive_program = $2, deep_dive_requested_at = NOW()
		 WHERE id = $3`,
		DeepDivePending, programID, submissionID,
	)
	if err != nil {
		return fmt.Errorf("failed to request deep dive: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission by ID. Returns (nil, nil) when no such
// submission exists.
func (db *DB) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*Submission, error) {
	var sub Submission
	err := db.pool.QueryRow(ctx,
		`SELECT id, organization, project_title, region, created_at, completed_at,
		        COALESCE(top_program, ''), COALESCE(top_score, 0),
		        COALESCE(deep_dive_status, ''), COALESCE(deep_dive_program, ''),
		        deep_dive_requested_at
		 FROM submissions WHERE id = $1`,
		submissionID,
	).Scan(&sub.ID, &sub.Organization, &sub.ProjectTitle, &sub.Region,
		&sub.CreatedAt, &sub.CompletedAt,
		&sub.TopProgram, &sub.TopScore,
		&sub.DeepDive.Status, &sub.DeepDive.ProgramID, &sub.DeepDive.RequestedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &sub, nil
}

// GetSubmissionIntake loads the stored intake for a submission. Returns (nil, nil)
// when no such submission exists.
func (db *DB) GetSubmissionIntake(ctx context.Context, submissionID uuid.UUID) (*types.ProjectIntake, error) {
	var intakeJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT intake FROM submissions WHERE id = $1`,
		submissionID,
	).Scan(&intakeJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission intake: %w", err)
	}

	var intake types.ProjectIntake
	if err := json.Unmarshal(intakeJSON, &intake); err != nil {
		return nil, fmt.Errorf("failed to unmarshal intake: %w", err)
	}
	return &intake, nil
}

// GetSubmissionMatches loads the stored ranked matches for a submission. Returns
// (nil, nil) when the submission does not exist or has no stored matches.
func (db *DB) GetSubmissionMatches(ctx context.Context, submissionID uuid.UUID) (*types.RankedMatches, error) {
	var matchesJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT matches FROM submissions WHERE id = $1`,
		submissionID,
	).Scan(&matchesJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission matches: %w", err)
	}
	if matchesJSON == nil {
		return nil, nil
	}

	var matches types.RankedMatches
	if err := json.Unmarshal(matchesJSON, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return &matches, nil
}

// ListRecentSubmissions returns the most recent submissions, newest first.
func (db *DB) ListRecentSubmissions(ctx context.Context, limit int) ([]Submission, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, organization, project_title, region, created_at, completed_at,
		        COALESCE(top_program, ''), COALESCE(top_score, 0),
		        COALESCE(deep_dive_status, ''), COALESCE(deep_dive_program, ''),
		        deep_dive_requested_at
		 FROM submissions
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Organization, &sub.ProjectTitle, &sub.Region,
			&sub.CreatedAt, &sub.CompletedAt,
			&sub.TopProgram, &sub.TopScore,
			&sub.DeepDive.Status, &sub.DeepDive.ProgramID, &sub.DeepDive.RequestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}
	return submissions, nil
}
