package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/db"
	"github.com/ecoproject/funding-matcher/internal/types"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Store an intake and its match results in the database",
	Long:  "Stores a project intake and its ranked matches as a submission record, recording the top-scoring program. Requires DATABASE_URL.",
	RunE:  runSubmit,
}

var (
	submitConfig  string
	submitIntake  string
	submitMatches string
)

func init() {
	submitCmd.Flags().StringVar(&submitConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	submitCmd.Flags().StringVarP(&submitIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	submitCmd.Flags().StringVarP(&submitMatches, "matches", "m", "", "Path to RankedMatches JSON file from the match command")

	if err := submitCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}

	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(submitConfig)
	if err != nil {
		return err
	}

	intake, err := loadIntake(submitIntake)
	if err != nil {
		return err
	}

	var matches *types.RankedMatches
	if submitMatches != "" {
		content, err := os.ReadFile(submitMatches)
		if err != nil {
			return fmt.Errorf("failed to read matches file %s: %w", submitMatches, err)
		}
		matches = &types.RankedMatches{}
		if err := json.Unmarshal(content, matches); err != nil {
			return fmt.Errorf("failed to unmarshal matches JSON: %w", err)
		}
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL (or 'database_url' in --config) is required for submit")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.CreateSubmission(ctx, &db.SubmissionInput{Intake: intake, Matches: matches})
	if err != nil {
		return err
	}

	if matches != nil {
		if top := matches.Top(); top != nil {
			if err := database.SetTopProgram(ctx, id, top.ProgramName, top.Score); err != nil {
				return err
			}
		}
	}

	_, _ = fmt.Printf("Stored submission %s\n", id)

	return nil
}
