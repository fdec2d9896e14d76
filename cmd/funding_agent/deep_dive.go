package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/db"
)

var deepDiveCmd = &cobra.Command{
	Use:   "deep-dive",
	Short: "Queue an AI deep dive on a matched program",
	Long:  "Flags a stored submission for an in-depth program analysis. The analysis itself runs in a separate watcher process; this command only queues the request and reports its status.",
	RunE:  runDeepDive,
}

var (
	deepDiveConfig     string
	deepDiveSubmission string
	deepDiveProgram    string
)

func init() {
	deepDiveCmd.Flags().StringVar(&deepDiveConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	deepDiveCmd.Flags().StringVarP(&deepDiveSubmission, "submission", "s", "", "Submission ID from the submit command (required)")
	deepDiveCmd.Flags().StringVarP(&deepDiveProgram, "program-id", "p", "", "Catalog record ID of the program to analyze (required)")

	if err := deepDiveCmd.MarkFlagRequired("submission"); err != nil {
		panic(fmt.Sprintf("failed to mark submission flag as required: %v", err))
	}
	if err := deepDiveCmd.MarkFlagRequired("program-id"); err != nil {
		panic(fmt.Sprintf("failed to mark program-id flag as required: %v", err))
	}

	rootCmd.AddCommand(deepDiveCmd)
}

func runDeepDive(cmd *cobra.Command, _ []string) error {
	submissionID, err := uuid.Parse(deepDiveSubmission)
	if err != nil {
		return fmt.Errorf("invalid submission ID %q: %w", deepDiveSubmission, err)
	}

	cfg, err := resolveConfig(deepDiveConfig)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL (or 'database_url' in --config) is required for deep-dive")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	submission, err := database.GetSubmission(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission == nil {
		return fmt.Errorf("submission %s not found", submissionID)
	}

	if err := database.RequestDeepDive(ctx, submissionID, deepDiveProgram); err != nil {
		return err
	}

	_, _ = fmt.Printf("Deep dive queued for submission %s (status: %s)\n", submissionID, db.DeepDivePending)

	return nil
}
