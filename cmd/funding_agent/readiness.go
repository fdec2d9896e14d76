package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/observability"
	"github.com/ecoproject/funding-matcher/internal/templates"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score application readiness from question responses",
	Long:  "Computes the weighted readiness percentage from responses to a program's readiness questions, and estimates the weeks of preparation remaining from its outstanding checklist items.",
	RunE:  runReadiness,
}

var (
	readinessConfig       string
	readinessIntake       string
	readinessProgram      string
	readinessTemplateID   string
	readinessTemplatesDir string
	readinessResponses    string
	readinessCompleted    []string
	readinessOutput       string
)

// readinessReport is the JSON shape written by the readiness command.
type readinessReport struct {
	TemplateID     string  `json:"template_id"`
	ProgramName    string  `json:"program_name"`
	Score          float64 `json:"score"`
	WeeksRemaining float64 `json:"weeks_remaining"`
}

func init() {
	readinessCmd.Flags().StringVar(&readinessConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	readinessCmd.Flags().StringVarP(&readinessIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	readinessCmd.Flags().StringVarP(&readinessProgram, "program", "p", "", "Catalog program name to resolve to a template")
	readinessCmd.Flags().StringVarP(&readinessTemplateID, "template-id", "t", "", "Template document id (overrides --program)")
	readinessCmd.Flags().StringVarP(&readinessTemplatesDir, "templates-dir", "d", "templates", "Directory of funding template documents")
	readinessCmd.Flags().StringVarP(&readinessResponses, "responses", "r", "", "Path to question responses JSON file (required)")
	readinessCmd.Flags().StringSliceVar(&readinessCompleted, "completed", nil, "Checklist items already completed (repeatable)")
	readinessCmd.Flags().StringVarP(&readinessOutput, "out", "o", "", "Path to output readiness report JSON file (required)")

	if err := readinessCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	if err := readinessCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}
	if err := readinessCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(readinessCmd)
}

// loadResponseValues reads raw question responses, preserving JSON types so
// booleans and numbers keep their truthiness semantics.
func loadResponseValues(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", path, err)
	}

	var responses map[string]any
	if err := json.Unmarshal(content, &responses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}
	return responses, nil
}

func runReadiness(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(readinessConfig)
	if err != nil {
		return err
	}

	intake, err := loadIntake(readinessIntake)
	if err != nil {
		return err
	}

	templatesDir := resolveTemplatesDir(cmd, readinessTemplatesDir, cfg)
	templateID, tmpl, err := loadTemplate(templatesDir, readinessTemplateID, readinessProgram)
	if err != nil {
		return err
	}

	responses, err := loadResponseValues(readinessResponses)
	if err != nil {
		return err
	}

	score := templates.ReadinessScore(tmpl, responses)
	checklist := templates.SelectChecklist(tmpl, intake)
	weeksRemaining := templates.EstimateWeeksRemaining(checklist, readinessCompleted)

	report := &readinessReport{
		TemplateID:     templateID,
		ProgramName:    tmpl.ProgramName,
		Score:          score,
		WeeksRemaining: weeksRemaining,
	}
	if err := writeJSONOutput(readinessOutput, report); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReadiness(tmpl.ProgramName, score, weeksRemaining)

	return nil
}
