package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/appgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a draft application from question responses",
	Long:  "Renders a complete draft grant application from a project intake and the applicant's readiness question responses. Unanswered sections become bracketed prompts to fill in by hand.",
	RunE:  runGenerate,
}

var (
	generateIntake    string
	generateResponses string
	generateOutput    string
)

func init() {
	generateCmd.Flags().StringVarP(&generateIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	generateCmd.Flags().StringVarP(&generateResponses, "responses", "r", "", "Path to question responses JSON file")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to output application text file (required)")

	if err := generateCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	intake, err := loadIntake(generateIntake)
	if err != nil {
		return err
	}

	responses := map[string]string{}
	if generateResponses != "" {
		responses, err = loadResponses(generateResponses)
		if err != nil {
			return err
		}
	}

	application, err := appgen.Generate(intake, responses)
	if err != nil {
		return fmt.Errorf("failed to generate application: %w", err)
	}

	outputDir := filepath.Dir(generateOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(generateOutput, []byte(application), 0644); err != nil {
		return fmt.Errorf("failed to write application to output file %s: %w", generateOutput, err)
	}

	_, _ = fmt.Printf("Successfully generated application draft to %s\n", generateOutput)

	return nil
}
