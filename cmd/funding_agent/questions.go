package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/templates"
	"github.com/ecoproject/funding-matcher/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Select readiness questions for a program and intake",
	Long:  "Loads a program's funding template and selects the readiness questions relevant to a project intake, personalized and ordered by category and weight.",
	RunE:  runQuestions,
}

var (
	questionsConfig       string
	questionsIntake       string
	questionsProgram      string
	questionsTemplateID   string
	questionsTemplatesDir string
	questionsOutput       string
)

func init() {
	questionsCmd.Flags().StringVar(&questionsConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	questionsCmd.Flags().StringVarP(&questionsIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	questionsCmd.Flags().StringVarP(&questionsProgram, "program", "p", "", "Catalog program name to resolve to a template")
	questionsCmd.Flags().StringVarP(&questionsTemplateID, "template-id", "t", "", "Template document id (overrides --program)")
	questionsCmd.Flags().StringVarP(&questionsTemplatesDir, "templates-dir", "d", "templates", "Directory of funding template documents")
	questionsCmd.Flags().StringVarP(&questionsOutput, "out", "o", "", "Path to output questions JSON file (required)")

	if err := questionsCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	if err := questionsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(questionsCmd)
}

// loadTemplate resolves a template by explicit id or program name.
func loadTemplate(templatesDir, templateID, programName string) (string, *types.FundingTemplate, error) {
	if templateID == "" && programName == "" {
		return "", nil, fmt.Errorf("either --template-id or --program is required")
	}

	if templateID == "" {
		templateID = templates.TemplateID(programName)
		if templateID == "" {
			return "", nil, fmt.Errorf("no template available for program %q", programName)
		}
	}

	manager := templates.NewManager(templatesDir)
	tmpl, err := manager.Get(templateID)
	if err != nil {
		return "", nil, err
	}
	if tmpl == nil {
		return "", nil, fmt.Errorf("template %q not found in %s", templateID, templatesDir)
	}
	return templateID, tmpl, nil
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(questionsConfig)
	if err != nil {
		return err
	}

	intake, err := loadIntake(questionsIntake)
	if err != nil {
		return err
	}

	templatesDir := resolveTemplatesDir(cmd, questionsTemplatesDir, cfg)
	templateID, tmpl, err := loadTemplate(templatesDir, questionsTemplateID, questionsProgram)
	if err != nil {
		return err
	}

	selected := templates.SelectQuestions(tmpl, intake)

	if err := writeJSONOutput(questionsOutput, selected); err != nil {
		return err
	}

	_, _ = fmt.Printf("Selected %d questions for template %s to %s\n", len(selected), templateID, questionsOutput)

	return nil
}
