package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/templates"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Build a document checklist for a program and intake",
	Long:  "Loads a program's funding template and filters its document checklist for a project intake: critical items always, project-specific items when their conditions match, strengthen items as universal enhancements.",
	RunE:  runChecklist,
}

var (
	checklistConfig       string
	checklistIntake       string
	checklistProgram      string
	checklistTemplateID   string
	checklistTemplatesDir string
	checklistOutput       string
)

func init() {
	checklistCmd.Flags().StringVar(&checklistConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")
	checklistCmd.Flags().StringVarP(&checklistIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	checklistCmd.Flags().StringVarP(&checklistProgram, "program", "p", "", "Catalog program name to resolve to a template")
	checklistCmd.Flags().StringVarP(&checklistTemplateID, "template-id", "t", "", "Template document id (overrides --program)")
	checklistCmd.Flags().StringVarP(&checklistTemplatesDir, "templates-dir", "d", "templates", "Directory of funding template documents")
	checklistCmd.Flags().StringVarP(&checklistOutput, "out", "o", "", "Path to output checklist JSON file (required)")

	if err := checklistCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	if err := checklistCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(checklistConfig)
	if err != nil {
		return err
	}

	intake, err := loadIntake(checklistIntake)
	if err != nil {
		return err
	}

	templatesDir := resolveTemplatesDir(cmd, checklistTemplatesDir, cfg)
	templateID, tmpl, err := loadTemplate(templatesDir, checklistTemplateID, checklistProgram)
	if err != nil {
		return err
	}

	checklist := templates.SelectChecklist(tmpl, intake)

	if err := writeJSONOutput(checklistOutput, checklist); err != nil {
		return err
	}

	total := len(checklist.Items())
	_, _ = fmt.Printf("Selected %d checklist items for template %s to %s\n", total, templateID, checklistOutput)

	return nil
}
