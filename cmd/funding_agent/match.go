package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecoproject/funding-matcher/internal/observability"
	"github.com/ecoproject/funding-matcher/internal/schemas"
	"github.com/ecoproject/funding-matcher/internal/scoring"
	"github.com/ecoproject/funding-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a project intake against the funding program catalog",
	Long:  "Deterministically scores every funding program in the catalog against a project intake, producing a RankedMatches JSON sorted by fit score.",
	RunE:  runMatch,
}

var (
	matchConfig  string
	matchIntake  string
	matchCatalog string
	matchOutput  string
	matchTop     int
	matchVerbose bool
)

func init() {
	// Config file flag (processed first)
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCmd.Flags().StringVarP(&matchIntake, "intake", "i", "", "Path to input ProjectIntake JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "Path to local catalog snapshot JSON (defaults to the hosted catalog)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output RankedMatches JSON file (required)")
	matchCmd.Flags().IntVarP(&matchTop, "top", "n", 0, "Keep only the top N matches (0 keeps all)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print intake and match summaries")

	if err := matchCmd.MarkFlagRequired("intake"); err != nil {
		panic(fmt.Sprintf("failed to mark intake flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	// 1. Load config file if provided, then apply CLI overrides
	cfg, err := resolveConfig(matchConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("catalog") {
		cfg.CatalogFile = matchCatalog
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cfg.Verbose && matchConfig != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfig)
	}

	// 2. Load and validate intake
	intake, err := loadIntake(matchIntake)
	if err != nil {
		return err
	}

	// 3. Load program catalog
	programs, err := loadPrograms(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	// 4. Score and rank
	matches := scoring.RankPrograms(programs, intake)
	if matchTop > 0 && len(matches.Ranked) > matchTop {
		matches = &types.RankedMatches{Ranked: matches.Ranked[:matchTop]}
	}

	// 5. Write output
	if err := writeJSONOutput(matchOutput, matches); err != nil {
		return err
	}

	// 6. Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/ranked_matches.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, matchOutput); err != nil {
			// Output validation is a safety check, not a requirement
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintIntake(intake)
		printer.PrintMatches(matches, programs)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d programs to %s\n", len(matches.Ranked), matchOutput)

	return nil
}
